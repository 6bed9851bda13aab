package routes

import (
	"time"

	"homefix/handlers"
	"homefix/middleware"
	"homefix/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	adminOnly         = middleware.RequireRoles(models.RoleAdmin)
	technicianOnly    = middleware.RequireRoles(models.RoleTechnician)
	adminOrTechnician = middleware.RequireRoles(models.RoleAdmin, models.RoleTechnician)
)

// RegisterAuthRoutes registers signup and login.
func RegisterAuthRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	auth := api.Group("/auth")
	{
		auth.POST("/signup", hb.Auth.SignupHandler)
		auth.POST("/login", hb.Auth.LoginHandler)
	}
}

// RegisterUserRoutes registers profile, role and subscription endpoints.
func RegisterUserRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	users := api.Group("/users")
	users.Use(middleware.Authenticate(hb.Resolver))
	{
		users.GET("/me", hb.Users.GetMeHandler)
		users.PUT("/me", hb.Users.UpdateMeHandler)
		users.GET("", adminOnly, hb.Users.ListUsersHandler)
		users.PUT("/:userId/role", adminOnly, hb.Users.UpdateRoleHandler)

		users.GET("/:userId/subscriptions", hb.Subscriptions.ListSubscriptionsHandler)
		users.POST("/:userId/subscribe/:planId", hb.Subscriptions.SubscribeHandler)
		users.POST("/:userId/unsubscribe/:planId", hb.Subscriptions.UnsubscribeHandler)
	}
}

// RegisterCatalogRoutes registers services and plans. Reads are public.
func RegisterCatalogRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	auth := middleware.Authenticate(hb.Resolver)

	services := api.Group("/services")
	{
		services.GET("", hb.Catalog.ListServicesHandler)
		services.GET("/:id", hb.Catalog.GetServiceHandler)
		services.POST("", auth, adminOnly, hb.Catalog.CreateServiceHandler)
		services.PUT("/:id", auth, adminOnly, hb.Catalog.UpdateServiceHandler)
		services.DELETE("/:id", auth, adminOnly, hb.Catalog.DeleteServiceHandler)
		services.POST("/:id/image", auth, adminOnly, hb.Catalog.UploadServiceImageHandler)
	}

	plans := api.Group("/plans")
	{
		plans.GET("", hb.Catalog.ListPlansHandler)
		plans.GET("/:id", hb.Catalog.GetPlanHandler)
		plans.POST("", auth, adminOnly, hb.Catalog.CreatePlanHandler)
		plans.PUT("/:id", auth, adminOnly, hb.Catalog.UpdatePlanHandler)
		plans.DELETE("/:id", auth, adminOnly, hb.Catalog.DeletePlanHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	bookings := api.Group("/bookings")
	bookings.Use(middleware.Authenticate(hb.Resolver))
	{
		bookings.POST("", hb.Bookings.CreateBookingHandler)
		bookings.GET("/my-bookings", hb.Bookings.MyBookingsHandler)
		bookings.GET("", adminOrTechnician, hb.Bookings.ListBookingsHandler)
		bookings.GET("/:id", hb.Bookings.GetBookingHandler)
		bookings.PUT("/:id/status", adminOrTechnician, hb.Bookings.UpdateStatusHandler)
		bookings.PUT("/:id/assign-technician", adminOnly, hb.Bookings.AssignTechnicianHandler)
		bookings.PUT("/:id/cancel", hb.Bookings.CancelBookingHandler)
		bookings.PUT("/:id/review", hb.Bookings.AddReviewHandler)
	}
}

// RegisterPaymentRoutes registers payment recording and verification.
func RegisterPaymentRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	payments := api.Group("/payments")
	payments.Use(middleware.Authenticate(hb.Resolver))
	{
		payments.POST("", hb.Payments.CreatePaymentHandler)
		payments.POST("/verify-razorpay", hb.Payments.VerifyPaymentHandler)
		payments.GET("/my-payments", hb.Payments.MyPaymentsHandler)
		payments.GET("", adminOnly, hb.Payments.ListPaymentsHandler)
		payments.GET("/:id", hb.Payments.GetPaymentHandler)
	}
}

// RegisterNotificationRoutes registers the caller's inbox and admin broadcast.
func RegisterNotificationRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	notifications := api.Group("/notifications")
	notifications.Use(middleware.Authenticate(hb.Resolver))
	{
		notifications.GET("", hb.Notifications.ListNotificationsHandler)
		notifications.GET("/unread-count", hb.Notifications.UnreadCountHandler)
		notifications.PUT("/read-all", hb.Notifications.MarkAllReadHandler)
		notifications.PUT("/:id/read", hb.Notifications.MarkReadHandler)
		notifications.DELETE("/:id", hb.Notifications.DeleteNotificationHandler)
		notifications.POST("/broadcast", adminOnly, hb.Notifications.BroadcastHandler)
	}
}

// RegisterTechnicianRoutes registers the directory and the technician dashboard.
func RegisterTechnicianRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	techs := api.Group("/technicians")
	techs.Use(middleware.Authenticate(hb.Resolver))
	{
		techs.GET("", hb.Technicians.ListTechniciansHandler)
		techs.POST("", adminOnly, hb.Technicians.CreateTechnicianHandler)

		techs.GET("/dashboard/stats", technicianOnly, hb.Technicians.DashboardStatsHandler)
		techs.GET("/my-bookings", technicianOnly, hb.Technicians.MyJobsHandler)
		techs.PUT("/profile", technicianOnly, hb.Technicians.UpdateProfileHandler)
		techs.PUT("/availability", technicianOnly, hb.Technicians.SetAvailabilityHandler)
		techs.POST("/documents", technicianOnly, hb.Technicians.UploadDocumentHandler)

		techs.GET("/:id", hb.Technicians.GetTechnicianHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health.CheckHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, origins []string) {
	corsCfg := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	// An empty allow-list means any origin, without credentials.
	if len(origins) == 0 {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	r.Use(cors.New(corsCfg))

	api := r.Group("/api")
	RegisterAuthRoutes(api, hb)
	RegisterUserRoutes(api, hb)
	RegisterCatalogRoutes(api, hb)
	RegisterBookingRoutes(api, hb)
	RegisterPaymentRoutes(api, hb)
	RegisterNotificationRoutes(api, hb)
	RegisterTechnicianRoutes(api, hb)
	RegisterHealthRoute(r, hb)
}
