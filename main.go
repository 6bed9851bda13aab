package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homefix/config"
	"homefix/cron"
	"homefix/database"
	"homefix/database/repository"
	"homefix/handlers"
	"homefix/middleware"
	"homefix/routes"
	"homefix/services/booking"
	"homefix/services/catalog"
	"homefix/services/notification"
	"homefix/services/payment"
	"homefix/services/storage"
	"homefix/services/subscription"
	"homefix/services/tasks"
	"homefix/services/technician"
	"homefix/services/user"
	"homefix/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	utils.InitializeLogger(config.IsProduction(), cfg.LogLevel)
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.InitDB(); err != nil {
		logger.Fatal("main: database unavailable", zap.Error(err))
	}
	repos, err := repository.NewMongoSet(database.DB())
	if err != nil {
		logger.Fatal("main: failed to initialize repositories", zap.Error(err))
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// Identity cache. Without Redis every request resolves against Mongo.
	var identityCache user.IdentityCache
	authRedis, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisAuthDB)
	if err != nil {
		logger.Warn("main: identity cache disabled", zap.Error(err))
	} else {
		identityCache = user.NewRedisIdentityCache(authRedis)
	}

	// Subscription expiry queue.
	queueOpts := asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisQueueDB}
	queueClient := asynq.NewClient(queueOpts)
	defer queueClient.Close()

	var pusher notification.Pusher
	if cfg.FirebaseCredentials != "" {
		fcm, err := utils.FirebaseInit(rootCtx, cfg.FirebaseCredentials)
		if err != nil {
			logger.Warn("main: push delivery disabled", zap.Error(err))
		} else {
			pusher = notification.NewFCMPusher(fcm)
		}
	}

	var store storage.StorageService
	if cfg.CloudinaryCloudName != "" {
		cld, err := storage.NewCloudinaryStorage(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			logger.Warn("main: uploads disabled", zap.Error(err))
		} else {
			store = cld
		}
	}

	var gateway payment.Gateway
	if cfg.StripeKey != "" {
		gateway = payment.NewStripeGateway(cfg.StripeKey)
	}

	// services.
	tokens := utils.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	userService := user.NewUserService(repos.Users, tokens, identityCache)
	notificationService := notification.NewDefaultNotificationService(repos.Notifications, repos.Users, pusher)
	catalogService := catalog.NewCatalogService(repos.Catalog, store)
	subscriptionService := subscription.NewSubscriptionService(repos.Users, repos.Catalog, notificationService, tasks.NewScheduler(queueClient))
	bookingService := booking.NewBookingService(repos.Bookings, repos.Catalog, repos.Users, repos.Technicians, notificationService)
	paymentService := payment.NewPaymentService(repos.Payments, repos.Bookings, repos.Catalog, subscriptionService, notificationService, gateway,
		payment.Config{SignatureSecret: cfg.RazorpayKeySecret, Currency: cfg.PaymentCurrency})
	technicianService := technician.NewTechnicianService(repos.Technicians, repos.Users, repos.Bookings, store)

	if cfg.RazorpayKeySecret == "" {
		logger.Warn("main: RAZORPAY_KEY_SECRET not set, external payment verification will reject every callback")
	}

	worker := cron.NewWorker(queueOpts, subscriptionService)
	worker.Start()

	hb := handlers.NewHandlerBundle(handlers.Services{
		Users:         userService,
		Catalog:       catalogService,
		Subscriptions: subscriptionService,
		Bookings:      bookingService,
		Payments:      paymentService,
		Notifications: notificationService,
		Technicians:   technicianService,
	})

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	routes.RegisterRoutes(router, hb, config.AllowedOrigins())

	utils.StartHealthMonitor(rootCtx, authRedis, database.MongoClient, 30*time.Second)
	if authRedis != nil {
		go cron.MonitorRedisConnection(rootCtx, authRedis)
	}

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	worker.Shutdown()
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
