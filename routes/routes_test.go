package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homefix/database/repository/repotest"
	"homefix/handlers"
	"homefix/models"
	"homefix/services/booking"
	"homefix/services/catalog"
	"homefix/services/notification"
	"homefix/services/payment"
	"homefix/services/subscription"
	"homefix/services/technician"
	"homefix/services/user"
	"homefix/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
	tokens *utils.TokenManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := repotest.NewUsers(
		models.User{ID: "admin-1", Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin},
		models.User{ID: "other-1", Name: "Other", Email: "other@example.com", Role: models.RoleUser},
	)
	catalogRepo := repotest.NewCatalog().WithServices(
		models.Service{ID: "svc-1", Name: "Leak fix", Category: models.CategoryPlumbing, Price: 800, IsAvailable: true},
	).WithPlans(
		models.Plan{ID: "plan-1", Name: "Basic", Price: 2500, Duration: models.DurationMonthly},
	)
	bookings := repotest.NewBookings()
	technicians := repotest.NewTechnicians()
	tokens := utils.NewTokenManager("route-secret", time.Hour)

	notifications := notification.NewDefaultNotificationService(repotest.NewNotifications(), users, nil)
	subs := subscription.NewSubscriptionService(users, catalogRepo, notifications, nil)
	hb := handlers.NewHandlerBundle(handlers.Services{
		Users:         user.NewUserService(users, tokens, nil),
		Catalog:       catalog.NewCatalogService(catalogRepo, nil),
		Subscriptions: subs,
		Bookings:      booking.NewBookingService(bookings, catalogRepo, users, technicians, notifications),
		Payments: payment.NewPaymentService(repotest.NewPayments(), bookings, catalogRepo, subs, notifications, nil,
			payment.Config{SignatureSecret: "pay-secret"}),
		Notifications: notifications,
		Technicians:   technician.NewTechnicianService(technicians, users, bookings, nil),
	})

	r := gin.New()
	r.Use(utils.ErrorHandler())
	RegisterRoutes(r, hb, nil)
	return &testServer{router: r, tokens: tokens}
}

func (s *testServer) tokenFor(t *testing.T, userID string, role models.Role) string {
	t.Helper()
	tok, err := s.tokens.GenerateToken(userID, userID+"@example.com", string(role))
	require.NoError(t, err)
	return tok
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestBookAndPayFlow(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name": "Meera", "email": "Meera@Example.com", "phone": "9876543210", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	auth := decode[user.AuthResponse](t, w)
	require.NotEmpty(t, auth.Token)
	assert.Equal(t, "meera@example.com", auth.User.Email)
	assert.Equal(t, models.RoleUser, auth.User.Role)

	w = s.do(t, http.MethodPost, "/api/bookings", auth.Token, map[string]string{
		"serviceId": "svc-1", "scheduledDate": "2026-11-02", "scheduledTime": "09:30",
		"address": "4 Lake View", "contactPhone": "9876543210", "problemDescription": "Kitchen sink leaks",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	b := decode[models.Booking](t, w)
	assert.Equal(t, models.StatusPending, b.Status)
	assert.Equal(t, models.PriorityMedium, b.Priority)
	assert.InDelta(t, 800, b.FinalPrice, 0.001)

	admin := s.tokenFor(t, "admin-1", models.RoleAdmin)
	w = s.do(t, http.MethodPut, "/api/bookings/"+b.ID+"/status", admin, map[string]string{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/payments", auth.Token, map[string]string{"bookingId": b.ID, "paymentMethod": "upi"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	p := decode[models.Payment](t, w)
	assert.Equal(t, models.PaymentSuccess, p.Status)
	assert.InDelta(t, 800, p.Amount, 0.001)

	w = s.do(t, http.MethodPost, "/api/payments", auth.Token, map[string]string{"bookingId": b.ID, "paymentMethod": "upi"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodGet, "/api/bookings/"+b.ID, auth.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.BookingPaymentPaid, decode[models.Booking](t, w).PaymentStatus)

	w = s.do(t, http.MethodGet, "/api/notifications/unread-count", auth.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	count := decode[map[string]int64](t, w)
	assert.GreaterOrEqual(t, count["count"], int64(2))

	w = s.do(t, http.MethodGet, "/api/bookings/"+b.ID, s.tokenFor(t, "other-1", models.RoleUser), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthAndRoleGates(t *testing.T) {
	s := newTestServer(t)
	userTok := s.tokenFor(t, "other-1", models.RoleUser)
	admin := s.tokenFor(t, "admin-1", models.RoleAdmin)
	newService := map[string]any{"name": "Socket install", "category": "electrical", "price": 300}

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   any
		want   int
	}{
		{"public service list", http.MethodGet, "/api/services", "", nil, http.StatusOK},
		{"public plan lookup", http.MethodGet, "/api/plans/plan-1", "", nil, http.StatusOK},
		{"missing plan", http.MethodGet, "/api/plans/nope", "", nil, http.StatusNotFound},
		{"create service without token", http.MethodPost, "/api/services", "", newService, http.StatusUnauthorized},
		{"create service as user", http.MethodPost, "/api/services", userTok, newService, http.StatusForbidden},
		{"create service as admin", http.MethodPost, "/api/services", admin, newService, http.StatusCreated},
		{"garbage token", http.MethodGet, "/api/bookings/my-bookings", "not-a-jwt", nil, http.StatusUnauthorized},
		{"list all bookings as user", http.MethodGet, "/api/bookings", userTok, nil, http.StatusForbidden},
		{"list all payments as admin", http.MethodGet, "/api/payments", admin, nil, http.StatusOK},
		{"subscribe for someone else", http.MethodPost, "/api/users/admin-1/subscribe/plan-1", userTok, nil, http.StatusForbidden},
		{"technician dashboard as user", http.MethodGet, "/api/technicians/dashboard/stats", userTok, nil, http.StatusForbidden},
		{"bad notification limit", http.MethodGet, "/api/notifications?limit=zero", userTok, nil, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestErrorResponsesCarryMessage(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "nobody@example.com", "password": "whatever"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decode[map[string]any](t, w)
	assert.NotEmpty(t, body["message"])
}

func TestSubscriptionRoutes(t *testing.T) {
	s := newTestServer(t)
	tok := s.tokenFor(t, "other-1", models.RoleUser)

	w := s.do(t, http.MethodPost, "/api/users/other-1/subscribe/plan-1", tok, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/users/other-1/subscribe/plan-1", tok, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodGet, "/api/users/other-1/subscriptions", s.tokenFor(t, "admin-1", models.RoleAdmin), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, []any{"plan-1"}, body["subscribedPlans"])
}

func TestVerifyRejectsBadSignature(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodPost, "/api/payments/verify-razorpay", s.tokenFor(t, "other-1", models.RoleUser), map[string]string{
		"razorpay_order_id": "order_x", "razorpay_payment_id": "pay_x", "razorpay_signature": "deadbeef",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{"success": false}, decode[map[string]any](t, w))
}
