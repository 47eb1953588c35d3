package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connecthub/internal/database"
	"connecthub/internal/domain"
	"connecthub/internal/middleware"
	"connecthub/internal/modules/auth"
	"connecthub/internal/modules/category"
	"connecthub/internal/modules/listing"
	"connecthub/internal/modules/order"
	"connecthub/internal/modules/payment"
	"connecthub/internal/modules/subscription"
	jwtsvc "connecthub/internal/pkg/jwt"
	"connecthub/internal/pkg/jsonfield"
	"connecthub/internal/pkg/ratelimit"
	"connecthub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type suite struct {
	router  *gin.Engine
	db      *gorm.DB
	jwt     *jwtsvc.Service
	gateway *payment.Gateway
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, any) {}

func setupSuite(t *testing.T) *suite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{}, &domain.Category{}, &domain.Listing{},
		&domain.Order{}, &domain.Review{},
		&domain.Plan{}, &domain.Subscription{}, &domain.GatewayPayment{},
		auth.ResetCodeModel(),
	))

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	listingRepo := repository.NewListingRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	j := jwtsvc.New("e2e-secret", 24*time.Hour)
	gateway := payment.NewGateway("key_e2e", "e2e-gateway-secret")

	authService := auth.NewService(userRepo, j, auth.NewDevConsoleSender(false), "e2e-pepper", 5*time.Minute, time.Nanosecond, 10*time.Minute)
	authHandler := auth.NewHandler(authService, 24*time.Hour, false)

	categoryHandler := category.NewHandler(category.NewService(categoryRepo))
	listingHandler := listing.NewHandler(listing.NewService(listingRepo))
	orderHandler := order.NewHandler(order.NewService(orderRepo, listingRepo, nopPublisher{}))
	subscriptionHandler := subscription.NewHandler(subscription.NewService(subscriptionRepo, paymentRepo, gateway, nopPublisher{}))

	r := gin.New()
	api := r.Group("/api")

	authed := api.Group("/")
	authed.Use(middleware.AuthRequired(j))

	vendor := api.Group("/vendor")
	vendor.Use(middleware.AuthRequired(j), middleware.VendorOnly())

	admin := api.Group("/admin")
	authHandler.RegisterAdminLogin(admin, middleware.RateLimitByIP(ratelimit.NewLimiter(100, 100, time.Minute)))
	admin.Use(middleware.AdminAuthRequired(j))

	authHandler.RegisterPublicRoutes(api)
	categoryHandler.RegisterRoutes(api, admin)
	listingHandler.RegisterRoutes(api, vendor)
	orderHandler.RegisterRoutes(authed, admin)
	subscriptionHandler.RegisterRoutes(api, vendor)

	return &suite{router: r, db: db, jwt: j, gateway: gateway}
}

func (s *suite) createUser(t *testing.T, email string, role domain.UserRole) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), bcrypt.DefaultCost)
	require.NoError(t, err)
	u := &domain.User{Email: email, Name: email, PasswordHash: string(hash), Role: role, Status: domain.UserActive}
	require.NoError(t, s.db.Create(u).Error)
	return u
}

func (s *suite) token(t *testing.T, u *domain.User) string {
	t.Helper()
	token, err := s.jwt.GenerateToken(u.ID, string(u.Role))
	require.NoError(t, err)
	return token
}

func (s *suite) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
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

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAdminLoginAndCategoryCRUD(t *testing.T) {
	s := setupSuite(t)
	s.createUser(t, "admin@example.com", domain.RoleAdmin)

	// login sets the admin cookie
	w := s.request(t, http.MethodPost, "/api/admin/login", "", gin.H{"email": "admin@example.com", "password": "Passw0rd!"})
	require.Equal(t, http.StatusOK, w.Code)

	var adminCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AdminCookieName {
			adminCookie = c
		}
	}
	require.NotNil(t, adminCookie)

	// create a category through the cookie-guarded admin surface
	req := httptest.NewRequest(http.MethodPost, "/api/admin/categories", bytes.NewBufferString(`{"name":"Plumbing","type":"SERVICE"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(adminCookie)
	cw := httptest.NewRecorder()
	s.router.ServeHTTP(cw, req)
	require.Equal(t, http.StatusCreated, cw.Code)

	// visible on the public list
	lw := s.request(t, http.MethodGet, "/api/categories?search=plumb&status=All", "", nil)
	require.Equal(t, http.StatusOK, lw.Code)
	body := decode(t, lw)
	cats := body["categories"].([]any)
	require.Len(t, cats, 1)
	assert.Equal(t, "Plumbing", cats[0].(map[string]any)["name"])
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	s := setupSuite(t)
	buyer := s.createUser(t, "buyer@example.com", domain.RoleBuyer)
	vendor := s.createUser(t, "vendor@example.com", domain.RoleVendor)

	l := &domain.Listing{VendorID: vendor.ID, CategoryID: 1, Kind: domain.CategoryService, Title: "Pipe repair", Price: 100, Active: true}
	require.NoError(t, s.db.Create(l).Error)

	buyerToken := s.token(t, buyer)

	// place
	w := s.request(t, http.MethodPost, "/api/orders", buyerToken, gin.H{"listingId": l.ID, "type": "SERVICE"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)["order"].(map[string]any)
	orderID := int64(created["id"].(float64))
	assert.Equal(t, true, created["cancellable"])

	// a stranger cannot read it
	stranger := s.createUser(t, "other@example.com", domain.RoleBuyer)
	sw := s.request(t, http.MethodGet, "/api/orders/1", s.token(t, stranger), nil)
	assert.Equal(t, http.StatusForbidden, sw.Code)

	// cancel while PENDING
	cw := s.request(t, http.MethodPost, "/api/orders/1/cancel", buyerToken, gin.H{"reason": "test"})
	require.Equal(t, http.StatusOK, cw.Code)

	// a second cancel is refused
	cw2 := s.request(t, http.MethodPost, "/api/orders/1/cancel", buyerToken, nil)
	assert.Equal(t, http.StatusConflict, cw2.Code)

	var stored domain.Order
	require.NoError(t, s.db.First(&stored, orderID).Error)
	assert.Equal(t, domain.OrderCancelled, stored.Status)
	assert.True(t, stored.Total.Equal(decimal.NewFromInt(118)))
}

func TestVendorSubscriptionPaymentFlow(t *testing.T) {
	s := setupSuite(t)
	vendor := s.createUser(t, "vendor@example.com", domain.RoleVendor)
	vendorToken := s.token(t, vendor)

	plans := []domain.Plan{
		{ID: domain.PlanFree, Name: "Free", Price: 0, IsActive: true},
		{ID: domain.PlanStarter, Name: "Starter", Price: 499, IsActive: true},
	}
	for i := range plans {
		require.NoError(t, s.db.Create(&plans[i]).Error)
	}

	// paid switch returns a gateway order, not a subscription
	w := s.request(t, http.MethodPost, "/api/vendor/subscription", vendorToken, gin.H{"planId": "starter"})
	require.Equal(t, http.StatusOK, w.Code)
	orderBody := decode(t, w)["order"].(map[string]any)
	gatewayOrderID := orderBody["gatewayOrderId"].(string)
	assert.Equal(t, "key_e2e", orderBody["keyId"])

	// wrong signature leaves the vendor on free
	bad := s.request(t, http.MethodPost, "/api/vendor/subscription/verify", vendorToken, gin.H{
		"gatewayOrderId": gatewayOrderID, "gatewayPaymentId": "pay_1", "signature": "bogus",
	})
	assert.Equal(t, http.StatusBadRequest, bad.Code)

	cur := s.request(t, http.MethodGet, "/api/vendor/subscription", vendorToken, nil)
	require.Equal(t, http.StatusOK, cur.Code)
	sub := decode(t, cur)["subscription"].(map[string]any)
	assert.Equal(t, "free", sub["plan"])

	// a correctly signed callback activates starter; a new gateway order is
	// needed because the failed one is terminal
	w = s.request(t, http.MethodPost, "/api/vendor/subscription", vendorToken, gin.H{"planId": "starter"})
	require.Equal(t, http.StatusOK, w.Code)
	gatewayOrderID = decode(t, w)["order"].(map[string]any)["gatewayOrderId"].(string)

	good := s.request(t, http.MethodPost, "/api/vendor/subscription/verify", vendorToken, gin.H{
		"gatewayOrderId":   gatewayOrderID,
		"gatewayPaymentId": "pay_2",
		"signature":        s.gateway.Sign(gatewayOrderID, "pay_2"),
	})
	require.Equal(t, http.StatusOK, good.Code)

	cur = s.request(t, http.MethodGet, "/api/vendor/subscription", vendorToken, nil)
	sub = decode(t, cur)["subscription"].(map[string]any)
	assert.Equal(t, "starter", sub["plan"])

	// buyers cannot touch the vendor surface
	buyer := s.createUser(t, "buyer@example.com", domain.RoleBuyer)
	fw := s.request(t, http.MethodGet, "/api/vendor/subscription", s.token(t, buyer), nil)
	assert.Equal(t, http.StatusForbidden, fw.Code)
}

func TestListingImageCapOverHTTP(t *testing.T) {
	s := setupSuite(t)
	vendor := s.createUser(t, "vendor@example.com", domain.RoleVendor)
	vendorToken := s.token(t, vendor)

	l := &domain.Listing{
		VendorID: vendor.ID, CategoryID: 1, Kind: domain.CategoryService,
		Title: "Pipe repair", Price: 100, Active: true,
		Images: jsonfield.Encode([]string{"/a.jpg", "/b.jpg", "/c.jpg"}),
	}
	require.NoError(t, s.db.Create(l).Error)

	w := s.request(t, http.MethodPut, "/api/vendor/services/1", vendorToken, gin.H{
		"keepImages": []string{"/a.jpg", "/b.jpg", "/c.jpg"},
		"newImages":  []string{"/d.jpg", "/e.jpg", "/f.jpg"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Maximum 5 images", decode(t, w)["message"])

	// five is fine
	w = s.request(t, http.MethodPut, "/api/vendor/services/1", vendorToken, gin.H{
		"keepImages": []string{"/a.jpg", "/b.jpg", "/c.jpg"},
		"newImages":  []string{"/d.jpg", "/e.jpg"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Len(t, data["images"].([]any), 5)
}
