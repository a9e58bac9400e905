package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopledger/backend/internal/interfaces/http/handler"
	"github.com/shopledger/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.Equal(t, "v1", r.apiVersion)
	assert.Equal(t, "/api/v1", r.BasePath())
	assert.Empty(t, r.registrars)

	r = NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "/api/v2", r.BasePath())
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	group := NewDomainGroup("test", "/test").
		GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	NewRouter(engine).Register(group).Setup()

	w := serve(engine, http.MethodGet, "/api/v1/test/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestRouterSetup_NoRoute(t *testing.T) {
	engine := gin.New()
	NewRouter(engine).Setup()

	w := serve(engine, http.MethodGet, "/api/v1/missing")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "ROUTE_NOT_FOUND")
}

func TestRouterWithMiddleware(t *testing.T) {
	engine := gin.New()
	engine.GET("/outside", func(c *gin.Context) { c.String(http.StatusOK, "outside") })

	r := NewRouter(engine, WithMiddleware(func(c *gin.Context) {
		c.Header("X-Api", "yes")
		c.Next()
	}))
	r.Register(NewDomainGroup("test", "/test").
		GET("", func(c *gin.Context) { c.String(http.StatusOK, "inside") }))
	r.Setup()

	w := serve(engine, http.MethodGet, "/api/v1/test")
	assert.Equal(t, "yes", w.Header().Get("X-Api"))

	w = serve(engine, http.MethodGet, "/outside")
	assert.Empty(t, w.Header().Get("X-Api"))
}

func TestDomainGroup(t *testing.T) {
	t.Run("name and prefix", func(t *testing.T) {
		g := NewDomainGroup("orders", "/order")
		assert.Equal(t, "orders", g.Name())
		assert.Equal(t, "/order", g.Prefix())
	})

	t.Run("registers every method", func(t *testing.T) {
		engine := gin.New()
		ok := func(c *gin.Context) { c.String(http.StatusOK, c.Request.Method) }
		g := NewDomainGroup("test", "/test").
			GET("/items", ok).
			POST("/items", ok).
			PUT("/items/:id", ok).
			DELETE("/items/:id", ok)
		g.RegisterRoutes(engine.Group("/api/v1"))

		for _, tc := range []struct{ method, path string }{
			{http.MethodGet, "/api/v1/test/items"},
			{http.MethodPost, "/api/v1/test/items"},
			{http.MethodPut, "/api/v1/test/items/1"},
			{http.MethodDelete, "/api/v1/test/items/1"},
		} {
			w := serve(engine, tc.method, tc.path)
			assert.Equal(t, http.StatusOK, w.Code, "%s %s", tc.method, tc.path)
			assert.Equal(t, tc.method, w.Body.String())
		}
	})

	t.Run("group middleware and subgroups", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("catalog", "/catalog").Use(func(c *gin.Context) {
			c.Header("X-Group", "catalog")
			c.Next()
		})
		g.Group("products", "/products").GET("", func(c *gin.Context) { c.String(http.StatusOK, "products") })
		g.RegisterRoutes(engine.Group("/api/v1"))

		w := serve(engine, http.MethodGet, "/api/v1/catalog/products")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "products", w.Body.String())
		assert.Equal(t, "catalog", w.Header().Get("X-Group"))
	})
}

func testHandlers() Handlers {
	return Handlers{
		SalesOrders:    handler.NewSalesOrderHandler(nil, nil),
		PurchaseOrders: handler.NewPurchaseOrderHandler(nil, nil),
		Print:          handler.NewPrintHandler(nil),
		Products:       handler.NewProductHandler(nil),
		Categories:     handler.NewCategoryHandler(nil),
		Inventory:      handler.NewInventoryHandler(nil),
		Notifications:  handler.NewNotificationHandler(nil),
		Customers:      handler.NewCustomerHandler(nil),
		Suppliers:      handler.NewSupplierHandler(nil),
		Payments:       handler.NewPaymentHandler(nil, nil),
	}
}

func TestGroups_RouteTable(t *testing.T) {
	engine := gin.New()
	NewRouter(engine).Register(Groups(testHandlers(), nil)...).Setup()

	registered := make(map[string]bool)
	for _, ri := range engine.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}

	for _, want := range []string{
		"POST /api/v1/order",
		"PUT /api/v1/order",
		"DELETE /api/v1/order",
		"GET /api/v1/order",
		"GET /api/v1/order/:id",
		"GET /api/v1/order/customer/:customerId",
		"GET /api/v1/order/:id/invoice",
		"GET /api/v1/order/:id/slip",
		"POST /api/v1/purchase-order",
		"PUT /api/v1/purchase-order",
		"DELETE /api/v1/purchase-order",
		"GET /api/v1/purchase-order/:id",
		"GET /api/v1/purchase-order/supplier/:supplierId",
		"GET /api/v1/products",
		"POST /api/v1/products",
		"PUT /api/v1/products/:id",
		"DELETE /api/v1/products/:id",
		"GET /api/v1/categories",
		"GET /api/v1/stock-movements",
		"POST /api/v1/stock-adjustments",
		"GET /api/v1/notifications",
		"PUT /api/v1/notifications/:id/read",
		"DELETE /api/v1/notifications/:id",
		"GET /api/v1/customers/:id",
		"POST /api/v1/suppliers",
		"GET /api/v1/payments",
		"POST /api/v1/payments",
		"PUT /api/v1/payments/:id",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestGroups_IdempotencyOnlyOnOrderCreation(t *testing.T) {
	engine := gin.New()
	guard := func(c *gin.Context) { c.AbortWithStatus(http.StatusTeapot) }
	NewRouter(engine).Register(Groups(testHandlers(), guard)...).Setup()

	assert.Equal(t, http.StatusTeapot, serve(engine, http.MethodPost, "/api/v1/order").Code)
	assert.Equal(t, http.StatusTeapot, serve(engine, http.MethodPost, "/api/v1/purchase-order").Code)
	// no actor in context: the handler itself answers
	assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodPut, "/api/v1/order").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodPost, "/api/v1/payments").Code)
}

func TestRegisterOps(t *testing.T) {
	engine := gin.New()
	RegisterOps(engine, handler.NewSystemHandler("test", nil), middleware.SwaggerConfig{Enabled: false})

	w := serve(engine, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = serve(engine, http.MethodGet, "/swagger/index.html")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
