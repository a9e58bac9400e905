package router

import (
	"github.com/gin-gonic/gin"
	"github.com/shopledger/backend/internal/interfaces/http/handler"
	"github.com/shopledger/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers bundles the API handlers mounted under the versioned prefix
type Handlers struct {
	SalesOrders    *handler.SalesOrderHandler
	PurchaseOrders *handler.PurchaseOrderHandler
	Print          *handler.PrintHandler
	Products       *handler.ProductHandler
	Categories     *handler.CategoryHandler
	Inventory      *handler.InventoryHandler
	Notifications  *handler.NotificationHandler
	Customers      *handler.CustomerHandler
	Suppliers      *handler.SupplierHandler
	Payments       *handler.PaymentHandler
}

// Groups builds the domain route groups. idempotency guards the two order
// creation routes and may be nil.
func Groups(h Handlers, idempotency gin.HandlerFunc) []RouteRegistrar {
	create := func(next gin.HandlerFunc) []gin.HandlerFunc {
		if idempotency == nil {
			return []gin.HandlerFunc{next}
		}
		return []gin.HandlerFunc{idempotency, next}
	}

	orders := NewDomainGroup("orders", "/order").
		GET("", h.SalesOrders.List).
		POST("", create(h.SalesOrders.Create)...).
		PUT("", h.SalesOrders.Update).
		DELETE("", h.SalesOrders.Delete).
		GET("/:id", h.SalesOrders.GetByID).
		GET("/customer/:customerId", h.SalesOrders.ListByCustomer).
		GET("/:id/invoice", h.Print.Invoice).
		GET("/:id/slip", h.Print.Slip)

	purchases := NewDomainGroup("purchase-orders", "/purchase-order").
		GET("", h.PurchaseOrders.List).
		POST("", create(h.PurchaseOrders.Create)...).
		PUT("", h.PurchaseOrders.Update).
		DELETE("", h.PurchaseOrders.Delete).
		GET("/:id", h.PurchaseOrders.GetByID).
		GET("/supplier/:supplierId", h.PurchaseOrders.ListBySupplier)

	products := NewDomainGroup("products", "/products").
		GET("", h.Products.List).
		POST("", h.Products.Create).
		GET("/:id", h.Products.GetByID).
		PUT("/:id", h.Products.Update).
		DELETE("/:id", h.Products.Delete)

	categories := NewDomainGroup("categories", "/categories").
		GET("", h.Categories.List).
		POST("", h.Categories.Create).
		PUT("/:id", h.Categories.Update).
		DELETE("/:id", h.Categories.Delete)

	inventory := NewDomainGroup("inventory", "").
		GET("/stock-movements", h.Inventory.ListMovements).
		POST("/stock-adjustments", h.Inventory.Adjust)

	notifications := NewDomainGroup("notifications", "/notifications").
		GET("", h.Notifications.List).
		PUT("/:id/read", h.Notifications.MarkRead).
		DELETE("/:id", h.Notifications.Delete)

	customers := NewDomainGroup("customers", "/customers").
		GET("", h.Customers.List).
		POST("", h.Customers.Create).
		GET("/:id", h.Customers.GetByID).
		PUT("/:id", h.Customers.Update).
		DELETE("/:id", h.Customers.Delete)

	suppliers := NewDomainGroup("suppliers", "/suppliers").
		GET("", h.Suppliers.List).
		POST("", h.Suppliers.Create).
		GET("/:id", h.Suppliers.GetByID).
		PUT("/:id", h.Suppliers.Update).
		DELETE("/:id", h.Suppliers.Delete)

	payments := NewDomainGroup("payments", "/payments").
		GET("", h.Payments.List).
		POST("", h.Payments.Create).
		GET("/:id", h.Payments.GetByID).
		PUT("/:id", h.Payments.Update).
		DELETE("/:id", h.Payments.Delete)

	return []RouteRegistrar{
		orders, purchases, products, categories, inventory,
		notifications, customers, suppliers, payments,
	}
}

// RegisterOps mounts the unauthenticated operational routes on the engine
func RegisterOps(engine *gin.Engine, system *handler.SystemHandler, swagger middleware.SwaggerConfig) {
	engine.GET("/health", system.Health)
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(swagger),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)
}
