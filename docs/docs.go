// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go --v3.1
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
  "openapi": "3.1.0",
  "info": {
    "title": "{{.Title}}",
    "description": "{{escape .Description}}",
    "version": "{{.Version}}"
  },
  "servers": [{"url": "/api/v1"}],
  "components": {
    "securitySchemes": {
      "BearerAuth": {"type": "http", "scheme": "bearer", "bearerFormat": "JWT"}
    }
  },
  "security": [{"BearerAuth": []}],
  "paths": {
    "/order": {
      "get": {"operationId": "listSalesOrders", "tags": ["orders"], "summary": "List sales orders"},
      "post": {"operationId": "createSalesOrder", "tags": ["orders"], "summary": "Create a sales order"},
      "put": {"operationId": "updateSalesOrder", "tags": ["orders"], "summary": "Update a sales order"},
      "delete": {"operationId": "deleteSalesOrder", "tags": ["orders"], "summary": "Delete a sales order"}
    },
    "/order/{id}": {
      "get": {"operationId": "getSalesOrder", "tags": ["orders"], "summary": "Get a sales order"}
    },
    "/order/customer/{customerId}": {
      "get": {"operationId": "listSalesOrdersByCustomer", "tags": ["orders"], "summary": "List the sales orders of a customer"}
    },
    "/order/{id}/invoice": {
      "get": {"operationId": "getOrderInvoice", "tags": ["print"], "summary": "Render the invoice of a sales order"}
    },
    "/order/{id}/slip": {
      "get": {"operationId": "getOrderSlip", "tags": ["print"], "summary": "Render the receipt slip of a sales order"}
    },
    "/purchase-order": {
      "get": {"operationId": "listPurchaseOrders", "tags": ["purchase-orders"], "summary": "List purchase orders"},
      "post": {"operationId": "createPurchaseOrder", "tags": ["purchase-orders"], "summary": "Create a purchase order"},
      "put": {"operationId": "updatePurchaseOrder", "tags": ["purchase-orders"], "summary": "Update a purchase order"},
      "delete": {"operationId": "deletePurchaseOrder", "tags": ["purchase-orders"], "summary": "Delete a purchase order"}
    },
    "/purchase-order/{id}": {
      "get": {"operationId": "getPurchaseOrder", "tags": ["purchase-orders"], "summary": "Get a purchase order"}
    },
    "/purchase-order/supplier/{supplierId}": {
      "get": {"operationId": "listPurchaseOrdersBySupplier", "tags": ["purchase-orders"], "summary": "List the purchase orders of a supplier"}
    },
    "/products": {
      "get": {"operationId": "listProducts", "tags": ["products"], "summary": "List products"},
      "post": {"operationId": "createProduct", "tags": ["products"], "summary": "Create a product"}
    },
    "/products/{id}": {
      "get": {"operationId": "getProduct", "tags": ["products"], "summary": "Get a product"},
      "put": {"operationId": "updateProduct", "tags": ["products"], "summary": "Update a product"},
      "delete": {"operationId": "deleteProduct", "tags": ["products"], "summary": "Delete a product"}
    },
    "/categories": {
      "get": {"operationId": "listCategories", "tags": ["categories"], "summary": "List categories"},
      "post": {"operationId": "createCategory", "tags": ["categories"], "summary": "Create a category"}
    },
    "/categories/{id}": {
      "put": {"operationId": "updateCategory", "tags": ["categories"], "summary": "Update a category"},
      "delete": {"operationId": "deleteCategory", "tags": ["categories"], "summary": "Delete a category"}
    },
    "/stock-movements": {
      "get": {"operationId": "listStockMovements", "tags": ["inventory"], "summary": "List stock movements"}
    },
    "/stock-adjustments": {
      "post": {"operationId": "adjustStock", "tags": ["inventory"], "summary": "Adjust stock manually"}
    },
    "/notifications": {
      "get": {"operationId": "listNotifications", "tags": ["notifications"], "summary": "List notifications"}
    },
    "/notifications/{id}/read": {
      "put": {"operationId": "markNotificationRead", "tags": ["notifications"], "summary": "Mark a notification as read"}
    },
    "/notifications/{id}": {
      "delete": {"operationId": "deleteNotification", "tags": ["notifications"], "summary": "Delete a notification"}
    },
    "/customers": {
      "get": {"operationId": "listCustomers", "tags": ["customers"], "summary": "List customers"},
      "post": {"operationId": "createCustomer", "tags": ["customers"], "summary": "Create a customer"}
    },
    "/customers/{id}": {
      "get": {"operationId": "getCustomer", "tags": ["customers"], "summary": "Get a customer"},
      "put": {"operationId": "updateCustomer", "tags": ["customers"], "summary": "Update a customer"},
      "delete": {"operationId": "deleteCustomer", "tags": ["customers"], "summary": "Delete a customer"}
    },
    "/suppliers": {
      "get": {"operationId": "listSuppliers", "tags": ["suppliers"], "summary": "List suppliers"},
      "post": {"operationId": "createSupplier", "tags": ["suppliers"], "summary": "Create a supplier"}
    },
    "/suppliers/{id}": {
      "get": {"operationId": "getSupplier", "tags": ["suppliers"], "summary": "Get a supplier"},
      "put": {"operationId": "updateSupplier", "tags": ["suppliers"], "summary": "Update a supplier"},
      "delete": {"operationId": "deleteSupplier", "tags": ["suppliers"], "summary": "Delete a supplier"}
    },
    "/payments": {
      "get": {"operationId": "listPayments", "tags": ["payments"], "summary": "List payments"},
      "post": {"operationId": "createPayment", "tags": ["payments"], "summary": "Record a payment"}
    },
    "/payments/{id}": {
      "get": {"operationId": "getPayment", "tags": ["payments"], "summary": "Get a payment"},
      "put": {"operationId": "updatePayment", "tags": ["payments"], "summary": "Update a payment"},
      "delete": {"operationId": "deletePayment", "tags": ["payments"], "summary": "Delete a payment"}
    }
  }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Title:            "ShopLedger API",
	Description:      "Retail back-office: catalog, stock ledger, sales and purchase orders, payments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
