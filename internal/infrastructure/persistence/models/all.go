package models

// All returns every model in migration order. Used by AutoMigrate in tests
// and development; production schemas come from the SQL migrations.
func All() []any {
	return []any{
		&CategoryModel{},
		&ProductModel{},
		&ProductVariantModel{},
		&StockMovementModel{},
		&SalesOrderModel{},
		&SalesOrderLineModel{},
		&PurchaseOrderModel{},
		&PurchaseOrderLineModel{},
		&NotificationModel{},
		&CustomerModel{},
		&SupplierModel{},
		&PaymentModel{},
	}
}
