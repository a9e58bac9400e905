// Package models contains GORM persistence models that map to database tables.
// Domain entities stay free of ORM tags; each model converts to and from its
// entity with ToDomain and FromDomain.
//
// Tables:
//   - categories, products, product_variants
//   - stock_movements (append-only)
//   - sales_orders, sales_order_lines, purchase_orders, purchase_order_lines
//   - notifications, customers, suppliers, payments
package models
