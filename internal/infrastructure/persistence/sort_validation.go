package persistence

import (
	"strings"

	"github.com/shopledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// paginate applies ordering from the whitelist plus offset and limit
func paginate(query *gorm.DB, filter shared.Filter, allowed map[string]bool) *gorm.DB {
	f := filter.Normalize()
	field := ValidateSortField(f.OrderBy, allowed, "created_at")
	return query.
		Order(field + " " + ValidateSortOrder(f.OrderDir)).
		Offset(f.Offset()).
		Limit(f.PageSize)
}

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
}

// CategorySortFields contains allowed sort fields for categories
var CategorySortFields = map[string]bool{
	"created_at": true,
	"name":       true,
}

// StockMovementSortFields contains allowed sort fields for stock movements
var StockMovementSortFields = map[string]bool{
	"created_at":    true,
	"type":          true,
	"quantity":      true,
	"balance_after": true,
}

// OrderSortFields contains allowed sort fields for sales and purchase orders
var OrderSortFields = map[string]bool{
	"created_at":     true,
	"updated_at":     true,
	"capture_date":   true,
	"invoice_number": true,
	"total":          true,
	"payment_status": true,
}

// NotificationSortFields contains allowed sort fields for notifications
var NotificationSortFields = map[string]bool{
	"created_at": true,
	"type":       true,
	"is_read":    true,
}

// PartySortFields contains allowed sort fields for customers and suppliers
var PartySortFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"phone":      true,
}

// PaymentSortFields contains allowed sort fields for payments
var PaymentSortFields = map[string]bool{
	"created_at":   true,
	"capture_date": true,
	"amount":       true,
}
