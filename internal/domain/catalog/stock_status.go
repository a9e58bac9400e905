package catalog

// StockStatus is the display status of a variant's on-hand quantity
type StockStatus string

const (
	StockStatusOutOfStock StockStatus = "Out of Stock"
	StockStatusLowStock   StockStatus = "Low Stock"
	StockStatusInStock    StockStatus = "In Stock"
)

// DeriveStockStatus maps a quantity and threshold to a status
func DeriveStockStatus(quantity, minStockLevel int64) StockStatus {
	switch {
	case quantity <= 0:
		return StockStatusOutOfStock
	case quantity < minStockLevel:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}
