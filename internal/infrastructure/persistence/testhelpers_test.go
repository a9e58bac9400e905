package persistence

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/catalog"
	"github.com/shopledger/backend/internal/domain/inventory"
	"github.com/shopledger/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// A single connection keeps every query on the same in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

// newMockDB creates a GORM DB on top of sqlmock using the postgres dialect
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

// seedProduct stores a product with one variant holding qty units
func seedProduct(t *testing.T, db *gorm.DB, tenantID uuid.UUID, name string, qty, minStock int64) *catalog.Product {
	t.Helper()

	p, err := catalog.NewProduct(tenantID, name, "", nil, []catalog.VariantSpec{{
		PackingSize:   "1kg",
		RetailPrice:   decimal.NewFromInt(100),
		PurchasePrice: decimal.NewFromInt(80),
		TaxRate:       decimal.NewFromInt(5),
		MinStockLevel: minStock,
	}})
	require.NoError(t, err)
	p.Variants[0].Quantity = qty

	repo := NewGormProductRepository(db)
	require.NoError(t, repo.Create(t.Context(), p))
	return p
}

func refOf(p *catalog.Product, i int) inventory.VariantRef {
	return inventory.VariantRef{ProductID: p.ID, VariantID: p.Variants[i].ID}
}
