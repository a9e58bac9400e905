// Command seed fills a tenant with a fake catalog, customers and suppliers
// for local development. Stock is brought in through purchase orders so the
// ledger starts out consistent with the variant quantities.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	catalogapp "github.com/shopledger/backend/internal/application/catalog"
	partnerapp "github.com/shopledger/backend/internal/application/partner"
	tradeapp "github.com/shopledger/backend/internal/application/trade"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/infrastructure/auth"
	"github.com/shopledger/backend/internal/infrastructure/config"
	"github.com/shopledger/backend/internal/infrastructure/logger"
	"github.com/shopledger/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var packingSizes = []string{"100g", "250g", "500g", "1kg", "5kg", "250ml", "1L", "Pack of 6", "Pack of 12"}

var gstRates = []int64{0, 5, 12, 18, 28}

func main() {
	var (
		tenant    string
		user      string
		products  int
		customers int
		suppliers int
		seed      uint64
	)
	flag.StringVar(&tenant, "tenant", "", "Tenant id to seed (default: a new random id)")
	flag.StringVar(&user, "user", "", "User id recorded on orders and ledger entries (default: random)")
	flag.IntVar(&products, "products", 20, "Number of products")
	flag.IntVar(&customers, "customers", 10, "Number of customers")
	flag.IntVar(&suppliers, "suppliers", 3, "Number of suppliers")
	flag.Uint64Var(&seed, "seed", 0, "Random seed (0 picks one)")
	flag.Parse()

	log, err := logger.New(logger.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	actor, err := seedActor(tenant, user)
	if err != nil {
		log.Fatal("Invalid tenant or user id", zap.Error(err))
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	quantities := persistence.NewGormQuantityStore(db.DB)
	ledger := persistence.NewGormStockLedger(db.DB)
	s := &seeder{
		faker:      gofakeit.New(seed),
		actor:      actor,
		categories: catalogapp.NewCategoryService(persistence.NewGormCategoryRepository(db.DB)),
		products: catalogapp.NewProductService(
			persistence.NewGormProductRepository(db.DB),
			persistence.NewGormCategoryRepository(db.DB),
			ledger,
		),
		customers: partnerapp.NewCustomerService(persistence.NewGormCustomerRepository(db.DB)),
		suppliers: partnerapp.NewSupplierService(persistence.NewGormSupplierRepository(db.DB)),
		purchases: tradeapp.NewPurchaseOrderService(persistence.NewGormPurchaseOrderRepository(db.DB), quantities, ledger),
		log:       log,
	}

	ctx := logger.WithContext(context.Background(), log)
	if err := s.run(ctx, products, customers, suppliers); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}

	token, expires, err := auth.NewJWTService(cfg.JWT).IssueToken(actor)
	if err != nil {
		log.Fatal("Failed to issue development token", zap.Error(err))
	}
	log.Info("Seed complete",
		zap.String("tenant_id", actor.TenantID.String()),
		zap.String("user_id", actor.UserID.String()),
		zap.Time("token_expires", expires))
	fmt.Println(token)
}

func seedActor(tenant, user string) (shared.Actor, error) {
	actor := shared.Actor{TenantID: uuid.New(), UserID: uuid.New(), UserName: "Seed"}
	if tenant != "" {
		id, err := uuid.Parse(tenant)
		if err != nil {
			return shared.Actor{}, fmt.Errorf("tenant: %w", err)
		}
		actor.TenantID = id
	}
	if user != "" {
		id, err := uuid.Parse(user)
		if err != nil {
			return shared.Actor{}, fmt.Errorf("user: %w", err)
		}
		actor.UserID = id
	}
	return actor, nil
}

type seeder struct {
	faker      *gofakeit.Faker
	actor      shared.Actor
	categories *catalogapp.CategoryService
	products   *catalogapp.ProductService
	customers  *partnerapp.CustomerService
	suppliers  *partnerapp.SupplierService
	purchases  *tradeapp.PurchaseOrderService
	log        *zap.Logger
}

func (s *seeder) run(ctx context.Context, products, customers, suppliers int) error {
	categoryIDs, err := s.seedCategories(ctx, 5)
	if err != nil {
		return err
	}

	var lines []tradeapp.LineInput
	for i := 0; i < products; i++ {
		p, err := s.products.Create(ctx, s.actor, s.productRequest(categoryIDs))
		if err != nil {
			return fmt.Errorf("create product: %w", err)
		}
		for _, v := range p.Variants {
			lines = append(lines, s.purchaseLine(p.ID, v))
		}
	}
	s.log.Info("Products created", zap.Int("count", products), zap.Int("variants", len(lines)))

	for i := 0; i < customers; i++ {
		_, err := s.customers.Create(ctx, s.actor.TenantID, partnerapp.CustomerRequest{
			ContactInput: s.contact(s.faker.Name()),
			CustomerType: s.faker.RandomString([]string{"retail", "wholesale"}),
		})
		if err := skipDuplicate(err); err != nil {
			return fmt.Errorf("create customer: %w", err)
		}
	}
	s.log.Info("Customers created", zap.Int("count", customers))

	var supplierIDs []uuid.UUID
	for i := 0; i < suppliers; i++ {
		sup, err := s.suppliers.Create(ctx, s.actor.TenantID, partnerapp.SupplierRequest{
			ContactInput: s.contact(s.faker.Company()),
			GSTNumber:    s.faker.Numerify("##") + s.faker.Lexify("?????") + s.faker.Numerify("####") + "Z" + s.faker.Numerify("#"),
		})
		if err := skipDuplicate(err); err != nil {
			return fmt.Errorf("create supplier: %w", err)
		}
		if sup != nil {
			supplierIDs = append(supplierIDs, sup.ID)
		}
	}
	s.log.Info("Suppliers created", zap.Int("count", len(supplierIDs)))

	return s.stockUp(ctx, supplierIDs, lines)
}

func (s *seeder) seedCategories(ctx context.Context, n int) ([]uuid.UUID, error) {
	seen := map[string]bool{}
	var ids []uuid.UUID
	for len(ids) < n {
		name := s.faker.ProductCategory()
		if seen[name] {
			name = fmt.Sprintf("%s %d", name, len(ids)+1)
		}
		seen[name] = true
		c, err := s.categories.Create(ctx, s.actor.TenantID, catalogapp.CategoryRequest{Name: name})
		if err := skipDuplicate(err); err != nil {
			return nil, fmt.Errorf("create category: %w", err)
		}
		if c != nil {
			ids = append(ids, c.ID)
		}
	}
	return ids, nil
}

func (s *seeder) productRequest(categoryIDs []uuid.UUID) catalogapp.CreateProductRequest {
	categoryID := categoryIDs[s.faker.IntN(len(categoryIDs))]
	n := s.faker.IntRange(1, 3)
	variants := make([]catalogapp.VariantInput, n)
	for i := range variants {
		purchase := decimal.NewFromFloat(s.faker.Price(10, 900)).Round(2)
		variants[i] = catalogapp.VariantInput{
			PackingSize:    packingSizes[s.faker.IntN(len(packingSizes))],
			SKU:            s.faker.Lexify("???") + "-" + s.faker.Numerify("#####"),
			Barcode:        s.faker.Numerify("890#########"),
			PurchasePrice:  purchase,
			WholesalePrice: purchase.Mul(decimal.RequireFromString("1.10")).Round(2),
			RetailPrice:    purchase.Mul(decimal.RequireFromString("1.25")).Round(2),
			TaxRate:        decimal.NewFromInt(gstRates[s.faker.IntN(len(gstRates))]),
			MinStockLevel:  int64(s.faker.IntRange(5, 20)),
		}
	}
	return catalogapp.CreateProductRequest{
		Name:        s.faker.ProductName(),
		Description: s.faker.ProductDescription(),
		CategoryID:  &categoryID,
		Variants:    variants,
	}
}

func (s *seeder) purchaseLine(productID uuid.UUID, v catalogapp.VariantResponse) tradeapp.LineInput {
	qty := int64(s.faker.IntRange(10, 200))
	gross := v.PurchasePrice.Mul(decimal.NewFromInt(qty))
	gst := gross.Mul(v.TaxRate).Div(decimal.NewFromInt(100)).Round(2)
	return tradeapp.LineInput{
		ProductID: productID,
		VariantID: v.ID,
		Unit:      qty,
		Carton:    1,
		Quantity:  qty,
		MRP:       v.RetailPrice,
		Price:     v.PurchasePrice,
		GSTRate:   v.TaxRate,
		GSTAmount: gst,
		Total:     gross.Add(gst),
	}
}

// stockUp spreads the variants across the suppliers, one purchase order each
func (s *seeder) stockUp(ctx context.Context, supplierIDs []uuid.UUID, lines []tradeapp.LineInput) error {
	if len(supplierIDs) == 0 || len(lines) == 0 {
		return nil
	}
	batches := make([][]tradeapp.LineInput, len(supplierIDs))
	for i, l := range lines {
		batches[i%len(batches)] = append(batches[i%len(batches)], l)
	}

	for i, batch := range batches {
		if len(batch) == 0 {
			continue
		}
		sub, gst := decimal.Zero, decimal.Zero
		for _, l := range batch {
			sub = sub.Add(l.Total.Sub(l.GSTAmount))
			gst = gst.Add(l.GSTAmount)
		}
		total := sub.Add(gst)
		rounded := total.Round(0)
		_, _, err := s.purchases.Create(ctx, s.actor, tradeapp.CreatePurchaseOrderRequest{
			SupplierID: supplierIDs[i],
			DocumentInput: tradeapp.DocumentInput{
				Products:      batch,
				SubTotal:      sub,
				TotalGST:      gst,
				RoundOff:      rounded.Sub(total),
				Total:         rounded,
				PaymentMethod: "bank_transfer",
				PaymentStatus: "paid",
				PaymentFields: shared.PaymentFields{BankReferenceNumber: s.faker.Numerify("UTR############")},
			},
		})
		if err != nil {
			return fmt.Errorf("create purchase order: %w", err)
		}
	}
	s.log.Info("Opening stock purchased", zap.Int("orders", len(batches)), zap.Int("lines", len(lines)))
	return nil
}

func (s *seeder) contact(name string) partnerapp.ContactInput {
	return partnerapp.ContactInput{
		Name:    name,
		Phone:   s.faker.Numerify("9#########"),
		Email:   s.faker.Email(),
		Address: s.faker.Address().Address,
	}
}

// skipDuplicate ignores conflicts from earlier seed runs
func skipDuplicate(err error) error {
	if errors.Is(err, shared.ErrAlreadyExists) {
		return nil
	}
	return err
}
