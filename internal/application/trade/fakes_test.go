package trade

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/inventory"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
	"github.com/stretchr/testify/mock"
)

type fakeVariant struct {
	name     string
	packing  string
	quantity int64
	min      int64
	deleted  bool
}

// fakeQuantityStore is an in-memory inventory.QuantityStore
type fakeQuantityStore struct {
	mu       sync.Mutex
	variants map[inventory.VariantRef]*fakeVariant
	adjusts  int
	failOn   map[inventory.VariantRef]error
}

func newFakeQuantityStore() *fakeQuantityStore {
	return &fakeQuantityStore{
		variants: make(map[inventory.VariantRef]*fakeVariant),
		failOn:   make(map[inventory.VariantRef]error),
	}
}

func (s *fakeQuantityStore) add(name, packing string, quantity, min int64) inventory.VariantRef {
	ref := inventory.VariantRef{ProductID: uuid.New(), VariantID: uuid.New()}
	s.variants[ref] = &fakeVariant{name: name, packing: packing, quantity: quantity, min: min}
	return ref
}

// deleteProduct marks the variant's product as soft-deleted
func (s *fakeQuantityStore) deleteProduct(ref inventory.VariantRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.variants[ref].deleted = true
}

func (s *fakeQuantityStore) quantity(ref inventory.VariantRef) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.variants[ref].quantity
}

func (s *fakeQuantityStore) GetVariant(_ context.Context, _ uuid.UUID, ref inventory.VariantRef) (*inventory.VariantSnapshot, error) {
	return s.get(ref, false)
}

func (s *fakeQuantityStore) Adjust(_ context.Context, _ uuid.UUID, ref inventory.VariantRef, delta int64) (int64, error) {
	return s.adjust(ref, delta, false)
}

func (s *fakeQuantityStore) IncludingDeleted() inventory.QuantityStore {
	return fakeArchivedView{s}
}

func (s *fakeQuantityStore) get(ref inventory.VariantRef, includeDeleted bool) (*inventory.VariantSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.variants[ref]
	if !ok || (v.deleted && !includeDeleted) {
		return nil, shared.NewNotFoundError("Product variant")
	}
	return &inventory.VariantSnapshot{
		Ref:           ref,
		ProductName:   v.name,
		PackingSize:   v.packing,
		Quantity:      v.quantity,
		MinStockLevel: v.min,
	}, nil
}

func (s *fakeQuantityStore) adjust(ref inventory.VariantRef, delta int64, includeDeleted bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failOn[ref]; err != nil {
		return 0, err
	}
	v, ok := s.variants[ref]
	if !ok || (v.deleted && !includeDeleted) {
		return 0, shared.NewNotFoundError("Product variant")
	}
	s.adjusts++
	v.quantity += delta
	return v.quantity, nil
}

// fakeArchivedView also reaches variants of deleted products
type fakeArchivedView struct {
	s *fakeQuantityStore
}

func (v fakeArchivedView) GetVariant(_ context.Context, _ uuid.UUID, ref inventory.VariantRef) (*inventory.VariantSnapshot, error) {
	return v.s.get(ref, true)
}

func (v fakeArchivedView) Adjust(_ context.Context, _ uuid.UUID, ref inventory.VariantRef, delta int64) (int64, error) {
	return v.s.adjust(ref, delta, true)
}

// fakeLedger is an in-memory inventory.StockLedger
type fakeLedger struct {
	mu      sync.Mutex
	entries []inventory.StockMovement
}

func (l *fakeLedger) Append(_ context.Context, m *inventory.StockMovement) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, *m)
	return nil
}

func (l *fakeLedger) List(context.Context, uuid.UUID, inventory.StockMovementFilter) ([]inventory.StockMovement, int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]inventory.StockMovement(nil), l.entries...), int64(len(l.entries)), nil
}

func (l *fakeLedger) forVariant(ref inventory.VariantRef) []inventory.StockMovement {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []inventory.StockMovement
	for _, m := range l.entries {
		if m.VariantID == ref.VariantID {
			out = append(out, m)
		}
	}
	return out
}

// memSalesOrders is an in-memory trade.SalesOrderRepository
type memSalesOrders struct {
	mu     sync.Mutex
	orders map[uuid.UUID]trade.SalesOrder
}

func newMemSalesOrders() *memSalesOrders {
	return &memSalesOrders{orders: make(map[uuid.UUID]trade.SalesOrder)}
}

func (r *memSalesOrders) FindByID(_ context.Context, tenantID, id uuid.UUID) (*trade.SalesOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok || o.TenantID != tenantID {
		return nil, shared.NewNotFoundError("Order")
	}
	o.Lines = append([]trade.Line(nil), o.Lines...)
	return &o, nil
}

func (r *memSalesOrders) List(_ context.Context, tenantID uuid.UUID, f trade.OrderFilter) ([]trade.SalesOrder, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []trade.SalesOrder
	for _, o := range r.orders {
		if o.TenantID == tenantID && !o.IsDeleted && (f.PartyID == nil || *f.PartyID == o.CustomerID) {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memSalesOrders) Create(_ context.Context, o *trade.SalesOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = *o
	return nil
}

// Save refuses to overwrite an order that is already deleted in storage
func (r *memSalesOrders) Save(_ context.Context, o *trade.SalesOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if stored, ok := r.orders[o.ID]; !ok || stored.IsDeleted {
		return shared.NewNotFoundError("Order")
	}
	r.orders[o.ID] = *o
	return nil
}

// memPurchaseOrders is an in-memory trade.PurchaseOrderRepository
type memPurchaseOrders struct {
	mu     sync.Mutex
	orders map[uuid.UUID]trade.PurchaseOrder
}

func newMemPurchaseOrders() *memPurchaseOrders {
	return &memPurchaseOrders{orders: make(map[uuid.UUID]trade.PurchaseOrder)}
}

func (r *memPurchaseOrders) FindByID(_ context.Context, tenantID, id uuid.UUID) (*trade.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok || o.TenantID != tenantID {
		return nil, shared.NewNotFoundError("Purchase order")
	}
	o.Lines = append([]trade.Line(nil), o.Lines...)
	return &o, nil
}

func (r *memPurchaseOrders) List(_ context.Context, tenantID uuid.UUID, f trade.OrderFilter) ([]trade.PurchaseOrder, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []trade.PurchaseOrder
	for _, o := range r.orders {
		if o.TenantID == tenantID && !o.IsDeleted && (f.PartyID == nil || *f.PartyID == o.SupplierID) {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memPurchaseOrders) Create(_ context.Context, o *trade.PurchaseOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = *o
	return nil
}

func (r *memPurchaseOrders) Save(_ context.Context, o *trade.PurchaseOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if stored, ok := r.orders[o.ID]; !ok || stored.IsDeleted {
		return shared.NewNotFoundError("Purchase order")
	}
	r.orders[o.ID] = *o
	return nil
}

// MockSalesOrderRepository is a mock implementation of trade.SalesOrderRepository
type MockSalesOrderRepository struct {
	mock.Mock
}

func (m *MockSalesOrderRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*trade.SalesOrder, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) List(ctx context.Context, tenantID uuid.UUID, filter trade.OrderFilter) ([]trade.SalesOrder, int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]trade.SalesOrder), args.Get(1).(int64), args.Error(2)
}

func (m *MockSalesOrderRepository) Create(ctx context.Context, order *trade.SalesOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockSalesOrderRepository) Save(ctx context.Context, order *trade.SalesOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
