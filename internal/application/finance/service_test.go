package finance

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/finance"
	"github.com/shopledger/backend/internal/domain/notification"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPayments struct {
	items map[uuid.UUID]finance.Payment
}

func (m *memPayments) FindByID(_ context.Context, tenantID, id uuid.UUID) (*finance.Payment, error) {
	p, ok := m.items[id]
	if !ok || p.TenantID != tenantID || p.IsDeleted {
		return nil, shared.NewNotFoundError("Payment")
	}
	return &p, nil
}

func (m *memPayments) List(_ context.Context, tenantID uuid.UUID, _ finance.PaymentFilter) ([]finance.Payment, int64, error) {
	var out []finance.Payment
	for _, p := range m.items {
		if p.TenantID == tenantID && !p.IsDeleted {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memPayments) Save(_ context.Context, p *finance.Payment) error {
	m.items[p.ID] = *p
	return nil
}

type staticNames map[uuid.UUID]string

func (n staticNames) NameOf(_ context.Context, _, id uuid.UUID) string { return n[id] }

var testActor = shared.Actor{TenantID: uuid.New(), UserID: uuid.New(), UserName: "asha"}

func newPaymentFixture(customers, suppliers staticNames) (*PaymentService, *memPayments) {
	repo := &memPayments{items: map[uuid.UUID]finance.Payment{}}
	return NewPaymentService(repo, customers, suppliers), repo
}

func TestPaymentService_CreateCustomerReceipt(t *testing.T) {
	customerID := uuid.New()
	svc, _ := newPaymentFixture(staticNames{customerID: "Meera Stores"}, staticNames{})

	resp, events, err := svc.Create(context.Background(), testActor, PaymentRequest{
		PartyType:     "customer",
		PartyID:       customerID,
		Amount:        decimal.NewFromInt(1500),
		PaymentType:   "receipt",
		PaymentMode:   "upi",
		PaymentFields: shared.PaymentFields{UPITransactionID: "UPI-42"},
	})

	require.NoError(t, err)
	assert.Equal(t, "UPI-42", resp.UPITransactionID)
	require.Len(t, events, 1)
	e := events[0].(*notification.RequestedEvent)
	assert.Equal(t, "Payment Received", e.Draft.Name)
	assert.Equal(t, "Payment of 1500 has been received from Meera Stores.", e.Draft.Description)
	assert.Equal(t, "/customers/"+customerID.String(), e.Draft.Link)
	assert.Equal(t, testActor.TenantID, e.Draft.TenantID)
}

func TestPaymentService_CreateSupplierOutlayUnknownName(t *testing.T) {
	supplierID := uuid.New()
	svc, _ := newPaymentFixture(staticNames{}, staticNames{})

	_, events, err := svc.Create(context.Background(), testActor, PaymentRequest{
		PartyType:   "supplier",
		PartyID:     supplierID,
		Amount:      decimal.RequireFromString("99.50"),
		PaymentType: "outlay",
		PaymentMode: "cash",
	})

	require.NoError(t, err)
	e := events[0].(*notification.RequestedEvent)
	assert.Equal(t, "Payment Outlay", e.Draft.Name)
	assert.Equal(t, "Payment outlay of 99.5 has been made for Unknown Supplier.", e.Draft.Description)
}

func TestPaymentService_CreateRejectsConflictingDetails(t *testing.T) {
	svc, repo := newPaymentFixture(staticNames{}, staticNames{})

	_, _, err := svc.Create(context.Background(), testActor, PaymentRequest{
		PartyType:     "customer",
		PartyID:       uuid.New(),
		Amount:        decimal.NewFromInt(10),
		PaymentType:   "receipt",
		PaymentMode:   "card",
		PaymentFields: shared.PaymentFields{CardNumber: "4111", ChequeNumber: "000123"},
	})

	assert.ErrorIs(t, err, shared.ErrInvalidInput)
	assert.Empty(t, repo.items)
}

func TestPaymentService_UpdateReplacesDetail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPaymentFixture(staticNames{}, staticNames{})
	created, _, err := svc.Create(ctx, testActor, PaymentRequest{
		PartyType:     "customer",
		PartyID:       uuid.New(),
		Amount:        decimal.NewFromInt(10),
		PaymentType:   "receipt",
		PaymentMode:   "card",
		PaymentFields: shared.PaymentFields{CardNumber: "4111"},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, testActor.TenantID, created.ID, PaymentRequest{
		Amount:        decimal.NewFromInt(12),
		PaymentType:   "receipt",
		PaymentMode:   "cheque",
		PaymentFields: shared.PaymentFields{ChequeNumber: "000123"},
	})

	require.NoError(t, err)
	assert.Empty(t, updated.CardNumber)
	assert.Equal(t, "000123", updated.ChequeNumber)
	assert.True(t, decimal.NewFromInt(12).Equal(updated.Amount))

	require.NoError(t, svc.Delete(ctx, testActor.TenantID, created.ID))
	_, err = svc.GetByID(ctx, testActor.TenantID, created.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
