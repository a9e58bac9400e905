package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	financeapp "github.com/shopledger/backend/internal/application/finance"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPayments struct {
	mock.Mock
}

func (m *mockPayments) Create(ctx context.Context, actor shared.Actor, req financeapp.PaymentRequest) (*financeapp.PaymentResponse, []shared.DomainEvent, error) {
	args := m.Called(ctx, actor, req)
	resp, _ := args.Get(0).(*financeapp.PaymentResponse)
	events, _ := args.Get(1).([]shared.DomainEvent)
	return resp, events, args.Error(2)
}

func (m *mockPayments) Update(ctx context.Context, tenantID, id uuid.UUID, req financeapp.PaymentRequest) (*financeapp.PaymentResponse, error) {
	args := m.Called(ctx, tenantID, id, req)
	resp, _ := args.Get(0).(*financeapp.PaymentResponse)
	return resp, args.Error(1)
}

func (m *mockPayments) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*financeapp.PaymentResponse, error) {
	args := m.Called(ctx, tenantID, id)
	resp, _ := args.Get(0).(*financeapp.PaymentResponse)
	return resp, args.Error(1)
}

func (m *mockPayments) List(ctx context.Context, tenantID uuid.UUID, req financeapp.ListPaymentsRequest) (shared.Paginated[financeapp.PaymentResponse], error) {
	args := m.Called(ctx, tenantID, req)
	return args.Get(0).(shared.Paginated[financeapp.PaymentResponse]), args.Error(1)
}

func (m *mockPayments) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

func setupPayments(actor shared.Actor) (*mockPayments, *mockPublisher, http.Handler) {
	payments := &mockPayments{}
	events := &mockPublisher{}
	h := NewPaymentHandler(payments, events)
	r := newTestRouter(actor)
	r.POST("/payments", h.Create)
	r.GET("/payments", h.List)
	r.GET("/payments/:id", h.GetByID)
	r.PUT("/payments/:id", h.Update)
	r.DELETE("/payments/:id", h.Delete)
	return payments, events, r
}

func TestPaymentHandler_Create(t *testing.T) {
	actor := testActor()
	payments, events, r := setupPayments(actor)
	customerID := uuid.New()
	emitted := []shared.DomainEvent{testEvent(actor.TenantID)}

	payments.On("Create", mock.Anything, actor, mock.MatchedBy(func(req financeapp.PaymentRequest) bool {
		return req.PartyType == "customer" &&
			req.PartyID == customerID &&
			req.Amount.Equal(decimal.NewFromInt(500)) &&
			req.UPITransactionID == "UPI-991"
	})).Return(&financeapp.PaymentResponse{
		PartyType:     "customer",
		PartyID:       customerID,
		Amount:        decimal.NewFromInt(500),
		PaymentFields: shared.PaymentFields{UPITransactionID: "UPI-991"},
	}, emitted, nil)
	events.On("Publish", mock.Anything, emitted).Return(nil)

	rec := doRequest(r, http.MethodPost, "/payments", map[string]any{
		"partyType":        "customer",
		"partyId":          customerID.String(),
		"amount":           "500",
		"paymentType":      "receipt",
		"paymentMode":      "upi",
		"upiTransactionId": "UPI-991",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeData[financeapp.PaymentResponse](t, rec)
	assert.Equal(t, "UPI-991", got.UPITransactionID)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(500)))
	payments.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestPaymentHandler_Create_BadPartyType(t *testing.T) {
	actor := testActor()
	payments, _, r := setupPayments(actor)

	rec := doRequest(r, http.MethodPost, "/payments", map[string]any{
		"partyType":   "employee",
		"partyId":     uuid.NewString(),
		"amount":      "10",
		"paymentType": "receipt",
		"paymentMode": "cash",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentHandler_UpdateGetDelete(t *testing.T) {
	actor := testActor()
	payments, events, r := setupPayments(actor)
	paymentID := uuid.New()

	payments.On("Update", mock.Anything, actor.TenantID, paymentID, mock.MatchedBy(func(req financeapp.PaymentRequest) bool {
		return req.ChequeNumber == "000123"
	})).Return(&financeapp.PaymentResponse{ID: paymentID}, nil)
	payments.On("GetByID", mock.Anything, actor.TenantID, paymentID).Return(&financeapp.PaymentResponse{ID: paymentID}, nil)
	payments.On("Delete", mock.Anything, actor.TenantID, paymentID).Return(shared.NewNotFoundError("Payment"))

	rec := doRequest(r, http.MethodPut, "/payments/"+paymentID.String(), map[string]any{
		"amount":       "75.25",
		"paymentType":  "outlay",
		"paymentMode":  "cheque",
		"chequeNumber": "000123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Payment updated successfully", decodeResponse(t, rec).Message)

	rec = doRequest(r, http.MethodGet, "/payments/"+paymentID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, paymentID, decodeData[financeapp.PaymentResponse](t, rec).ID)

	rec = doRequest(r, http.MethodDelete, "/payments/"+paymentID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	payments.AssertExpectations(t)
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestPaymentHandler_List(t *testing.T) {
	actor := testActor()
	payments, _, r := setupPayments(actor)

	payments.On("List", mock.Anything, actor.TenantID, financeapp.ListPaymentsRequest{PartyType: "supplier"}).
		Return(shared.Paginated[financeapp.PaymentResponse]{
			Items:    []financeapp.PaymentResponse{{PartyType: "supplier"}},
			Total:    1,
			Page:     1,
			PageSize: 20,
		}, nil)

	rec := doRequest(r, http.MethodGet, "/payments?partyType=supplier", nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, decodeData[[]financeapp.PaymentResponse](t, rec), 1)
}
