package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	tradeapp "github.com/shopledger/backend/internal/application/trade"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPurchaseOrders struct {
	mock.Mock
}

func (m *mockPurchaseOrders) Create(ctx context.Context, actor shared.Actor, req tradeapp.CreatePurchaseOrderRequest) (*tradeapp.PurchaseOrderResponse, []shared.DomainEvent, error) {
	args := m.Called(ctx, actor, req)
	resp, _ := args.Get(0).(*tradeapp.PurchaseOrderResponse)
	events, _ := args.Get(1).([]shared.DomainEvent)
	return resp, events, args.Error(2)
}

func (m *mockPurchaseOrders) Update(ctx context.Context, actor shared.Actor, req tradeapp.UpdatePurchaseOrderRequest) (*tradeapp.PurchaseOrderResponse, []shared.DomainEvent, error) {
	args := m.Called(ctx, actor, req)
	resp, _ := args.Get(0).(*tradeapp.PurchaseOrderResponse)
	events, _ := args.Get(1).([]shared.DomainEvent)
	return resp, events, args.Error(2)
}

func (m *mockPurchaseOrders) Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) ([]shared.DomainEvent, error) {
	args := m.Called(ctx, actor, id)
	events, _ := args.Get(0).([]shared.DomainEvent)
	return events, args.Error(1)
}

func (m *mockPurchaseOrders) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*tradeapp.PurchaseOrderResponse, error) {
	args := m.Called(ctx, tenantID, id)
	resp, _ := args.Get(0).(*tradeapp.PurchaseOrderResponse)
	return resp, args.Error(1)
}

func (m *mockPurchaseOrders) List(ctx context.Context, tenantID uuid.UUID, supplierID *uuid.UUID, req tradeapp.ListOrdersRequest) (shared.Paginated[tradeapp.PurchaseOrderResponse], error) {
	args := m.Called(ctx, tenantID, supplierID, req)
	return args.Get(0).(shared.Paginated[tradeapp.PurchaseOrderResponse]), args.Error(1)
}

func setupPurchaseOrders(actor shared.Actor) (*mockPurchaseOrders, http.Handler) {
	orders := &mockPurchaseOrders{}
	h := NewPurchaseOrderHandler(orders, nil)

	r := newTestRouter(actor)
	r.POST("/purchase-order", h.Create)
	r.PUT("/purchase-order", h.Update)
	r.DELETE("/purchase-order", h.Delete)
	r.GET("/purchase-order", h.List)
	r.GET("/purchase-order/:id", h.GetByID)
	r.GET("/purchase-order/supplier/:supplierId", h.ListBySupplier)
	return orders, r
}

func purchaseOrderBody(supplierID uuid.UUID, quantity int64) map[string]any {
	return map[string]any{
		"supplierId":    supplierID.String(),
		"paymentStatus": "pending",
		"chequeNumber":  "004211",
		"products": []map[string]any{{
			"productId": uuid.NewString(),
			"variantId": uuid.NewString(),
			"unit":      12,
			"carton":    1,
			"quantity":  quantity,
		}},
	}
}

func TestPurchaseOrderHandler_Create(t *testing.T) {
	actor := testActor()
	orders, r := setupPurchaseOrders(actor)
	supplierID := uuid.New()

	orders.On("Create", mock.Anything, actor, mock.MatchedBy(func(req tradeapp.CreatePurchaseOrderRequest) bool {
		return req.SupplierID == supplierID && req.ChequeNumber == "004211" && req.Products[0].Quantity == 20
	})).Return(&tradeapp.PurchaseOrderResponse{BillNumber: "PB-77", SupplierID: supplierID}, nil, nil)

	rec := doRequest(r, http.MethodPost, "/purchase-order", purchaseOrderBody(supplierID, 20))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Purchase order created successfully", decodeResponse(t, rec).Message)
	assert.Equal(t, "PB-77", decodeData[tradeapp.PurchaseOrderResponse](t, rec).BillNumber)
	orders.AssertExpectations(t)
}

func TestPurchaseOrderHandler_Create_MissingSupplier(t *testing.T) {
	actor := testActor()
	orders, r := setupPurchaseOrders(actor)

	body := purchaseOrderBody(uuid.New(), 5)
	delete(body, "supplierId")

	rec := doRequest(r, http.MethodPost, "/purchase-order", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseOrderHandler_Update_StockWouldGoNegative(t *testing.T) {
	actor := testActor()
	orders, r := setupPurchaseOrders(actor)
	orderID := uuid.New()

	body := purchaseOrderBody(uuid.New(), 1)
	delete(body, "supplierId")
	body["id"] = orderID.String()

	orders.On("Update", mock.Anything, actor, mock.Anything).
		Return(nil, nil, shared.NewDomainError(shared.ErrInsufficientStock.Code, "Insufficient stock for Soap 100g"))

	rec := doRequest(r, http.MethodPut, "/purchase-order", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INSUFFICIENT_STOCK", decodeResponse(t, rec).Error.Code)
}

func TestPurchaseOrderHandler_Delete(t *testing.T) {
	actor := testActor()
	orders, r := setupPurchaseOrders(actor)
	orderID := uuid.New()

	orders.On("Delete", mock.Anything, actor, orderID).Return(nil, nil)

	rec := doRequest(r, http.MethodDelete, "/purchase-order?id="+orderID.String(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Purchase order deleted successfully", decodeResponse(t, rec).Message)
}

func TestPurchaseOrderHandler_GetByID_NotFound(t *testing.T) {
	actor := testActor()
	orders, r := setupPurchaseOrders(actor)
	orderID := uuid.New()

	orders.On("GetByID", mock.Anything, actor.TenantID, orderID).Return(nil, shared.NewNotFoundError("Purchase order"))

	rec := doRequest(r, http.MethodGet, "/purchase-order/"+orderID.String(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Purchase order not found", decodeResponse(t, rec).Message)
}

func TestPurchaseOrderHandler_ListBySupplier(t *testing.T) {
	actor := testActor()
	orders, r := setupPurchaseOrders(actor)
	supplierID := uuid.New()

	orders.On("List", mock.Anything, actor.TenantID, &supplierID, tradeapp.ListOrdersRequest{}).
		Return(shared.Paginated[tradeapp.PurchaseOrderResponse]{
			Items:    []tradeapp.PurchaseOrderResponse{{BillNumber: "PB-1"}, {BillNumber: "PB-2"}},
			Total:    2,
			Page:     1,
			PageSize: 20,
		}, nil)

	rec := doRequest(r, http.MethodGet, "/purchase-order/supplier/"+supplierID.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]tradeapp.PurchaseOrderResponse](t, rec), 2)
	orders.AssertExpectations(t)
}
