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

type mockSalesOrders struct {
	mock.Mock
}

func (m *mockSalesOrders) Create(ctx context.Context, actor shared.Actor, req tradeapp.CreateSalesOrderRequest) (*tradeapp.SalesOrderResponse, []shared.DomainEvent, error) {
	args := m.Called(ctx, actor, req)
	resp, _ := args.Get(0).(*tradeapp.SalesOrderResponse)
	events, _ := args.Get(1).([]shared.DomainEvent)
	return resp, events, args.Error(2)
}

func (m *mockSalesOrders) Update(ctx context.Context, actor shared.Actor, req tradeapp.UpdateSalesOrderRequest) (*tradeapp.SalesOrderResponse, []shared.DomainEvent, error) {
	args := m.Called(ctx, actor, req)
	resp, _ := args.Get(0).(*tradeapp.SalesOrderResponse)
	events, _ := args.Get(1).([]shared.DomainEvent)
	return resp, events, args.Error(2)
}

func (m *mockSalesOrders) Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) ([]shared.DomainEvent, error) {
	args := m.Called(ctx, actor, id)
	events, _ := args.Get(0).([]shared.DomainEvent)
	return events, args.Error(1)
}

func (m *mockSalesOrders) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*tradeapp.SalesOrderResponse, error) {
	args := m.Called(ctx, tenantID, id)
	resp, _ := args.Get(0).(*tradeapp.SalesOrderResponse)
	return resp, args.Error(1)
}

func (m *mockSalesOrders) List(ctx context.Context, tenantID uuid.UUID, customerID *uuid.UUID, req tradeapp.ListOrdersRequest) (shared.Paginated[tradeapp.SalesOrderResponse], error) {
	args := m.Called(ctx, tenantID, customerID, req)
	return args.Get(0).(shared.Paginated[tradeapp.SalesOrderResponse]), args.Error(1)
}

func salesOrderBody(customerID uuid.UUID, quantity int64) map[string]any {
	return map[string]any{
		"customerType":  "retail",
		"customerId":    customerID.String(),
		"paymentStatus": "paid",
		"paymentMethod": "upi",
		"total":         "120.00",
		"products": []map[string]any{{
			"productId": uuid.NewString(),
			"variantId": uuid.NewString(),
			"unit":      1,
			"carton":    1,
			"quantity":  quantity,
			"price":     "20.00",
		}},
	}
}

func setupSalesOrders(actor shared.Actor) (*mockSalesOrders, *mockPublisher, http.Handler) {
	orders := &mockSalesOrders{}
	events := &mockPublisher{}
	h := NewSalesOrderHandler(orders, events)

	r := newTestRouter(actor)
	r.POST("/order", h.Create)
	r.PUT("/order", h.Update)
	r.DELETE("/order", h.Delete)
	r.GET("/order", h.List)
	r.GET("/order/:id", h.GetByID)
	r.GET("/order/customer/:customerId", h.ListByCustomer)
	return orders, events, r
}

func TestSalesOrderHandler_Create(t *testing.T) {
	actor := testActor()
	orders, events, r := setupSalesOrders(actor)
	customerID := uuid.New()
	orderID := uuid.New()
	emitted := []shared.DomainEvent{testEvent(actor.TenantID), testEvent(actor.TenantID)}

	orders.On("Create", mock.Anything, actor, mock.MatchedBy(func(req tradeapp.CreateSalesOrderRequest) bool {
		return req.CustomerID == customerID && len(req.Products) == 1 && req.Products[0].Quantity == 6
	})).Return(&tradeapp.SalesOrderResponse{
		InvoiceNumber:    "INV-20261015-1760500000000",
		CustomerID:       customerID,
		DocumentResponse: tradeapp.DocumentResponse{ID: orderID},
	}, emitted, nil)
	events.On("Publish", mock.Anything, emitted).Return(nil)

	rec := doRequest(r, http.MethodPost, "/order", salesOrderBody(customerID, 6))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Order created successfully", resp.Message)
	order := decodeData[tradeapp.SalesOrderResponse](t, rec)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, "INV-20261015-1760500000000", order.InvoiceNumber)
	orders.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestSalesOrderHandler_Create_InsufficientStock(t *testing.T) {
	actor := testActor()
	orders, events, r := setupSalesOrders(actor)

	orders.On("Create", mock.Anything, actor, mock.Anything).
		Return(nil, nil, shared.NewDomainError(shared.ErrInsufficientStock.Code, "Insufficient stock for Rice 1kg"))

	rec := doRequest(r, http.MethodPost, "/order", salesOrderBody(uuid.New(), 600))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "INSUFFICIENT_STOCK", resp.Error.Code)
	assert.Equal(t, "Insufficient stock for Rice 1kg", resp.Message)
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSalesOrderHandler_Create_InvalidBody(t *testing.T) {
	actor := testActor()
	orders, _, r := setupSalesOrders(actor)

	tests := []struct {
		name string
		body any
	}{
		{"malformed json", "{"},
		{"no products", map[string]any{"customerType": "retail", "customerId": uuid.NewString(), "paymentStatus": "paid", "products": []any{}}},
		{"zero quantity", salesOrderBody(uuid.New(), 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(r, http.MethodPost, "/order", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "INVALID_INPUT", decodeResponse(t, rec).Error.Code)
		})
	}
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestSalesOrderHandler_Create_PublishFailureStillSucceeds(t *testing.T) {
	actor := testActor()
	orders, events, r := setupSalesOrders(actor)
	emitted := []shared.DomainEvent{testEvent(actor.TenantID)}

	orders.On("Create", mock.Anything, actor, mock.Anything).
		Return(&tradeapp.SalesOrderResponse{}, emitted, nil)
	events.On("Publish", mock.Anything, emitted).Return(assert.AnError)

	rec := doRequest(r, http.MethodPost, "/order", salesOrderBody(uuid.New(), 1))

	assert.Equal(t, http.StatusOK, rec.Code)
	events.AssertExpectations(t)
}

func TestSalesOrderHandler_Update(t *testing.T) {
	actor := testActor()
	orders, events, r := setupSalesOrders(actor)
	orderID := uuid.New()

	body := salesOrderBody(uuid.New(), 8)
	delete(body, "customerType")
	delete(body, "customerId")
	body["id"] = orderID.String()

	orders.On("Update", mock.Anything, actor, mock.MatchedBy(func(req tradeapp.UpdateSalesOrderRequest) bool {
		return req.ID == orderID && req.Products[0].Quantity == 8
	})).Return(&tradeapp.SalesOrderResponse{DocumentResponse: tradeapp.DocumentResponse{ID: orderID}}, nil, nil)

	rec := doRequest(r, http.MethodPut, "/order", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Order updated successfully", decodeResponse(t, rec).Message)
	orders.AssertExpectations(t)
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSalesOrderHandler_Delete(t *testing.T) {
	actor := testActor()
	orders, _, r := setupSalesOrders(actor)
	orderID := uuid.New()

	orders.On("Delete", mock.Anything, actor, orderID).Return(nil, nil)

	rec := doRequest(r, http.MethodDelete, "/order?id="+orderID.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Order deleted successfully", decodeResponse(t, rec).Message)

	rec = doRequest(r, http.MethodDelete, "/order", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	orders.AssertNumberOfCalls(t, "Delete", 1)
}

func TestSalesOrderHandler_Delete_NotFound(t *testing.T) {
	actor := testActor()
	orders, _, r := setupSalesOrders(actor)
	orderID := uuid.New()

	orders.On("Delete", mock.Anything, actor, orderID).Return(nil, shared.NewNotFoundError("Order"))

	rec := doRequest(r, http.MethodDelete, "/order?id="+orderID.String(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order not found", decodeResponse(t, rec).Message)
}

func TestSalesOrderHandler_GetByID(t *testing.T) {
	actor := testActor()
	orders, _, r := setupSalesOrders(actor)
	orderID := uuid.New()

	orders.On("GetByID", mock.Anything, actor.TenantID, orderID).
		Return(&tradeapp.SalesOrderResponse{DocumentResponse: tradeapp.DocumentResponse{ID: orderID}}, nil)

	rec := doRequest(r, http.MethodGet, "/order/"+orderID.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, orderID, decodeData[tradeapp.SalesOrderResponse](t, rec).ID)
}

func TestSalesOrderHandler_List(t *testing.T) {
	actor := testActor()
	orders, _, r := setupSalesOrders(actor)

	orders.On("List", mock.Anything, actor.TenantID, (*uuid.UUID)(nil), tradeapp.ListOrdersRequest{Page: 2, PageSize: 10, OrderDir: "asc"}).
		Return(shared.Paginated[tradeapp.SalesOrderResponse]{
			Items:    []tradeapp.SalesOrderResponse{{InvoiceNumber: "INV-1"}},
			Total:    11,
			Page:     2,
			PageSize: 10,
		}, nil)

	rec := doRequest(r, http.MethodGet, "/order?page=2&pageSize=10&orderDir=asc", nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(11), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.TotalPages)
	items := decodeData[[]tradeapp.SalesOrderResponse](t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "INV-1", items[0].InvoiceNumber)
}

func TestSalesOrderHandler_List_InvalidQuery(t *testing.T) {
	actor := testActor()
	orders, _, r := setupSalesOrders(actor)

	rec := doRequest(r, http.MethodGet, "/order?orderDir=sideways", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	orders.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSalesOrderHandler_ListByCustomer(t *testing.T) {
	actor := testActor()
	orders, _, r := setupSalesOrders(actor)
	customerID := uuid.New()

	orders.On("List", mock.Anything, actor.TenantID, mock.MatchedBy(func(id *uuid.UUID) bool {
		return id != nil && *id == customerID
	}), mock.Anything).Return(shared.Paginated[tradeapp.SalesOrderResponse]{Page: 1, PageSize: 20}, nil)

	rec := doRequest(r, http.MethodGet, "/order/customer/"+customerID.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(r, http.MethodGet, "/order/customer/nope", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	orders.AssertNumberOfCalls(t, "List", 1)
}
