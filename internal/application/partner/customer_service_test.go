package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Customer, int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]partner.Customer), args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerRepository) ExistsByPhone(ctx context.Context, tenantID uuid.UUID, phone string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, tenantID, phone, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, c *partner.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func customerRequest(phone string) CustomerRequest {
	return CustomerRequest{
		ContactInput: ContactInput{Name: "Meera Stores", Phone: phone, Email: "meera@example.com"},
	}
}

func TestCustomerService_Create(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	repo := new(MockCustomerRepository)
	repo.On("ExistsByPhone", ctx, tenantID, "98450 12345", uuid.Nil).Return(false, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*partner.Customer")).Return(nil)

	resp, err := NewCustomerService(repo).Create(ctx, tenantID, customerRequest(" 98450 12345 "))

	require.NoError(t, err)
	assert.Equal(t, "Meera Stores", resp.Name)
	assert.Equal(t, "98450 12345", resp.Phone)
	assert.Equal(t, "retail", resp.CustomerType)
	repo.AssertExpectations(t)
}

func TestCustomerService_CreateDuplicatePhone(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	repo := new(MockCustomerRepository)
	repo.On("ExistsByPhone", ctx, tenantID, "98450 12345", uuid.Nil).Return(true, nil)

	_, err := NewCustomerService(repo).Create(ctx, tenantID, customerRequest("98450 12345"))

	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	assert.Equal(t, "This number is already registered.", err.Error())
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCustomerService_UpdateKeepsOwnPhone(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	existing, err := partner.NewCustomer(tenantID, partner.Contact{Name: "Old", Phone: "111"}, "wholesale")
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	repo.On("FindByID", ctx, tenantID, existing.ID).Return(existing, nil)
	repo.On("ExistsByPhone", ctx, tenantID, "111", existing.ID).Return(false, nil)
	repo.On("Save", ctx, existing).Return(nil)

	req := customerRequest("111")
	resp, err := NewCustomerService(repo).Update(ctx, tenantID, existing.ID, req)

	require.NoError(t, err)
	assert.Equal(t, "Meera Stores", resp.Name)
	assert.Equal(t, "wholesale", resp.CustomerType)
	repo.AssertExpectations(t)
}

func TestCustomerService_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	id := uuid.New()
	repo := new(MockCustomerRepository)
	repo.On("FindByID", ctx, tenantID, id).Return(nil, shared.NewNotFoundError("Customer"))

	err := NewCustomerService(repo).Delete(ctx, tenantID, id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCustomerService_NameOfUnknown(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	id := uuid.New()
	repo := new(MockCustomerRepository)
	repo.On("FindByID", ctx, tenantID, id).Return(nil, shared.NewNotFoundError("Customer"))

	assert.Empty(t, NewCustomerService(repo).NameOf(ctx, tenantID, id))
}
