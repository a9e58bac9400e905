package partner

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/domain/shared"
)

// CustomerService manages customers
type CustomerService struct {
	repo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(repo partner.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// Create adds a customer. The phone number must be unused in the tenant.
func (s *CustomerService) Create(ctx context.Context, tenantID uuid.UUID, req CustomerRequest) (*CustomerResponse, error) {
	if err := s.ensurePhoneFree(ctx, tenantID, req.Phone, uuid.Nil); err != nil {
		return nil, err
	}
	c, err := partner.NewCustomer(tenantID, req.toDomain(), req.CustomerType)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(c)
	return &resp, nil
}

// Update replaces a customer's details
func (s *CustomerService) Update(ctx context.Context, tenantID, id uuid.UUID, req CustomerRequest) (*CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensurePhoneFree(ctx, tenantID, req.Phone, id); err != nil {
		return nil, err
	}
	if err := c.Update(req.toDomain(), req.CustomerType); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(c)
	return &resp, nil
}

func (s *CustomerService) ensurePhoneFree(ctx context.Context, tenantID uuid.UUID, phone string, excludeID uuid.UUID) error {
	taken, err := s.repo.ExistsByPhone(ctx, tenantID, strings.TrimSpace(phone), excludeID)
	if err != nil {
		return err
	}
	if taken {
		return partner.ErrDuplicatePhone
	}
	return nil
}

// GetByID returns a customer
func (s *CustomerService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(c)
	return &resp, nil
}

// List returns a page of customers
func (s *CustomerService) List(ctx context.Context, tenantID uuid.UUID, req ListPartiesRequest) (shared.Paginated[CustomerResponse], error) {
	filter := req.toFilter()
	list, total, err := s.repo.List(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[CustomerResponse]{}, err
	}
	out := make([]CustomerResponse, len(list))
	for i := range list {
		out[i] = ToCustomerResponse(&list[i])
	}
	return shared.NewPaginated(out, total, filter.Page, filter.PageSize), nil
}

// Delete soft-deletes a customer
func (s *CustomerService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	c, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err := c.Delete(); err != nil {
		return err
	}
	return s.repo.Save(ctx, c)
}

// NameOf returns the customer's name, or an empty string when unknown
func (s *CustomerService) NameOf(ctx context.Context, tenantID, id uuid.UUID) string {
	c, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return ""
	}
	return c.Name
}
