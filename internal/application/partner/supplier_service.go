package partner

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/domain/shared"
)

// SupplierService manages suppliers
type SupplierService struct {
	repo partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(repo partner.SupplierRepository) *SupplierService {
	return &SupplierService{repo: repo}
}

// Create adds a supplier. The phone number must be unused in the tenant.
func (s *SupplierService) Create(ctx context.Context, tenantID uuid.UUID, req SupplierRequest) (*SupplierResponse, error) {
	if err := s.ensurePhoneFree(ctx, tenantID, req.Phone, uuid.Nil); err != nil {
		return nil, err
	}
	sup, err := partner.NewSupplier(tenantID, req.toDomain(), req.GSTNumber)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, sup); err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(sup)
	return &resp, nil
}

// Update replaces a supplier's details
func (s *SupplierService) Update(ctx context.Context, tenantID, id uuid.UUID, req SupplierRequest) (*SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensurePhoneFree(ctx, tenantID, req.Phone, id); err != nil {
		return nil, err
	}
	if err := sup.Update(req.toDomain(), req.GSTNumber); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, sup); err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(sup)
	return &resp, nil
}

func (s *SupplierService) ensurePhoneFree(ctx context.Context, tenantID uuid.UUID, phone string, excludeID uuid.UUID) error {
	taken, err := s.repo.ExistsByPhone(ctx, tenantID, strings.TrimSpace(phone), excludeID)
	if err != nil {
		return err
	}
	if taken {
		return partner.ErrDuplicatePhone
	}
	return nil
}

// GetByID returns a supplier
func (s *SupplierService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(sup)
	return &resp, nil
}

// List returns a page of suppliers
func (s *SupplierService) List(ctx context.Context, tenantID uuid.UUID, req ListPartiesRequest) (shared.Paginated[SupplierResponse], error) {
	filter := req.toFilter()
	list, total, err := s.repo.List(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[SupplierResponse]{}, err
	}
	out := make([]SupplierResponse, len(list))
	for i := range list {
		out[i] = ToSupplierResponse(&list[i])
	}
	return shared.NewPaginated(out, total, filter.Page, filter.PageSize), nil
}

// Delete soft-deletes a supplier
func (s *SupplierService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	sup, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err := sup.Delete(); err != nil {
		return err
	}
	return s.repo.Save(ctx, sup)
}

// NameOf returns the supplier's name, or an empty string when unknown
func (s *SupplierService) NameOf(ctx context.Context, tenantID, id uuid.UUID) string {
	sup, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return ""
	}
	return sup.Name
}
