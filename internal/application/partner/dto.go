package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/domain/shared"
)

// ContactInput is the shared part of customer and supplier bodies
type ContactInput struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Phone   string `json:"phone" binding:"required,max=50"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address" binding:"max=500"`
}

func (c ContactInput) toDomain() partner.Contact {
	return partner.Contact{Name: c.Name, Phone: c.Phone, Email: c.Email, Address: c.Address}
}

// CustomerRequest is the body of customer create and update
type CustomerRequest struct {
	ContactInput
	CustomerType string `json:"customerType" binding:"omitempty,max=30"`
}

// SupplierRequest is the body of supplier create and update
type SupplierRequest struct {
	ContactInput
	GSTNumber string `json:"gstNumber" binding:"max=20"`
}

// ListPartiesRequest holds the query parameters of the party listings
type ListPartiesRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"orderBy"`
	OrderDir string `form:"orderDir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search"`
}

func (r ListPartiesRequest) toFilter() shared.Filter {
	return shared.Filter{
		Page:     r.Page,
		PageSize: r.PageSize,
		OrderBy:  r.OrderBy,
		OrderDir: r.OrderDir,
		Search:   r.Search,
	}.Normalize()
}

// ContactResponse is the shared part of party responses
type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ContactResponse
	CustomerType string `json:"customerType"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ContactResponse
	GSTNumber string `json:"gstNumber,omitempty"`
}

func contactResponse(e shared.TenantEntity, c partner.Contact) ContactResponse {
	return ContactResponse{
		ID:        e.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ToCustomerResponse converts a customer to a response
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ContactResponse: contactResponse(c.TenantEntity, c.Contact),
		CustomerType:    c.CustomerType,
	}
}

// ToSupplierResponse converts a supplier to a response
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ContactResponse: contactResponse(s.TenantEntity, s.Contact),
		GSTNumber:       s.GSTNumber,
	}
}
