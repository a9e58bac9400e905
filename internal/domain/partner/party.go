package partner

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
)

// Customer buys from the shop
type Customer struct {
	shared.TenantEntity
	Contact
	CustomerType string
	IsDeleted    bool
}

// NewCustomer creates a customer
func NewCustomer(tenantID uuid.UUID, contact Contact, customerType string) (*Customer, error) {
	c, err := contact.normalized()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(customerType) == "" {
		customerType = "retail"
	}
	return &Customer{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Contact:      c,
		CustomerType: strings.TrimSpace(customerType),
	}, nil
}

// Update replaces the customer's contact details
func (c *Customer) Update(contact Contact, customerType string) error {
	n, err := contact.normalized()
	if err != nil {
		return err
	}
	c.Contact = n
	if strings.TrimSpace(customerType) != "" {
		c.CustomerType = strings.TrimSpace(customerType)
	}
	c.Touch()
	return nil
}

// Delete soft-deletes the customer
func (c *Customer) Delete() error {
	if c.IsDeleted {
		return shared.NewNotFoundError("Customer")
	}
	c.IsDeleted = true
	c.Touch()
	return nil
}

// Supplier sells to the shop
type Supplier struct {
	shared.TenantEntity
	Contact
	GSTNumber string
	IsDeleted bool
}

// NewSupplier creates a supplier
func NewSupplier(tenantID uuid.UUID, contact Contact, gstNumber string) (*Supplier, error) {
	c, err := contact.normalized()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(gstNumber)) > 20 {
		return nil, shared.NewValidationError("GST number cannot exceed 20 characters")
	}
	return &Supplier{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Contact:      c,
		GSTNumber:    strings.ToUpper(strings.TrimSpace(gstNumber)),
	}, nil
}

// Update replaces the supplier's contact details
func (s *Supplier) Update(contact Contact, gstNumber string) error {
	n, err := contact.normalized()
	if err != nil {
		return err
	}
	s.Contact = n
	s.GSTNumber = strings.ToUpper(strings.TrimSpace(gstNumber))
	s.Touch()
	return nil
}

// Delete soft-deletes the supplier
func (s *Supplier) Delete() error {
	if s.IsDeleted {
		return shared.NewNotFoundError("Supplier")
	}
	s.IsDeleted = true
	s.Touch()
	return nil
}
