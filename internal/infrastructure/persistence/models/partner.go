package models

import (
	"github.com/shopledger/backend/internal/domain/partner"
)

// ContactColumns stores partner.Contact
type ContactColumns struct {
	Name    string `gorm:"type:varchar(200);not null"`
	Phone   string `gorm:"type:varchar(50);index"`
	Email   string `gorm:"type:varchar(200)"`
	Address string `gorm:"type:text"`
}

func contactColumns(c partner.Contact) ContactColumns {
	return ContactColumns{Name: c.Name, Phone: c.Phone, Email: c.Email, Address: c.Address}
}

func (c ContactColumns) toDomain() partner.Contact {
	return partner.Contact{Name: c.Name, Phone: c.Phone, Email: c.Email, Address: c.Address}
}

// CustomerModel is the persistence model for partner.Customer
type CustomerModel struct {
	TenantModel
	ContactColumns
	CustomerType string `gorm:"type:varchar(30);not null;default:'retail'"`
	IsDeleted    bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		TenantEntity: m.TenantEntity(),
		Contact:      m.ContactColumns.toDomain(),
		CustomerType: m.CustomerType,
		IsDeleted:    m.IsDeleted,
	}
}

func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainTenantEntity(c.TenantEntity)
	m.ContactColumns = contactColumns(c.Contact)
	m.CustomerType = c.CustomerType
	m.IsDeleted = c.IsDeleted
}

// SupplierModel is the persistence model for partner.Supplier
type SupplierModel struct {
	TenantModel
	ContactColumns
	GSTNumber string `gorm:"column:gst_number;type:varchar(20)"`
	IsDeleted bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

func (m *SupplierModel) ToDomain() *partner.Supplier {
	return &partner.Supplier{
		TenantEntity: m.TenantEntity(),
		Contact:      m.ContactColumns.toDomain(),
		GSTNumber:    m.GSTNumber,
		IsDeleted:    m.IsDeleted,
	}
}

func (m *SupplierModel) FromDomain(s *partner.Supplier) {
	m.FromDomainTenantEntity(s.TenantEntity)
	m.ContactColumns = contactColumns(s.Contact)
	m.GSTNumber = s.GSTNumber
	m.IsDeleted = s.IsDeleted
}
