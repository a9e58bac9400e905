package shared

import "github.com/google/uuid"

// Actor identifies who performs an operation. It is taken from the
// authenticated request and trusted without re-validation.
type Actor struct {
	TenantID uuid.UUID
	UserID   uuid.UUID
	UserName string
}

// Validate checks that the actor carries a tenant and a user
func (a Actor) Validate() error {
	if a.TenantID == uuid.Nil {
		return NewDomainError(ErrUnauthorized.Code, "Tenant context is required")
	}
	if a.UserID == uuid.Nil {
		return NewDomainError(ErrUnauthorized.Code, "User context is required")
	}
	return nil
}
