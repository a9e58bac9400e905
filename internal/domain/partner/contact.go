package partner

import (
	"regexp"
	"strings"

	"github.com/shopledger/backend/internal/domain/shared"
)

var (
	phonePattern = regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// Contact holds the reachability details shared by customers and suppliers.
// Phone numbers are unique per tenant and party kind.
type Contact struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// ErrDuplicatePhone is returned when another party already uses the phone
var ErrDuplicatePhone = shared.NewDomainError(shared.ErrAlreadyExists.Code, "This number is already registered.")

func (c Contact) normalized() (Contact, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
	c.Address = strings.TrimSpace(c.Address)

	if c.Name == "" {
		return c, shared.NewValidationError("Name cannot be empty")
	}
	if len(c.Name) > 200 {
		return c, shared.NewValidationError("Name cannot exceed 200 characters")
	}
	if c.Phone == "" {
		return c, shared.NewValidationError("Phone number is required")
	}
	if len(c.Phone) > 50 || !phonePattern.MatchString(c.Phone) {
		return c, shared.NewValidationError("Invalid phone number format")
	}
	if c.Email != "" && !emailPattern.MatchString(c.Email) {
		return c, shared.NewValidationError("Invalid email format")
	}
	return c, nil
}
