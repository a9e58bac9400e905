package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/finance"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentRequest is the body of payment create and update. PartyType and
// PartyID are ignored on update.
type PaymentRequest struct {
	PartyType   string          `json:"partyType" binding:"omitempty,oneof=customer supplier"`
	PartyID     uuid.UUID       `json:"partyId"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentType string          `json:"paymentType" binding:"required,max=50"`
	PaymentMode string          `json:"paymentMode" binding:"required,max=50"`
	Notes       string          `json:"notes" binding:"max=1000"`
	CaptureDate *time.Time      `json:"captureDate"`
	shared.PaymentFields
}

func (r PaymentRequest) toInput() (finance.PaymentInput, error) {
	detail, err := r.PaymentDetail()
	if err != nil {
		return finance.PaymentInput{}, err
	}
	return finance.PaymentInput{
		Amount:      r.Amount,
		PaymentType: r.PaymentType,
		PaymentMode: r.PaymentMode,
		Detail:      detail,
		Notes:       r.Notes,
		CaptureDate: r.CaptureDate,
	}, nil
}

// ListPaymentsRequest holds the query parameters of GET /payments
type ListPaymentsRequest struct {
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"pageSize" binding:"omitempty,min=1,max=100"`
	OrderBy   string     `form:"orderBy"`
	OrderDir  string     `form:"orderDir" binding:"omitempty,oneof=asc desc"`
	PartyType string     `form:"partyType" binding:"omitempty,oneof=customer supplier"`
	PartyID   *uuid.UUID `form:"partyId"`
}

func (r ListPaymentsRequest) toFilter() finance.PaymentFilter {
	return finance.PaymentFilter{
		Filter: shared.Filter{
			Page:     r.Page,
			PageSize: r.PageSize,
			OrderBy:  r.OrderBy,
			OrderDir: r.OrderDir,
		}.Normalize(),
		PartyType: finance.PartyType(r.PartyType),
		PartyID:   r.PartyID,
	}
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"userId"`
	PartyType   string          `json:"partyType"`
	PartyID     uuid.UUID       `json:"partyId"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentType string          `json:"paymentType"`
	PaymentMode string          `json:"paymentMode"`
	Notes       string          `json:"notes,omitempty"`
	CaptureDate time.Time       `json:"captureDate"`
	CreatedAt   time.Time       `json:"createdAt"`
	shared.PaymentFields
}

// ToPaymentResponse converts a payment to a response
func ToPaymentResponse(p *finance.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		PartyType:     string(p.PartyType),
		PartyID:       p.PartyID,
		Amount:        p.Amount,
		PaymentType:   p.PaymentType,
		PaymentMode:   p.PaymentMode,
		Notes:         p.Notes,
		CaptureDate:   p.CaptureDate,
		CreatedAt:     p.CreatedAt,
		PaymentFields: p.Detail.Fields(),
	}
}
