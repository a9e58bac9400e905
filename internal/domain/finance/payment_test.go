package finance

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() PaymentInput {
	return PaymentInput{
		Amount:      decimal.NewFromInt(500),
		PaymentType: "advance",
		PaymentMode: "card",
		Detail:      shared.CardPayment("4111"),
	}
}

func TestNewPayment(t *testing.T) {
	actor := shared.Actor{TenantID: uuid.New(), UserID: uuid.New()}
	partyID := uuid.New()
	now := time.Now()

	p, err := NewPayment(actor, PartyCustomer, partyID, validInput(), now)
	require.NoError(t, err)
	assert.Equal(t, actor.TenantID, p.TenantID)
	assert.Equal(t, PartyCustomer, p.PartyType)
	assert.Equal(t, now, p.CaptureDate)

	_, err = NewPayment(actor, "bank", partyID, validInput(), now)
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	in := validInput()
	in.Amount = decimal.Zero
	_, err = NewPayment(actor, PartySupplier, partyID, in, now)
	assert.Error(t, err)

	_, err = NewPayment(actor, PartySupplier, uuid.Nil, validInput(), now)
	assert.Error(t, err)
}

func TestPayment_ReviseReplacesDetail(t *testing.T) {
	p, err := NewPayment(shared.Actor{TenantID: uuid.New(), UserID: uuid.New()}, PartySupplier, uuid.New(), validInput(), time.Now())
	require.NoError(t, err)

	in := validInput()
	in.Detail = shared.ChequePayment("000777")
	captured := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	in.CaptureDate = &captured
	require.NoError(t, p.Revise(in))

	assert.Equal(t, shared.PaymentDetailCheque, p.Detail.Kind())
	assert.Empty(t, p.Detail.Fields().CardNumber)
	assert.Equal(t, captured, p.CaptureDate)

	require.NoError(t, p.Delete())
	assert.True(t, errors.Is(p.Revise(in), shared.ErrNotFound))
}
