package shared

import "strings"

// PaymentDetailKind discriminates the PaymentDetail union
type PaymentDetailKind string

const (
	PaymentDetailNone    PaymentDetailKind = ""
	PaymentDetailCard    PaymentDetailKind = "card"
	PaymentDetailUPI     PaymentDetailKind = "upi"
	PaymentDetailCheque  PaymentDetailKind = "cheque"
	PaymentDetailGateway PaymentDetailKind = "gateway"
	PaymentDetailBankRef PaymentDetailKind = "bank_ref"
)

// IsValid reports whether k is a known kind
func (k PaymentDetailKind) IsValid() bool {
	switch k {
	case PaymentDetailNone, PaymentDetailCard, PaymentDetailUPI, PaymentDetailCheque,
		PaymentDetailGateway, PaymentDetailBankRef:
		return true
	}
	return false
}

// PaymentDetail carries at most one opaque payment reference: a card number,
// a UPI transaction id, a cheque number, a gateway transaction id or a bank
// reference number. The zero value is "no detail".
type PaymentDetail struct {
	kind PaymentDetailKind
	ref  string
}

func CardPayment(number string) PaymentDetail {
	return PaymentDetail{kind: PaymentDetailCard, ref: number}
}

func UPIPayment(transactionID string) PaymentDetail {
	return PaymentDetail{kind: PaymentDetailUPI, ref: transactionID}
}

func ChequePayment(number string) PaymentDetail {
	return PaymentDetail{kind: PaymentDetailCheque, ref: number}
}

func GatewayPayment(transactionID string) PaymentDetail {
	return PaymentDetail{kind: PaymentDetailGateway, ref: transactionID}
}

func BankRefPayment(reference string) PaymentDetail {
	return PaymentDetail{kind: PaymentDetailBankRef, ref: reference}
}

// Kind returns the populated variant
func (p PaymentDetail) Kind() PaymentDetailKind { return p.kind }

// Reference returns the opaque reference string, empty for none
func (p PaymentDetail) Reference() string { return p.ref }

// IsNone reports whether no payment detail is present
func (p PaymentDetail) IsNone() bool { return p.kind == PaymentDetailNone }

// RestorePaymentDetail rebuilds a detail from its stored (kind, reference)
// columns.
func RestorePaymentDetail(kind, reference string) (PaymentDetail, error) {
	k := PaymentDetailKind(kind)
	if !k.IsValid() {
		return PaymentDetail{}, NewValidationError("Unknown payment detail kind: " + kind)
	}
	if k == PaymentDetailNone {
		return PaymentDetail{}, nil
	}
	return PaymentDetail{kind: k, ref: reference}, nil
}

// PaymentFields is the wire shape of PaymentDetail: five optional fields of
// which at most one may be set.
type PaymentFields struct {
	CardNumber           string `json:"cardNumber,omitempty"`
	UPITransactionID     string `json:"upiTransactionId,omitempty"`
	ChequeNumber         string `json:"chequeNumber,omitempty"`
	GatewayTransactionID string `json:"gatewayTransactionId,omitempty"`
	BankReferenceNumber  string `json:"bankReferenceNumber,omitempty"`
}

// PaymentDetail converts the wire fields into the union. Setting more than
// one field is a validation error.
func (f PaymentFields) PaymentDetail() (PaymentDetail, error) {
	var (
		detail PaymentDetail
		set    int
	)
	candidates := []struct {
		value string
		make  func(string) PaymentDetail
	}{
		{f.CardNumber, CardPayment},
		{f.UPITransactionID, UPIPayment},
		{f.ChequeNumber, ChequePayment},
		{f.GatewayTransactionID, GatewayPayment},
		{f.BankReferenceNumber, BankRefPayment},
	}
	for _, c := range candidates {
		v := strings.TrimSpace(c.value)
		if v == "" {
			continue
		}
		set++
		detail = c.make(v)
	}
	if set > 1 {
		return PaymentDetail{}, NewValidationError(
			"Only one of cardNumber, upiTransactionId, chequeNumber, gatewayTransactionId or bankReferenceNumber may be provided")
	}
	return detail, nil
}

// Fields converts the union back into its wire shape
func (p PaymentDetail) Fields() PaymentFields {
	var f PaymentFields
	switch p.kind {
	case PaymentDetailCard:
		f.CardNumber = p.ref
	case PaymentDetailUPI:
		f.UPITransactionID = p.ref
	case PaymentDetailCheque:
		f.ChequeNumber = p.ref
	case PaymentDetailGateway:
		f.GatewayTransactionID = p.ref
	case PaymentDetailBankRef:
		f.BankReferenceNumber = p.ref
	}
	return f
}
