package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	MethodOnline PaymentMethod = "Online"
	MethodCash   PaymentMethod = "Cash"
)

type PaymentType string

const (
	PaymentBalance     PaymentType = "Balance"
	PaymentDownpayment PaymentType = "Downpayment"
	PaymentFull        PaymentType = "Full"
	PaymentRefund      PaymentType = "Refund"
)

func (t PaymentType) Valid() bool {
	switch t {
	case PaymentBalance, PaymentDownpayment, PaymentFull, PaymentRefund:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

type Payment struct {
	ID            string          `json:"_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Method        PaymentMethod   `json:"method"`
	Type          PaymentType     `json:"type"`
	Status        PaymentStatus   `json:"status"`
	TransactionID string          `json:"transactionId,omitempty"`
	Remarks       string          `json:"remarks,omitempty"`
	CreatedAt     *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
}
