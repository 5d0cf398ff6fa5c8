package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"spa-admin/models"
)

type CashPaymentRequest struct {
	AppointmentID string             `json:"appointmentId"`
	Type          models.PaymentType `json:"type"`
	Amount        decimal.Decimal    `json:"amount"`
	Remarks       string             `json:"remarks,omitempty"`
}

type CashPaymentResult struct {
	Message string          `json:"message"`
	Payment *models.Payment `json:"payment,omitempty"`
}

func (c *Client) RecordCashPayment(ctx context.Context, in CashPaymentRequest) (*CashPaymentResult, error) {
	var res CashPaymentResult
	err := c.doJSON(ctx, http.MethodPost, "/payment/cash", in, &res, "Failed to record payment")
	return &res, err
}
