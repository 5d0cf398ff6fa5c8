// services/appointment_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"spa-admin/api"
	"spa-admin/models"
	"spa-admin/utils"
)

// AppointmentAPI is the subset of the remote client the lifecycle needs.
type AppointmentAPI interface {
	ListAppointments(ctx context.Context, status string) ([]models.Appointment, error)
	ApproveAppointment(ctx context.Context, id string) (*api.MutationResult, error)
	CancelAppointment(ctx context.Context, id, notes string) (*api.MutationResult, error)
	CompleteAppointment(ctx context.Context, id string) (*api.MutationResult, error)
	RescheduleAppointment(ctx context.Context, id, date, startTime string) (*api.MutationResult, error)
	RecordCashPayment(ctx context.Context, in api.CashPaymentRequest) (*api.CashPaymentResult, error)
}

// Outcome is the result of a successful mutation. The mutation stands even
// when the follow-up reload fails; ReloadError then carries the reason.
type Outcome struct {
	Message      string               `json:"message"`
	Appointments []models.Appointment `json:"appointments"`
	ReloadError  string               `json:"reloadError,omitempty"`
}

type AppointmentFilter struct {
	Status string // empty or "All" keeps every status; unknown values match nothing
	Search string
}

// PaymentSummary is the payment history of one appointment.
type PaymentSummary struct {
	AppointmentID string           `json:"appointmentId"`
	Price         decimal.Decimal  `json:"price"`
	Paid          decimal.Decimal  `json:"paid"`
	Remaining     decimal.Decimal  `json:"remaining"`
	Payments      []models.Payment `json:"payments"`
}

type CashPaymentInput struct {
	AppointmentID string             `json:"appointmentId"`
	Type          models.PaymentType `json:"type"`
	Amount        decimal.Decimal    `json:"amount"`
	Remarks       string             `json:"remarks"`
}

type AppointmentService struct {
	api     AppointmentAPI
	actions ActionLogger
	actor   string

	status       string
	loaded       bool
	appointments []models.Appointment
}

func NewAppointmentService(client AppointmentAPI, actions ActionLogger, actor string) *AppointmentService {
	if actions == nil {
		actions = NopActionLogger{}
	}
	return &AppointmentService{api: client, actions: actions, actor: actor}
}

// ParseStatusFilter maps a status filter, in any case, to its status.
// Empty and "All" mean no filter and return "".
func ParseStatusFilter(field, s string) (models.AppointmentStatus, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return "", nil
	}
	st, err := models.ParseAppointmentStatus(s)
	if err != nil {
		return "", invalid(field, "Unknown status %q", s)
	}
	return st, nil
}

// Load fetches the appointment list, optionally filtered by status on the server.
func (s *AppointmentService) Load(ctx context.Context, rawStatus string) ([]models.Appointment, error) {
	st, err := ParseStatusFilter("status", rawStatus)
	if err != nil {
		return nil, err
	}
	status := string(st)

	list, err := s.api.ListAppointments(ctx, status)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Appointment{}
	}
	s.status = status
	s.loaded = true
	s.appointments = list
	return list, nil
}

func (s *AppointmentService) Appointments() []models.Appointment {
	return s.appointments
}

// FilterAppointments keeps appointments matching the status, in any case, and
// whose client first name, last name or service name contains the search
// text, ignoring case. Order is preserved.
func FilterAppointments(list []models.Appointment, f AppointmentFilter) []models.Appointment {
	status, err := ParseStatusFilter("filter", f.Status)
	if err != nil {
		return []models.Appointment{}
	}
	q := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Appointment, 0, len(list))
	for _, a := range list {
		if status != "" && a.Status != status {
			continue
		}
		if q != "" && !matchesSearch(a, q) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matchesSearch(a models.Appointment, q string) bool {
	if a.Client != nil {
		if strings.Contains(strings.ToLower(a.Client.FirstName), q) ||
			strings.Contains(strings.ToLower(a.Client.LastName), q) {
			return true
		}
	}
	return a.Service != nil && strings.Contains(strings.ToLower(a.Service.Name), q)
}

func (s *AppointmentService) Approve(ctx context.Context, id string) (*Outcome, error) {
	return s.mutate(ctx, models.ActionApprove, id, "Appointment approved", func(ctx context.Context) (*api.MutationResult, error) {
		return s.api.ApproveAppointment(ctx, id)
	})
}

// Cancel requires non-blank notes; nothing is sent otherwise.
func (s *AppointmentService) Cancel(ctx context.Context, id, notes string) (*Outcome, error) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		err := invalid("notes", "Please provide a reason for cancellation")
		recordAction(ctx, s.actions, s.actor, string(models.ActionCancel), id, err, "")
		return nil, err
	}
	return s.mutate(ctx, models.ActionCancel, id, "Appointment cancelled", func(ctx context.Context) (*api.MutationResult, error) {
		return s.api.CancelAppointment(ctx, id, notes)
	})
}

// Complete is refused while part of the service price is still unpaid.
func (s *AppointmentService) Complete(ctx context.Context, id string) (*Outcome, error) {
	appt, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if remaining := appt.Remaining(); remaining.IsPositive() {
		err := invalid("payment", "Remaining balance of %s must be paid before completing. Record a payment first.", remaining.StringFixed(2))
		recordAction(ctx, s.actions, s.actor, string(models.ActionComplete), id, err, "")
		return nil, err
	}
	return s.mutate(ctx, models.ActionComplete, id, "Appointment completed", func(ctx context.Context) (*api.MutationResult, error) {
		return s.api.CompleteAppointment(ctx, id)
	})
}

func (s *AppointmentService) Reschedule(ctx context.Context, id, date, startTime string) (*Outcome, error) {
	date = strings.TrimSpace(date)
	startTime = strings.TrimSpace(startTime)
	var err error
	if _, perr := utils.ParseDay(date); perr != nil {
		err = invalid("date", "Please select a valid date")
	} else if _, perr := utils.ParseClock(startTime); perr != nil {
		err = invalid("startTime", "Please select a valid start time")
	}
	if err != nil {
		recordAction(ctx, s.actions, s.actor, string(models.ActionReschedule), id, err, "")
		return nil, err
	}
	return s.mutate(ctx, models.ActionReschedule, id, "Appointment rescheduled", func(ctx context.Context) (*api.MutationResult, error) {
		return s.api.RescheduleAppointment(ctx, id, date, startTime)
	})
}

// RecordCashPayment posts a cash payment and reloads. Type defaults to Balance.
func (s *AppointmentService) RecordCashPayment(ctx context.Context, in CashPaymentInput) (*Outcome, error) {
	const action = "cash_payment"
	in.AppointmentID = strings.TrimSpace(in.AppointmentID)
	if in.Type == "" {
		in.Type = models.PaymentBalance
	}

	var err error
	switch {
	case in.AppointmentID == "":
		err = invalid("appointmentId", "Appointment is required")
	case !in.Type.Valid():
		err = invalid("type", "Unknown payment type %q", in.Type)
	case !in.Amount.IsPositive():
		err = invalid("amount", "Amount must be greater than zero")
	}
	if err != nil {
		recordAction(ctx, s.actions, s.actor, action, in.AppointmentID, err, "")
		return nil, err
	}

	res, err := s.api.RecordCashPayment(ctx, api.CashPaymentRequest{
		AppointmentID: in.AppointmentID,
		Type:          in.Type,
		Amount:        in.Amount,
		Remarks:       strings.TrimSpace(in.Remarks),
	})
	msg := "Payment recorded"
	if res != nil && res.Message != "" {
		msg = res.Message
	}
	recordAction(ctx, s.actions, s.actor, action, in.AppointmentID, err, msg)
	if err != nil {
		return nil, err
	}
	return s.reload(ctx, msg), nil
}

// PaymentHistory returns the payments recorded against one appointment.
func (s *AppointmentService) PaymentHistory(ctx context.Context, id string) (*PaymentSummary, error) {
	appt, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	payments := appt.Payments
	if payments == nil {
		payments = []models.Payment{}
	}
	return &PaymentSummary{
		AppointmentID: appt.ID,
		Price:         appt.Price(),
		Paid:          appt.Paid(),
		Remaining:     appt.Remaining(),
		Payments:      payments,
	}, nil
}

func (s *AppointmentService) find(ctx context.Context, id string) (*models.Appointment, error) {
	if !s.loaded {
		if _, err := s.Load(ctx, ""); err != nil {
			return nil, err
		}
	}
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			return &s.appointments[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrAppointmentNotFound, id)
}

func (s *AppointmentService) mutate(ctx context.Context, action models.AppointmentAction, id, fallback string, call func(context.Context) (*api.MutationResult, error)) (*Outcome, error) {
	res, err := call(ctx)
	msg := fallback
	if res != nil && res.Message != "" {
		msg = res.Message
	}
	recordAction(ctx, s.actions, s.actor, string(action), id, err, msg)
	if err != nil {
		return nil, err
	}
	return s.reload(ctx, msg), nil
}

func (s *AppointmentService) reload(ctx context.Context, msg string) *Outcome {
	out := &Outcome{Message: msg, Appointments: []models.Appointment{}}
	list, err := s.Load(ctx, s.status)
	if err != nil {
		out.ReloadError = err.Error()
		if s.appointments != nil {
			out.Appointments = s.appointments
		}
		return out
	}
	out.Appointments = list
	return out
}
