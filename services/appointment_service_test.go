package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spa-admin/api"
	"spa-admin/models"
)

func priced(id string, price int64, status models.AppointmentStatus, payments ...models.Payment) models.Appointment {
	return models.Appointment{
		ID:       id,
		Client:   &models.AppointmentClient{ID: "c1", FirstName: "Maria", LastName: "Santos"},
		Service:  &models.AppointmentService{ID: "s1", Name: "Swedish Massage", Price: decimal.NewFromInt(price)},
		Date:     "2024-06-01",
		Status:   status,
		Payments: payments,
	}
}

func completedPayment(amount int64) models.Payment {
	return models.Payment{Amount: decimal.NewFromInt(amount), Method: models.MethodOnline, Type: models.PaymentDownpayment, Status: models.PaymentCompleted}
}

func TestCancel_BlankNotesSendsNothing(t *testing.T) {
	fake := &fakeAPI{appointments: []models.Appointment{priced("a1", 1000, models.StatusApproved)}}
	actions := &memoryActions{}
	svc := NewAppointmentService(fake, actions, "admin@spa.test")

	_, err := svc.Cancel(context.Background(), "a1", "   ")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Empty(t, fake.calls)

	require.Len(t, actions.entries, 1)
	assert.Equal(t, models.OutcomeBlocked, actions.entries[0].Outcome)
}

func TestCancel_WithNotesSendsOnePatch(t *testing.T) {
	fake := &fakeAPI{appointments: []models.Appointment{priced("a1", 1000, models.StatusApproved)}}
	svc := NewAppointmentService(fake, nil, "admin@spa.test")

	out, err := svc.Cancel(context.Background(), "a1", "  client asked  ")
	require.NoError(t, err)
	assert.Equal(t, 1, fake.count("CancelAppointment"))
	assert.Equal(t, "client asked", fake.lastNotes)
	assert.Equal(t, "Appointment cancelled successfully", out.Message)
	assert.Equal(t, 1, fake.count("ListAppointments"), "reloads after the mutation")
	assert.Len(t, out.Appointments, 1)
}

func TestComplete_BlockedUntilFullyPaid(t *testing.T) {
	fake := &fakeAPI{appointments: []models.Appointment{
		priced("a1", 1000, models.StatusApproved, completedPayment(400)),
	}}
	svc := NewAppointmentService(fake, nil, "admin@spa.test")
	ctx := context.Background()

	_, err := svc.Complete(ctx, "a1")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "600.00")
	assert.Zero(t, fake.count("CompleteAppointment"))

	_, err = svc.RecordCashPayment(ctx, CashPaymentInput{AppointmentID: "a1", Amount: decimal.NewFromInt(600)})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentBalance, fake.lastPayment.Type)

	out, err := svc.Complete(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 1, fake.count("CompleteAppointment"))
	assert.Equal(t, "Appointment completed successfully", out.Message)
}

func TestComplete_IgnoresPendingAndFailedPayments(t *testing.T) {
	pending := completedPayment(1000)
	pending.Status = models.PaymentPending
	fake := &fakeAPI{appointments: []models.Appointment{priced("a1", 1000, models.StatusApproved, pending)}}
	svc := NewAppointmentService(fake, nil, "admin@spa.test")

	_, err := svc.Complete(context.Background(), "a1")
	require.Error(t, err)
	assert.Zero(t, fake.count("CompleteAppointment"))
}

func TestComplete_UnknownAppointment(t *testing.T) {
	svc := NewAppointmentService(&fakeAPI{}, nil, "admin@spa.test")
	_, err := svc.Complete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestMutation_ServerMessageSurfaced(t *testing.T) {
	fake := &fakeAPI{
		appointments: []models.Appointment{priced("a1", 1000, models.StatusPending)},
		mutateErr:    &api.Error{Status: 409, Message: "Appointment slot is already taken"},
	}
	actions := &memoryActions{}
	svc := NewAppointmentService(fake, actions, "admin@spa.test")

	_, err := svc.Approve(context.Background(), "a1")
	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Appointment slot is already taken", apiErr.Message)
	assert.Zero(t, fake.count("ListAppointments"))

	require.Len(t, actions.entries, 1)
	assert.Equal(t, models.OutcomeFailed, actions.entries[0].Outcome)
	assert.Equal(t, "approve", actions.entries[0].Action)
}

func TestMutation_ReloadFailureKeepsSuccess(t *testing.T) {
	fake := &fakeAPI{appointments: []models.Appointment{priced("a1", 1000, models.StatusPending)}}
	svc := NewAppointmentService(fake, nil, "admin@spa.test")
	fake.listErr = errors.New("connection reset")

	out, err := svc.Approve(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "Appointment approved successfully", out.Message)
	assert.Equal(t, "connection reset", out.ReloadError)
	assert.NotNil(t, out.Appointments)
}

func TestReschedule_Validation(t *testing.T) {
	fake := &fakeAPI{}
	svc := NewAppointmentService(fake, nil, "admin@spa.test")
	ctx := context.Background()

	_, err := svc.Reschedule(ctx, "a1", "06/01/2024", "10:00")
	assert.True(t, IsValidation(err))
	_, err = svc.Reschedule(ctx, "a1", "2024-06-01", "10am")
	assert.True(t, IsValidation(err))
	assert.Empty(t, fake.calls)

	_, err = svc.Reschedule(ctx, "a1", "2024-06-01", "10:30")
	require.NoError(t, err)
	assert.Equal(t, 1, fake.count("RescheduleAppointment"))
}

func TestRecordCashPayment_Validation(t *testing.T) {
	fake := &fakeAPI{}
	svc := NewAppointmentService(fake, nil, "admin@spa.test")
	ctx := context.Background()

	for _, in := range []CashPaymentInput{
		{AppointmentID: "a1", Amount: decimal.Zero},
		{AppointmentID: "a1", Amount: decimal.NewFromInt(-5)},
		{AppointmentID: "", Amount: decimal.NewFromInt(5)},
		{AppointmentID: "a1", Amount: decimal.NewFromInt(5), Type: "Tip"},
	} {
		_, err := svc.RecordCashPayment(ctx, in)
		assert.True(t, IsValidation(err), "%+v", in)
	}
	assert.Empty(t, fake.calls)
}

func TestPaymentHistory(t *testing.T) {
	fake := &fakeAPI{appointments: []models.Appointment{
		priced("a1", 1000, models.StatusApproved, completedPayment(250)),
		{ID: "a2", Status: models.StatusPending},
	}}
	svc := NewAppointmentService(fake, nil, "admin@spa.test")

	sum, err := svc.PaymentHistory(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "250", sum.Paid.String())
	assert.Equal(t, "750", sum.Remaining.String())
	assert.Len(t, sum.Payments, 1)

	sum, err = svc.PaymentHistory(context.Background(), "a2")
	require.NoError(t, err)
	assert.True(t, sum.Price.IsZero())
	assert.NotNil(t, sum.Payments)
}

func TestFilterAppointments(t *testing.T) {
	list := []models.Appointment{
		priced("a1", 100, models.StatusPending),
		{ID: "a2", Status: models.StatusPending, Service: &models.AppointmentService{Name: "Facial"}},
		{ID: "a3", Status: models.StatusApproved, Client: &models.AppointmentClient{FirstName: "Ana", LastName: "Reyes"}},
		{ID: "a4", Status: models.StatusCancelled},
	}

	ids := func(list []models.Appointment) []string {
		out := []string{}
		for _, a := range list {
			out = append(out, a.ID)
		}
		return out
	}

	assert.Equal(t, []string{"a1", "a2", "a3", "a4"}, ids(FilterAppointments(list, AppointmentFilter{Status: "All"})))
	assert.Equal(t, []string{"a1", "a2"}, ids(FilterAppointments(list, AppointmentFilter{Status: "Pending"})))
	assert.Equal(t, []string{"a1", "a2"}, ids(FilterAppointments(list, AppointmentFilter{Status: "pending"})))
	assert.Empty(t, FilterAppointments(list, AppointmentFilter{Status: "Archived"}))
	assert.Equal(t, []string{"a2"}, ids(FilterAppointments(list, AppointmentFilter{Search: "FACIAL"})))
	assert.Equal(t, []string{"a1"}, ids(FilterAppointments(list, AppointmentFilter{Search: "maria"})))
	assert.Equal(t, []string{"a3"}, ids(FilterAppointments(list, AppointmentFilter{Search: "reyes"})))
	assert.Empty(t, FilterAppointments(list, AppointmentFilter{Status: "Pending", Search: "reyes"}))

	f := AppointmentFilter{Status: "Pending", Search: "massage"}
	once := FilterAppointments(list, f)
	assert.Equal(t, once, FilterAppointments(once, f), "filtering is idempotent")
	for _, a := range once {
		assert.Contains(t, list, a)
	}
}

func TestLoad_RejectsUnknownStatus(t *testing.T) {
	fake := &fakeAPI{}
	svc := NewAppointmentService(fake, nil, "admin@spa.test")
	_, err := svc.Load(context.Background(), "Archived")
	assert.True(t, IsValidation(err))
	assert.Empty(t, fake.calls)
}
