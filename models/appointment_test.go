package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentStatus_Actions(t *testing.T) {
	cases := map[AppointmentStatus][]AppointmentAction{
		StatusPending:     {ActionApprove, ActionCancel},
		StatusApproved:    {ActionCancel, ActionReschedule, ActionComplete},
		StatusRescheduled: {ActionCancel, ActionComplete},
		StatusCancelled:   nil,
		StatusCompleted:   nil,
	}
	for status, want := range cases {
		assert.Equal(t, want, status.Actions(), "status %s", status)
	}
	assert.Nil(t, AppointmentStatus("Unknown").Actions())
}

func TestAppointmentStatus_Next(t *testing.T) {
	next, ok := StatusPending.Next(ActionApprove)
	require.True(t, ok)
	assert.Equal(t, StatusApproved, next)

	next, ok = StatusRescheduled.Next(ActionComplete)
	require.True(t, ok)
	assert.Equal(t, StatusCompleted, next)

	_, ok = StatusPending.Next(ActionComplete)
	assert.False(t, ok)
	_, ok = StatusCompleted.Next(ActionCancel)
	assert.False(t, ok)
}

func TestParseAppointmentStatus(t *testing.T) {
	s, err := ParseAppointmentStatus("approved")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, s)

	_, err = ParseAppointmentStatus("All")
	assert.Error(t, err)
}

func TestAppointment_Remaining(t *testing.T) {
	appt := Appointment{
		Service: &AppointmentService{Name: "Massage", Price: decimal.NewFromInt(1000)},
		Payments: []Payment{
			{Amount: decimal.NewFromInt(400), Status: PaymentCompleted},
			{Amount: decimal.NewFromInt(300), Status: PaymentPending},
		},
	}
	assert.True(t, appt.Remaining().Equal(decimal.NewFromInt(600)))

	appt.Payments = nil
	assert.True(t, appt.Remaining().Equal(decimal.NewFromInt(1000)), "no payments means full price remains")

	appt.Service = nil
	assert.True(t, appt.Remaining().IsZero())
}

func TestAppointment_DecodeRemotePayload(t *testing.T) {
	raw := `{
		"_id": "a1",
		"clientId": {"_id": "c1", "firstname": "Ana", "lastname": "Cruz", "email": "ana@example.com"},
		"serviceId": null,
		"date": "2025-03-04T00:00:00.000Z",
		"startTime": "10:00",
		"endTime": "11:00",
		"status": "Approved",
		"payments": [{"amount": 250.5, "method": "Cash", "type": "Downpayment", "status": "Completed"}]
	}`
	var appt Appointment
	require.NoError(t, json.Unmarshal([]byte(raw), &appt))

	assert.Nil(t, appt.Service)
	assert.Equal(t, "Ana Cruz", appt.ClientName())
	assert.Equal(t, "2025-03-04", appt.DayKey())
	assert.True(t, appt.Paid().Equal(decimal.RequireFromString("250.5")))

	out, err := json.Marshal(appt.Payments[0])
	require.NoError(t, err)
	assert.Contains(t, string(out), `"amount":250.5`)
}

func TestAppointmentDay_BusinessLocation(t *testing.T) {
	manila, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)
	SetLocation(manila)
	t.Cleanup(func() { SetLocation(nil) })

	a := Appointment{Date: "2024-05-01T16:00:00Z"}
	assert.Equal(t, "2024-05-02", a.DayKey())

	a.Date = "2024-05-01"
	assert.Equal(t, "2024-05-01", a.DayKey())

	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		CalendarDay(time.Date(2024, 5, 1, 17, 0, 0, 0, time.UTC)))
}

func TestAppointmentDay_DefaultsToUTC(t *testing.T) {
	a := Appointment{Date: "2024-05-01T16:00:00Z"}
	assert.Equal(t, "2024-05-01", a.DayKey())

	_, ok := Appointment{Date: "soon"}.Day()
	assert.False(t, ok)
}
