// models/appointment.go
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The remote API speaks plain JSON numbers for money.
	decimal.MarshalJSONWithoutQuotes = true
}

type AppointmentStatus string

const (
	StatusPending     AppointmentStatus = "Pending"
	StatusApproved    AppointmentStatus = "Approved"
	StatusCancelled   AppointmentStatus = "Cancelled"
	StatusRescheduled AppointmentStatus = "Rescheduled"
	StatusCompleted   AppointmentStatus = "Completed"
)

// AppointmentStatuses lists every status in display order.
var AppointmentStatuses = []AppointmentStatus{
	StatusPending,
	StatusApproved,
	StatusCompleted,
	StatusCancelled,
	StatusRescheduled,
}

type AppointmentAction string

const (
	ActionApprove    AppointmentAction = "approve"
	ActionCancel     AppointmentAction = "cancel"
	ActionReschedule AppointmentAction = "reschedule"
	ActionComplete   AppointmentAction = "complete"
)

func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	for _, status := range AppointmentStatuses {
		if strings.EqualFold(s, string(status)) {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown appointment status %q", s)
}

func (s AppointmentStatus) Valid() bool {
	_, err := ParseAppointmentStatus(string(s))
	return err == nil
}

// Actions returns the actions an admin may take from this status.
// The server is the enforcer; this table only decides what is offered.
func (s AppointmentStatus) Actions() []AppointmentAction {
	switch s {
	case StatusPending:
		return []AppointmentAction{ActionApprove, ActionCancel}
	case StatusApproved:
		return []AppointmentAction{ActionCancel, ActionReschedule, ActionComplete}
	case StatusRescheduled:
		return []AppointmentAction{ActionCancel, ActionComplete}
	case StatusCancelled, StatusCompleted:
		return nil
	default:
		return nil
	}
}

func (s AppointmentStatus) Allows(action AppointmentAction) bool {
	for _, a := range s.Actions() {
		if a == action {
			return true
		}
	}
	return false
}

// Next reports the status an allowed action leads to.
func (s AppointmentStatus) Next(action AppointmentAction) (AppointmentStatus, bool) {
	if !s.Allows(action) {
		return "", false
	}
	switch action {
	case ActionApprove:
		return StatusApproved, true
	case ActionCancel:
		return StatusCancelled, true
	case ActionReschedule:
		return StatusRescheduled, true
	case ActionComplete:
		return StatusCompleted, true
	}
	return "", false
}

// AppointmentClient is the populated client reference. Nil when the client was deleted.
type AppointmentClient struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
}

func (c *AppointmentClient) FullName() string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// AppointmentService is the populated service reference. Nil when the service was deleted.
type AppointmentService struct {
	ID       string          `json:"_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Duration int             `json:"duration"`
}

type Appointment struct {
	ID        string              `json:"_id"`
	Client    *AppointmentClient  `json:"clientId"`
	Service   *AppointmentService `json:"serviceId"`
	Date      string              `json:"date"`
	StartTime string              `json:"startTime"`
	EndTime   string              `json:"endTime"`
	Status    AppointmentStatus   `json:"status"`
	Notes     string              `json:"notes,omitempty"`
	Payments  []Payment           `json:"payments,omitempty"`
}

var businessLocation = time.UTC

// SetLocation sets the zone whose calendar days appointments are bucketed by.
func SetLocation(loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}
	businessLocation = loc
}

// CalendarDay returns the business-local date of t as midnight UTC, so it
// compares directly with YYYY-MM-DD values parsed in UTC.
func CalendarDay(t time.Time) time.Time {
	t = t.In(businessLocation)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Day parses the appointment date at day granularity. Timestamps fall on
// their business-local day; plain dates are taken as written.
func (a Appointment) Day() (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", a.Date); err == nil {
		return t, true
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, a.Date); err == nil {
			return CalendarDay(t), true
		}
	}
	return time.Time{}, false
}

// DayKey formats the appointment date as YYYY-MM-DD, or returns the raw value when unparseable.
func (a Appointment) DayKey() string {
	if d, ok := a.Day(); ok {
		return d.Format("2006-01-02")
	}
	return a.Date
}

func (a Appointment) Price() decimal.Decimal {
	if a.Service == nil {
		return decimal.Zero
	}
	return a.Service.Price
}

// Paid sums the amounts of completed payments.
func (a Appointment) Paid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range a.Payments {
		if p.Status == PaymentCompleted {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// Remaining is the service price minus what has been paid.
func (a Appointment) Remaining() decimal.Decimal {
	return a.Price().Sub(a.Paid())
}

func (a Appointment) ClientName() string {
	return a.Client.FullName()
}

func (a Appointment) ServiceName() string {
	if a.Service == nil {
		return ""
	}
	return a.Service.Name
}
