package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"spa-admin/models"
	"spa-admin/reports"
)

const dashboardTopServices = 5

type DashboardOverview struct {
	TotalAppointments int                    `json:"totalAppointments"`
	StatusCounts      []reports.StatusCount  `json:"statusCounts"`
	PendingApprovals  int                    `json:"pendingApprovals"`
	TodayAppointments []models.Appointment   `json:"todayAppointments"`
	MonthlyEarnings   decimal.Decimal        `json:"monthlyEarnings"`
	TotalEarnings     decimal.Decimal        `json:"totalEarnings"`
	TopServices       []reports.ServiceCount `json:"topServices"`
}

type DashboardService struct {
	api AppointmentLister
}

func NewDashboardService(client AppointmentLister) *DashboardService {
	return &DashboardService{api: client}
}

func (s *DashboardService) Overview(ctx context.Context, now time.Time) (*DashboardOverview, error) {
	appts, err := s.api.ListAppointments(ctx, "")
	if err != nil {
		return nil, err
	}
	overview := BuildDashboard(appts, now)
	return &overview, nil
}

// BuildDashboard summarises the appointment list as seen at now.
// Appointment dates are compared as business-local calendar days.
func BuildDashboard(appts []models.Appointment, now time.Time) DashboardOverview {
	today := models.CalendarDay(now)
	firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	counts := make(map[models.AppointmentStatus]int, len(models.AppointmentStatuses))
	overview := DashboardOverview{
		TotalAppointments: len(appts),
		TodayAppointments: []models.Appointment{},
	}
	for _, a := range appts {
		counts[a.Status]++
		if day, ok := a.Day(); ok && day.Equal(today) {
			overview.TodayAppointments = append(overview.TodayAppointments, a)
		}
	}
	overview.StatusCounts = make([]reports.StatusCount, 0, len(models.AppointmentStatuses))
	for _, st := range models.AppointmentStatuses {
		overview.StatusCounts = append(overview.StatusCounts, reports.StatusCount{Status: st, Count: counts[st]})
	}
	overview.PendingApprovals = counts[models.StatusPending]

	overview.MonthlyEarnings = reports.Earnings(appts, reports.EarningsOptions{From: firstOfMonth, To: lastOfMonth}).Total
	overview.TotalEarnings = reports.Earnings(appts, reports.EarningsOptions{}).Total
	overview.TopServices = reports.MostRequestedServices(appts, reports.RankOptions{TopN: dashboardTopServices})
	return overview
}
