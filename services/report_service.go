package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"spa-admin/models"
	"spa-admin/reports"
)

// AppointmentLister is all the report and dashboard pages need from the API.
type AppointmentLister interface {
	ListAppointments(ctx context.Context, status string) ([]models.Appointment, error)
}

type ReportKind string

const (
	ReportEarnings     ReportKind = "earnings"
	ReportServices     ReportKind = "services"
	ReportCustomers    ReportKind = "customers"
	ReportAppointments ReportKind = "appointments"
)

var ReportKinds = []ReportKind{ReportEarnings, ReportServices, ReportCustomers, ReportAppointments}

func ParseReportKind(s string) (ReportKind, error) {
	for _, k := range ReportKinds {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", invalid("report", "Unknown report %q", s)
}

type ReportQuery struct {
	Kind    ReportKind
	From    time.Time
	To      time.Time
	Method  models.PaymentMethod
	Query   string
	TopN    int
	Client  string
	Service string
	Status  models.AppointmentStatus
}

// ReportResult carries the typed summary for JSON and its table for exports.
type ReportResult struct {
	Kind  ReportKind    `json:"kind"`
	Data  any           `json:"data"`
	Table reports.Table `json:"table"`
}

type ReportService struct {
	api      AppointmentLister
	currency string
}

func NewReportService(client AppointmentLister, currency string) *ReportService {
	return &ReportService{api: client, currency: currency}
}

func validateReportQuery(q ReportQuery) error {
	if !q.From.IsZero() && !q.To.IsZero() && q.From.After(q.To) {
		return invalid("from", "Start date must not be after end date")
	}
	if q.Method != "" && q.Method != models.MethodCash && q.Method != models.MethodOnline {
		return invalid("method", "Payment method must be Cash or Online")
	}
	if q.Status != "" && !q.Status.Valid() {
		return invalid("status", "Unknown status %q", q.Status)
	}
	return nil
}

// Build fetches the full appointment list and derives the requested report.
func (s *ReportService) Build(ctx context.Context, q ReportQuery) (*ReportResult, error) {
	if err := validateReportQuery(q); err != nil {
		return nil, err
	}
	appts, err := s.api.ListAppointments(ctx, "")
	if err != nil {
		return nil, err
	}
	return BuildReport(appts, q, s.currency)
}

func BuildReport(appts []models.Appointment, q ReportQuery, currency string) (*ReportResult, error) {
	res := &ReportResult{Kind: q.Kind}
	switch q.Kind {
	case ReportEarnings:
		r := reports.Earnings(appts, reports.EarningsOptions{Method: q.Method, From: q.From, To: q.To})
		res.Data, res.Table = r, r.Table(currency)
	case ReportServices:
		r := reports.MostRequestedServices(appts, reports.RankOptions{Query: q.Query, TopN: q.TopN})
		res.Data, res.Table = r, reports.ServicesTable(r)
	case ReportCustomers:
		r := reports.MostFrequentCustomers(appts, reports.RankOptions{Query: q.Query, TopN: q.TopN})
		res.Data, res.Table = r, reports.CustomersTable(r)
	case ReportAppointments:
		r := reports.AppointmentStatus(appts, reports.StatusReportOptions{
			From:    q.From,
			To:      q.To,
			Client:  q.Client,
			Service: q.Service,
			Status:  q.Status,
		})
		res.Data, res.Table = r, r.Table()
	default:
		return nil, fmt.Errorf("unknown report kind %q", q.Kind)
	}
	return res, nil
}
