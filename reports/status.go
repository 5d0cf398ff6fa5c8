package reports

import (
	"strings"
	"time"

	"spa-admin/models"
)

type StatusReportOptions struct {
	From    time.Time
	To      time.Time
	Client  string // exact "firstname lastname"
	Service string // exact service label
	Status  models.AppointmentStatus
}

type StatusCount struct {
	Status models.AppointmentStatus `json:"status"`
	Count  int                      `json:"count"`
}

type StatusReport struct {
	Appointments []models.Appointment `json:"appointments"`
	Counts       []StatusCount        `json:"counts"`
}

// AppointmentStatus filters the list by day range, client, service and
// status, then counts the survivors per status in order of first appearance.
func AppointmentStatus(appts []models.Appointment, opts StatusReportOptions) StatusReport {
	report := StatusReport{Appointments: []models.Appointment{}, Counts: []StatusCount{}}
	index := map[models.AppointmentStatus]int{}

	for _, a := range appts {
		if !opts.From.IsZero() || !opts.To.IsZero() {
			day, ok := a.Day()
			if !ok || !inRange(day, opts.From, opts.To) {
				continue
			}
		}
		if opts.Client != "" && a.ClientName() != opts.Client {
			continue
		}
		if opts.Service != "" && serviceLabel(a) != opts.Service {
			continue
		}
		if opts.Status != "" && a.Status != opts.Status {
			continue
		}

		report.Appointments = append(report.Appointments, a)
		if i, ok := index[a.Status]; ok {
			report.Counts[i].Count++
		} else {
			index[a.Status] = len(report.Counts)
			report.Counts = append(report.Counts, StatusCount{Status: a.Status, Count: 1})
		}
	}
	return report
}

func (r StatusReport) Table() Table {
	rows := make([][]string, 0, len(r.Appointments))
	for _, a := range r.Appointments {
		rows = append(rows, []string{
			strings.TrimSpace(a.ClientName()),
			serviceLabel(a),
			a.DayKey(),
			a.StartTime + " - " + a.EndTime,
			a.Notes,
			string(a.Status),
		})
	}
	return Table{
		Title:    "Appointments Status Report",
		Filename: "appointments-status-report",
		Headers:  []string{"Client Name", "Service Name", "Appointment Date", "Appointment Time", "Notes", "Status"},
		Rows:     rows,
	}
}
