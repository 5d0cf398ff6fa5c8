package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"spa-admin/models"
	"spa-admin/utils"
)

type EarningsOptions struct {
	Method models.PaymentMethod // empty means every method
	From   time.Time            // zero means unbounded
	To     time.Time
}

type EarningsRow struct {
	Date      string                     `json:"date"`
	ByService map[string]decimal.Decimal `json:"byService"`
	Total     decimal.Decimal            `json:"total"`
}

type EarningsReport struct {
	Services []string        `json:"services"`
	Rows     []EarningsRow   `json:"rows"`
	Total    decimal.Decimal `json:"total"`
}

// Earnings groups completed payments by appointment day and service name.
// Rows are sorted by date; the range filter is inclusive on both days.
func Earnings(appts []models.Appointment, opts EarningsOptions) EarningsReport {
	acc := map[string]map[string]decimal.Decimal{}
	services := []string{}
	seen := map[string]bool{}

	for _, a := range appts {
		name := serviceLabel(a)
		if !seen[name] {
			seen[name] = true
			services = append(services, name)
		}

		paid := decimal.Zero
		hasPaid := false
		for _, p := range a.Payments {
			if p.Status != models.PaymentCompleted {
				continue
			}
			if opts.Method != "" && p.Method != opts.Method {
				continue
			}
			paid = paid.Add(p.Amount)
			hasPaid = true
		}
		if !hasPaid {
			continue
		}

		day, ok := a.Day()
		if !ok || !inRange(day, opts.From, opts.To) {
			continue
		}
		key := day.Format("2006-01-02")
		if acc[key] == nil {
			acc[key] = map[string]decimal.Decimal{}
		}
		acc[key][name] = acc[key][name].Add(paid)
	}

	report := EarningsReport{Services: services, Rows: []EarningsRow{}, Total: decimal.Zero}
	for date, byService := range acc {
		total := decimal.Zero
		for _, v := range byService {
			total = total.Add(v)
		}
		report.Rows = append(report.Rows, EarningsRow{Date: date, ByService: byService, Total: total})
		report.Total = report.Total.Add(total)
	}
	sort.Slice(report.Rows, func(i, j int) bool { return report.Rows[i].Date < report.Rows[j].Date })
	return report
}

func (r EarningsReport) Table(currency string) Table {
	headers := append([]string{"Date"}, r.Services...)
	headers = append(headers, "Total")

	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		cells := []string{row.Date}
		for _, s := range r.Services {
			cells = append(cells, row.ByService[s].String())
		}
		cells = append(cells, row.Total.String())
		rows = append(rows, cells)
	}

	return Table{
		Title:    "Service Earnings Report",
		Filename: "earnings",
		Headers:  headers,
		Rows:     rows,
		Footer:   "Total Earnings: " + FormatMoney(currency, r.Total),
	}
}

func serviceLabel(a models.Appointment) string {
	if a.Service == nil {
		return DeletedService
	}
	return a.Service.Name
}

// inRange widens [from, to] to whole days before comparing.
func inRange(day, from, to time.Time) bool {
	if !from.IsZero() && day.Before(utils.BeginningOfDay(from)) {
		return false
	}
	if !to.IsZero() && day.After(utils.EndOfDay(to)) {
		return false
	}
	return true
}
