package reports

import (
	"sort"
	"strconv"
	"strings"

	"spa-admin/models"
)

type RankOptions struct {
	Query string // case-insensitive substring on the label
	TopN  int    // <= 0 keeps every entry
}

type ServiceCount struct {
	Service string `json:"service"`
	Count   int    `json:"count"`
}

type CustomerCount struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// MostRequestedServices counts appointments per service name, most requested first.
// Ties keep the order in which services first appear.
func MostRequestedServices(appts []models.Appointment, opts RankOptions) []ServiceCount {
	index := map[string]int{}
	var counts []ServiceCount
	for _, a := range appts {
		name := serviceLabel(a)
		if i, ok := index[name]; ok {
			counts[i].Count++
			continue
		}
		index[name] = len(counts)
		counts = append(counts, ServiceCount{Service: name, Count: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })

	q := strings.TrimSpace(opts.Query)
	out := make([]ServiceCount, 0, len(counts))
	for _, c := range counts {
		if containsFold(c.Service, q) {
			out = append(out, c)
		}
	}
	return truncate(out, opts.TopN)
}

// MostFrequentCustomers counts appointments per client. Appointments whose
// client reference is gone are keyed by the normalised name instead.
func MostFrequentCustomers(appts []models.Appointment, opts RankOptions) []CustomerCount {
	index := map[string]int{}
	var counts []CustomerCount
	for _, a := range appts {
		id, name := customerKey(a)
		key := id
		if key == "" {
			key = name
		}
		if i, ok := index[key]; ok {
			counts[i].Count++
			continue
		}
		index[key] = len(counts)
		counts = append(counts, CustomerCount{ID: id, Name: name, Count: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })

	q := strings.TrimSpace(opts.Query)
	out := make([]CustomerCount, 0, len(counts))
	for _, c := range counts {
		if containsFold(c.Name, q) {
			out = append(out, c)
		}
	}
	return truncate(out, opts.TopN)
}

func customerKey(a models.Appointment) (id, name string) {
	name = a.ClientName()
	if name == "" {
		name = UnknownCustomer
	}
	if a.Client != nil {
		id = a.Client.ID
	}
	return id, name
}

func truncate[T any](list []T, n int) []T {
	if n > 0 && len(list) > n {
		return list[:n]
	}
	return list
}

func ServicesTable(counts []ServiceCount) Table {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Service, strconv.Itoa(c.Count)})
	}
	return Table{
		Title:    "Most Requested Services",
		Filename: "most-requested-services",
		Headers:  []string{"Service", "Requests"},
		Rows:     rows,
	}
}

func CustomersTable(counts []CustomerCount) Table {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Name, strconv.Itoa(c.Count)})
	}
	return Table{
		Title:    "Most Frequent Customers",
		Filename: "most-frequent-customers",
		Headers:  []string{"Customer", "Visits"},
		Rows:     rows,
	}
}
