package services

import (
	"context"
	"sync"

	"spa-admin/api"
	"spa-admin/models"
)

// fakeAPI stands in for the remote client and records every call by name.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	appointments []models.Appointment
	services     []models.Service
	clients      []models.Client
	spa          *models.SpaSettings
	homepage     *models.HomepageSettings

	listErr   error
	mutateErr error
	statusErr error

	lastNotes   string
	lastPayment api.CashPaymentRequest
	lastStatus  models.ServiceStatus
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeAPI) ListAppointments(_ context.Context, status string) ([]models.Appointment, error) {
	f.record("ListAppointments")
	if f.listErr != nil {
		return nil, f.listErr
	}
	if status == "" {
		return f.appointments, nil
	}
	var out []models.Appointment
	for _, a := range f.appointments {
		if string(a.Status) == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAPI) mutation(name, msg string) (*api.MutationResult, error) {
	f.record(name)
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	return &api.MutationResult{Message: msg}, nil
}

func (f *fakeAPI) ApproveAppointment(_ context.Context, id string) (*api.MutationResult, error) {
	return f.mutation("ApproveAppointment", "Appointment approved successfully")
}

func (f *fakeAPI) CancelAppointment(_ context.Context, id, notes string) (*api.MutationResult, error) {
	f.lastNotes = notes
	return f.mutation("CancelAppointment", "Appointment cancelled successfully")
}

func (f *fakeAPI) CompleteAppointment(_ context.Context, id string) (*api.MutationResult, error) {
	return f.mutation("CompleteAppointment", "Appointment completed successfully")
}

func (f *fakeAPI) RescheduleAppointment(_ context.Context, id, date, startTime string) (*api.MutationResult, error) {
	return f.mutation("RescheduleAppointment", "Appointment rescheduled successfully")
}

func (f *fakeAPI) RecordCashPayment(_ context.Context, in api.CashPaymentRequest) (*api.CashPaymentResult, error) {
	f.record("RecordCashPayment")
	f.lastPayment = in
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	for i := range f.appointments {
		if f.appointments[i].ID == in.AppointmentID {
			f.appointments[i].Payments = append(f.appointments[i].Payments, models.Payment{
				Amount: in.Amount,
				Method: models.MethodCash,
				Type:   in.Type,
				Status: models.PaymentCompleted,
			})
		}
	}
	return &api.CashPaymentResult{Message: "Cash payment recorded"}, nil
}

func (f *fakeAPI) ListServices(context.Context) ([]models.Service, error) {
	f.record("ListServices")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Service(nil), f.services...), nil
}

func (f *fakeAPI) CreateService(_ context.Context, form api.ServiceForm, _ *api.Upload) (*models.Service, error) {
	f.record("CreateService")
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	return &models.Service{ID: "new", Name: form.Name, Price: form.Price, Duration: form.Duration, Status: models.ServiceAvailable}, nil
}

func (f *fakeAPI) UpdateService(_ context.Context, id string, form api.ServiceForm, _ *api.Upload) (*models.Service, error) {
	f.record("UpdateService")
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	return &models.Service{ID: id, Name: form.Name, Price: form.Price, Duration: form.Duration, Status: models.ServiceAvailable}, nil
}

func (f *fakeAPI) DeleteService(context.Context, string) error {
	f.record("DeleteService")
	return f.mutateErr
}

func (f *fakeAPI) SetServiceStatus(_ context.Context, id string, status models.ServiceStatus) (*models.Service, error) {
	f.record("SetServiceStatus")
	f.lastStatus = status
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	for _, s := range f.services {
		if s.ID == id {
			s.Status = status
			return &s, nil
		}
	}
	return nil, &api.Error{Status: 404, Message: "Service not found"}
}

func (f *fakeAPI) GetSpaSettings(context.Context) (*models.SpaSettings, error) {
	f.record("GetSpaSettings")
	return f.spa, nil
}

func (f *fakeAPI) CreateSpaSettings(_ context.Context, in models.SpaSettings) (*models.SpaSettings, error) {
	f.record("CreateSpaSettings")
	in.ID = "settings-1"
	f.spa = &in
	return &in, nil
}

func (f *fakeAPI) UpdateSpaSettings(_ context.Context, in models.SpaSettings) (*models.SpaSettings, error) {
	f.record("UpdateSpaSettings")
	f.spa = &in
	return &in, nil
}

func (f *fakeAPI) GetHomepageSettings(context.Context) (*models.HomepageSettings, error) {
	f.record("GetHomepageSettings")
	return f.homepage, nil
}

func (f *fakeAPI) CreateHomepageSettings(_ context.Context, in models.HomepageSettings, _ *api.Upload) (*models.HomepageSettings, error) {
	f.record("CreateHomepageSettings")
	f.homepage = &in
	return &in, nil
}

func (f *fakeAPI) UpdateHomepageSettings(_ context.Context, in models.HomepageSettings, _ *api.Upload) (*models.HomepageSettings, error) {
	f.record("UpdateHomepageSettings")
	f.homepage = &in
	return &in, nil
}

func (f *fakeAPI) ListClients(context.Context) ([]models.Client, error) {
	f.record("ListClients")
	return f.clients, nil
}

func (f *fakeAPI) UpdateClient(_ context.Context, id string, in models.Client) (*models.Client, error) {
	f.record("UpdateClient")
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	in.ID = id
	return &in, nil
}

func (f *fakeAPI) DeleteClient(context.Context, string) error {
	f.record("DeleteClient")
	return f.mutateErr
}

// memoryActions keeps recorded actions for assertions.
type memoryActions struct {
	mu      sync.Mutex
	entries []models.ActionLog
}

func (m *memoryActions) Record(_ context.Context, e models.ActionLog) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
}

func (m *memoryActions) List(context.Context, int) ([]models.ActionLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.ActionLog(nil), m.entries...), nil
}
