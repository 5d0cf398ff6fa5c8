package services

import (
	"context"
	"fmt"
	"strings"

	"spa-admin/api"
	"spa-admin/models"
)

type CatalogAPI interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	CreateService(ctx context.Context, form api.ServiceForm, image *api.Upload) (*models.Service, error)
	UpdateService(ctx context.Context, id string, form api.ServiceForm, image *api.Upload) (*models.Service, error)
	DeleteService(ctx context.Context, id string) error
	SetServiceStatus(ctx context.Context, id string, status models.ServiceStatus) (*models.Service, error)
}

// Optimistic shows speculative through set before commit runs. When commit
// fails the value read by get beforehand is restored and the error returned.
func Optimistic[T any](ctx context.Context, get func() T, set func(T), speculative T, commit func(context.Context) (T, error)) (T, error) {
	prior := get()
	set(speculative)
	confirmed, err := commit(ctx)
	if err != nil {
		set(prior)
		return prior, err
	}
	set(confirmed)
	return confirmed, nil
}

// CatalogService manages the service catalog for one request.
type CatalogService struct {
	api     CatalogAPI
	actions ActionLogger
	actor   string

	loaded   bool
	services []models.Service
}

func NewCatalogService(client CatalogAPI, actions ActionLogger, actor string) *CatalogService {
	if actions == nil {
		actions = NopActionLogger{}
	}
	return &CatalogService{api: client, actions: actions, actor: actor}
}

func (s *CatalogService) List(ctx context.Context) ([]models.Service, error) {
	list, err := s.api.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Service{}
	}
	s.services = list
	s.loaded = true
	return list, nil
}

func (s *CatalogService) Services() []models.Service {
	return s.services
}

// FilterServices matches the query against name and description, ignoring case.
func FilterServices(list []models.Service, query string) []models.Service {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Service, 0, len(list))
	for _, svc := range list {
		if q == "" ||
			strings.Contains(strings.ToLower(svc.Name), q) ||
			strings.Contains(strings.ToLower(svc.Description), q) {
			out = append(out, svc)
		}
	}
	return out
}

func validateServiceForm(f *api.ServiceForm) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Category = strings.TrimSpace(f.Category)
	switch {
	case f.Name == "":
		return invalid("name", "Service name is required")
	case f.Price.IsNegative():
		return invalid("price", "Price cannot be negative")
	case f.Duration <= 0:
		return invalid("duration", "Duration must be greater than zero")
	}
	return nil
}

func (s *CatalogService) Create(ctx context.Context, form api.ServiceForm, image *api.Upload) (*models.Service, error) {
	if err := validateServiceForm(&form); err != nil {
		recordAction(ctx, s.actions, s.actor, "service_create", "", err, "")
		return nil, err
	}
	svc, err := s.api.CreateService(ctx, form, image)
	target := ""
	if svc != nil {
		target = svc.ID
	}
	recordAction(ctx, s.actions, s.actor, "service_create", target, err, "Service created: "+form.Name)
	if err != nil {
		return nil, err
	}
	s.replace(*svc)
	return svc, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, form api.ServiceForm, image *api.Upload) (*models.Service, error) {
	if err := validateServiceForm(&form); err != nil {
		recordAction(ctx, s.actions, s.actor, "service_update", id, err, "")
		return nil, err
	}
	svc, err := s.api.UpdateService(ctx, id, form, image)
	recordAction(ctx, s.actions, s.actor, "service_update", id, err, "Service updated: "+form.Name)
	if err != nil {
		return nil, err
	}
	if svc.ID == "" {
		svc.ID = id
	}
	s.replace(*svc)
	return svc, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	err := s.api.DeleteService(ctx, id)
	recordAction(ctx, s.actions, s.actor, "service_delete", id, err, "Service deleted")
	if err != nil {
		return err
	}
	out := make([]models.Service, 0, len(s.services))
	for _, svc := range s.services {
		if svc.ID != id {
			out = append(out, svc)
		}
	}
	s.services = out
	return nil
}

// ToggleStatus flips a service between available and unavailable, or sets
// status when given. The local list shows the new status until the server
// answers and goes back to the old one if it refuses.
func (s *CatalogService) ToggleStatus(ctx context.Context, id string, status models.ServiceStatus) (models.Service, error) {
	if !s.loaded {
		if _, err := s.List(ctx); err != nil {
			return models.Service{}, err
		}
	}
	i := s.indexOf(id)
	if i < 0 {
		return models.Service{}, fmt.Errorf("%w: %s", ErrServiceNotFound, id)
	}

	current := s.services[i]
	if status == "" {
		status = models.ServiceUnavailable
		if current.Status == models.ServiceUnavailable {
			status = models.ServiceAvailable
		}
	}
	if !status.Valid() {
		err := invalid("status", "Unknown service status %q", status)
		recordAction(ctx, s.actions, s.actor, "service_status", id, err, "")
		return current, err
	}

	speculative := current
	speculative.Status = status
	svc, err := Optimistic(ctx,
		func() models.Service { return s.services[i] },
		func(v models.Service) { s.services[i] = v },
		speculative,
		func(ctx context.Context) (models.Service, error) {
			updated, err := s.api.SetServiceStatus(ctx, id, status)
			if err != nil {
				return models.Service{}, err
			}
			if updated == nil || updated.ID == "" {
				return speculative, nil
			}
			return *updated, nil
		},
	)
	recordAction(ctx, s.actions, s.actor, "service_status", id, err, "Service marked "+string(status))
	return svc, err
}

func (s *CatalogService) indexOf(id string) int {
	for i, svc := range s.services {
		if svc.ID == id {
			return i
		}
	}
	return -1
}

func (s *CatalogService) replace(svc models.Service) {
	if i := s.indexOf(svc.ID); i >= 0 {
		s.services[i] = svc
		return
	}
	s.services = append(s.services, svc)
}
