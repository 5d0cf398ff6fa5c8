package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"spa-admin/models"
)

// ServiceForm carries the editable fields of a service record.
type ServiceForm struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"`
	Category    string          `json:"category"`
}

func (f ServiceForm) fields() []formField {
	return []formField{
		{"name", f.Name},
		{"description", f.Description},
		{"price", f.Price.String()},
		{"duration", strconv.Itoa(f.Duration)},
		{"category", f.Category},
	}
}

func (c *Client) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := c.doJSON(ctx, http.MethodGet, "/services", nil, &services, "Failed to fetch services"); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) CreateService(ctx context.Context, form ServiceForm, image *Upload) (*models.Service, error) {
	return c.submitService(ctx, http.MethodPost, "/services", form, image, "Failed to create service")
}

func (c *Client) UpdateService(ctx context.Context, id string, form ServiceForm, image *Upload) (*models.Service, error) {
	return c.submitService(ctx, http.MethodPatch, "/services/"+url.PathEscape(id), form, image, "Failed to update service")
}

func (c *Client) submitService(ctx context.Context, method, path string, form ServiceForm, image *Upload, fallback string) (*models.Service, error) {
	body, contentType, err := encodeMultipart(form.fields(), "image", image)
	if err != nil {
		return nil, err
	}
	var svc models.Service
	if err := c.do(ctx, method, path, body, contentType, &svc, fallback); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/services/"+url.PathEscape(id), nil, nil, "Failed to delete service")
}

func (c *Client) SetServiceStatus(ctx context.Context, id string, status models.ServiceStatus) (*models.Service, error) {
	var svc models.Service
	in := map[string]models.ServiceStatus{"status": status}
	if err := c.doJSON(ctx, http.MethodPatch, "/services/"+url.PathEscape(id), in, &svc, "Failed to update status"); err != nil {
		return nil, err
	}
	return &svc, nil
}
