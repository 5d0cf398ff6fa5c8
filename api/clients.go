package api

import (
	"context"
	"net/http"
	"net/url"

	"spa-admin/models"
)

func (c *Client) ListClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := c.doJSON(ctx, http.MethodGet, "/client/records", nil, &clients, "Failed to fetch users"); err != nil {
		return nil, err
	}
	return clients, nil
}

func (c *Client) UpdateClient(ctx context.Context, id string, in models.Client) (*models.Client, error) {
	var out models.Client
	if err := c.doJSON(ctx, http.MethodPatch, "/client/record/"+url.PathEscape(id), in, &out, "Failed to update user"); err != nil {
		return nil, err
	}
	if out.ID == "" {
		in.ID = id
		return &in, nil
	}
	return &out, nil
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/client/record/"+url.PathEscape(id), nil, nil, "Failed to delete user")
}
