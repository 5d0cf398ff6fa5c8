package api

import (
	"context"
	"net/http"

	"spa-admin/models"
)

// GetSpaSettings returns nil without error when the record was never created.
func (c *Client) GetSpaSettings(ctx context.Context) (*models.SpaSettings, error) {
	var s models.SpaSettings
	if err := c.doJSON(ctx, http.MethodGet, "/settings", nil, &s, "Failed to fetch spa settings"); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (c *Client) CreateSpaSettings(ctx context.Context, in models.SpaSettings) (*models.SpaSettings, error) {
	in.ID = ""
	var s models.SpaSettings
	if err := c.doJSON(ctx, http.MethodPost, "/settings", in, &s, "Failed to create spa settings"); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) UpdateSpaSettings(ctx context.Context, in models.SpaSettings) (*models.SpaSettings, error) {
	var s models.SpaSettings
	if err := c.doJSON(ctx, http.MethodPatch, "/settings", in, &s, "Failed to update spa settings"); err != nil {
		return nil, err
	}
	return &s, nil
}
