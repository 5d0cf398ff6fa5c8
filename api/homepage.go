package api

import (
	"context"
	"net/http"

	"spa-admin/models"
)

func homepageFields(s models.HomepageSettings) []formField {
	fields := []formField{
		{"brand[name]", s.Brand.Name},
		{"contact[email]", s.Contact.Email},
	}
	optional := []formField{
		{"contact[phone]", s.Contact.Phone},
		{"contact[address]", s.Contact.Address},
		{"content[heading]", s.Content.Heading},
		{"content[description]", s.Content.Description},
		{"content[bodyDescription]", s.Content.BodyDescription},
	}
	for _, f := range optional {
		if f.value != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// GetHomepageSettings returns nil without error when the record was never created.
func (c *Client) GetHomepageSettings(ctx context.Context) (*models.HomepageSettings, error) {
	var s models.HomepageSettings
	if err := c.doJSON(ctx, http.MethodGet, "/homepage-settings", nil, &s, "Failed to fetch homepage settings"); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (c *Client) CreateHomepageSettings(ctx context.Context, in models.HomepageSettings, logo *Upload) (*models.HomepageSettings, error) {
	return c.submitHomepage(ctx, http.MethodPost, in, logo, "Failed to create homepage settings")
}

func (c *Client) UpdateHomepageSettings(ctx context.Context, in models.HomepageSettings, logo *Upload) (*models.HomepageSettings, error) {
	return c.submitHomepage(ctx, http.MethodPatch, in, logo, "Failed to update homepage settings")
}

func (c *Client) submitHomepage(ctx context.Context, method string, in models.HomepageSettings, logo *Upload, fallback string) (*models.HomepageSettings, error) {
	body, contentType, err := encodeMultipart(homepageFields(in), "logo", logo)
	if err != nil {
		return nil, err
	}
	var s models.HomepageSettings
	if err := c.do(ctx, method, "/homepage-settings", body, contentType, &s, fallback); err != nil {
		return nil, err
	}
	return &s, nil
}
