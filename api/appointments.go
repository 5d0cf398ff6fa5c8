package api

import (
	"context"
	"net/http"
	"net/url"

	"spa-admin/models"
)

func (c *Client) ListAppointments(ctx context.Context, status string) ([]models.Appointment, error) {
	path := "/appointment"
	if status != "" {
		path += "?" + url.Values{"status": {status}}.Encode()
	}
	var body struct {
		Appointments []models.Appointment `json:"appointments"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &body, "Failed to fetch appointments"); err != nil {
		return nil, err
	}
	return body.Appointments, nil
}

func (c *Client) ApproveAppointment(ctx context.Context, id string) (*MutationResult, error) {
	var res MutationResult
	err := c.doJSON(ctx, http.MethodPatch, "/appointment/"+url.PathEscape(id)+"/approve", nil, &res, "Failed to approve")
	return &res, err
}

func (c *Client) CancelAppointment(ctx context.Context, id, notes string) (*MutationResult, error) {
	var res MutationResult
	in := map[string]string{"notes": notes}
	err := c.doJSON(ctx, http.MethodPatch, "/appointment/"+url.PathEscape(id)+"/cancel", in, &res, "Failed to cancel")
	return &res, err
}

func (c *Client) CompleteAppointment(ctx context.Context, id string) (*MutationResult, error) {
	var res MutationResult
	err := c.doJSON(ctx, http.MethodPatch, "/appointment/"+url.PathEscape(id)+"/complete", nil, &res, "Failed to complete")
	return &res, err
}

func (c *Client) RescheduleAppointment(ctx context.Context, id, date, startTime string) (*MutationResult, error) {
	var res MutationResult
	in := map[string]string{"date": date, "startTime": startTime}
	err := c.doJSON(ctx, http.MethodPatch, "/appointment/"+url.PathEscape(id)+"/reschedule", in, &res, "Failed to reschedule")
	return &res, err
}
