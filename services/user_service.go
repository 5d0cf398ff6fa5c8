package services

import (
	"context"
	"strings"

	"spa-admin/models"
	"spa-admin/utils"
)

type UserAPI interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	UpdateClient(ctx context.Context, id string, in models.Client) (*models.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

// UserService manages the spa's registered clients.
type UserService struct {
	api     UserAPI
	actions ActionLogger
	actor   string
}

func NewUserService(client UserAPI, actions ActionLogger, actor string) *UserService {
	if actions == nil {
		actions = NopActionLogger{}
	}
	return &UserService{api: client, actions: actions, actor: actor}
}

func (s *UserService) List(ctx context.Context) ([]models.Client, error) {
	list, err := s.api.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Client{}
	}
	return list, nil
}

// FilterClients searches name, username and email, ignoring case.
func FilterClients(list []models.Client, query string) []models.Client {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Client, 0, len(list))
	for _, c := range list {
		haystack := strings.ToLower(strings.Join([]string{c.FirstName, c.LastName, c.Username, c.Email}, " "))
		if q == "" || strings.Contains(haystack, q) {
			out = append(out, c)
		}
	}
	return out
}

func ValidateClient(in models.Client) error {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return invalid("name", "First and last name are required")
	}
	if in.Status != "" && !in.Status.Valid() {
		return invalid("status", "Status must be active, inactive or banned")
	}
	if phone := strings.TrimSpace(in.Phone); phone != "" && !utils.ValidatePhone(phone) {
		return invalid("phone", "Phone must be in international format")
	}
	return nil
}

func (s *UserService) Update(ctx context.Context, id string, in models.Client) (*models.Client, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Phone = strings.TrimSpace(in.Phone)
	if err := ValidateClient(in); err != nil {
		recordAction(ctx, s.actions, s.actor, "user_update", id, err, "")
		return nil, err
	}
	out, err := s.api.UpdateClient(ctx, id, in)
	recordAction(ctx, s.actions, s.actor, "user_update", id, err, "User updated: "+in.FullName())
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	err := s.api.DeleteClient(ctx, id)
	recordAction(ctx, s.actions, s.actor, "user_delete", id, err, "User deleted")
	return err
}
