package services

import (
	"context"
	"net/mail"
	"strings"

	"spa-admin/api"
	"spa-admin/models"
	"spa-admin/utils"
)

type SettingsAPI interface {
	GetSpaSettings(ctx context.Context) (*models.SpaSettings, error)
	CreateSpaSettings(ctx context.Context, in models.SpaSettings) (*models.SpaSettings, error)
	UpdateSpaSettings(ctx context.Context, in models.SpaSettings) (*models.SpaSettings, error)
	GetHomepageSettings(ctx context.Context) (*models.HomepageSettings, error)
	CreateHomepageSettings(ctx context.Context, in models.HomepageSettings, logo *api.Upload) (*models.HomepageSettings, error)
	UpdateHomepageSettings(ctx context.Context, in models.HomepageSettings, logo *api.Upload) (*models.HomepageSettings, error)
}

type SettingsService struct {
	api     SettingsAPI
	actions ActionLogger
	actor   string
}

func NewSettingsService(client SettingsAPI, actions ActionLogger, actor string) *SettingsService {
	if actions == nil {
		actions = NopActionLogger{}
	}
	return &SettingsService{api: client, actions: actions, actor: actor}
}

// Spa returns nil when the settings have not been created yet.
func (s *SettingsService) Spa(ctx context.Context) (*models.SpaSettings, error) {
	return s.api.GetSpaSettings(ctx)
}

func ValidateSpaSettings(in models.SpaSettings) error {
	if in.TotalRooms < 1 {
		return invalid("totalRooms", "Total rooms must be at least 1")
	}
	open, err := utils.ParseClock(in.OpeningTime)
	if err != nil {
		return invalid("openingTime", "Opening time must be in HH:MM format")
	}
	closing, err := utils.ParseClock(in.ClosingTime)
	if err != nil {
		return invalid("closingTime", "Closing time must be in HH:MM format")
	}
	if open >= closing {
		return invalid("closingTime", "Closing time must be after opening time")
	}
	if in.DownPayment != nil && (*in.DownPayment < 1 || *in.DownPayment > 100) {
		return invalid("downPayment", "Down payment must be between 1 and 100 percent")
	}
	return nil
}

// SaveSpa creates the settings when none exist and updates them otherwise.
// created reports which of the two happened.
func (s *SettingsService) SaveSpa(ctx context.Context, in models.SpaSettings) (out *models.SpaSettings, created bool, err error) {
	in.OpeningTime = strings.TrimSpace(in.OpeningTime)
	in.ClosingTime = strings.TrimSpace(in.ClosingTime)
	if err := ValidateSpaSettings(in); err != nil {
		recordAction(ctx, s.actions, s.actor, "spa_settings_save", "", err, "")
		return nil, false, err
	}

	current, err := s.api.GetSpaSettings(ctx)
	if err != nil {
		return nil, false, err
	}
	if current == nil {
		out, err = s.api.CreateSpaSettings(ctx, in)
		created = true
	} else {
		in.ID = current.ID
		out, err = s.api.UpdateSpaSettings(ctx, in)
	}
	recordAction(ctx, s.actions, s.actor, "spa_settings_save", in.ID, err, "Spa settings saved")
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}

func (s *SettingsService) Homepage(ctx context.Context) (*models.HomepageSettings, error) {
	return s.api.GetHomepageSettings(ctx)
}

func ValidateHomepageSettings(in models.HomepageSettings) error {
	if strings.TrimSpace(in.Brand.Name) == "" {
		return invalid("brand.name", "Brand name is required")
	}
	email := strings.TrimSpace(in.Contact.Email)
	if email == "" {
		return invalid("contact.email", "Contact email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return invalid("contact.email", "Contact email is not valid")
	}
	if phone := strings.TrimSpace(in.Contact.Phone); phone != "" && !utils.ValidatePhone(phone) {
		return invalid("contact.phone", "Contact phone must be in international format")
	}
	return nil
}

// SaveHomepage follows the same create-or-update routing as SaveSpa.
func (s *SettingsService) SaveHomepage(ctx context.Context, in models.HomepageSettings, logo *api.Upload) (out *models.HomepageSettings, created bool, err error) {
	in.Brand.Name = strings.TrimSpace(in.Brand.Name)
	in.Contact.Email = strings.TrimSpace(in.Contact.Email)
	in.Contact.Phone = strings.TrimSpace(in.Contact.Phone)
	if err := ValidateHomepageSettings(in); err != nil {
		recordAction(ctx, s.actions, s.actor, "homepage_settings_save", "", err, "")
		return nil, false, err
	}

	current, err := s.api.GetHomepageSettings(ctx)
	if err != nil {
		return nil, false, err
	}
	if current == nil {
		out, err = s.api.CreateHomepageSettings(ctx, in, logo)
		created = true
	} else {
		out, err = s.api.UpdateHomepageSettings(ctx, in, logo)
	}
	recordAction(ctx, s.actions, s.actor, "homepage_settings_save", "", err, "Homepage settings saved")
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}
