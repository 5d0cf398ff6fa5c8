package cmd

import (
	"log/slog"

	"spa-admin/api"
	"spa-admin/config"
	"spa-admin/models"
	"spa-admin/services"
)

// app holds the long-lived dependencies shared by every command.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	client  *api.Client
	actions services.ActionLogger
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)
	models.SetLocation(cfg.Location)

	client := api.NewClient(cfg.APIEndpoint,
		api.WithTimeout(cfg.APITimeout),
		api.WithLogger(logger),
	)

	a := &app{cfg: cfg, logger: logger, client: client, actions: services.NopActionLogger{}}
	if cfg.DBURL != "" {
		db, err := config.ConnectDB(cfg.DBURL)
		if err != nil {
			return nil, err
		}
		a.actions = services.NewGormActionLogger(db, logger)
	} else {
		logger.Info("DB_URL not set, action log disabled")
	}
	return a, nil
}

// serviceClient authenticates as the configured service token for
// unattended work such as the scheduled digest.
func (a *app) serviceClient(token string) (*api.Client, error) {
	sess, err := api.ParseSession(token, timeNow())
	if err != nil {
		return nil, err
	}
	return a.client.WithSession(sess), nil
}

func (a *app) notifier() (services.Notifier, error) {
	return services.NewNotifier(services.NotifierConfig{
		Channel:           a.cfg.DigestChannel,
		TwilioAccountSID:  a.cfg.TwilioAccountSID,
		TwilioAuthToken:   a.cfg.TwilioAuthToken,
		TwilioPhoneNumber: a.cfg.TwilioPhoneNumber,
		SMSTo:             a.cfg.DigestSMSTo,
		TelegramBotToken:  a.cfg.TelegramBotToken,
		TelegramChatID:    a.cfg.TelegramChatID,
	})
}
