package config

import (
	"fmt"
	"log"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	AppEnv      string
	APIEndpoint string
	APITimeout  time.Duration
	CORSOrigins []string

	LogLevel  string
	LogFormat string
	LogFile   string

	DBURL string

	OTelEnabled    bool
	OTelEndpoint   string
	OTelSampleRate float64

	DigestCron        string
	DigestChannel     string
	DigestToken       string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
	DigestSMSTo       string
	TelegramBotToken  string
	TelegramChatID    int64

	CurrencySymbol string
	Location       *time.Location
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("API_ENDPOINT", "http://localhost:3000")
	v.SetDefault("API_TIMEOUT", "15s")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("DB_URL", "")
	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317")
	v.SetDefault("OTEL_SAMPLING_RATIO", 1.0)
	v.SetDefault("DIGEST_CRON", "0 9 * * *")
	v.SetDefault("DIGEST_CHANNEL", "none")
	v.SetDefault("DIGEST_TOKEN", "")
	v.SetDefault("TWILIO_ACCOUNT_SID", "")
	v.SetDefault("TWILIO_AUTH_TOKEN", "")
	v.SetDefault("TWILIO_PHONE_NUMBER", "")
	v.SetDefault("DIGEST_SMS_TO", "")
	v.SetDefault("TELEGRAM_BOT_TOKEN", "")
	v.SetDefault("TELEGRAM_CHAT_ID", 0)
	v.SetDefault("CURRENCY_SYMBOL", "₱")
	v.SetDefault("APP_TIMEZONE", "Asia/Manila")
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	v := viper.New()
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	timeout, err := time.ParseDuration(v.GetString("API_TIMEOUT"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid API_TIMEOUT %q", v.GetString("API_TIMEOUT"))
	}
	ratio := v.GetFloat64("OTEL_SAMPLING_RATIO")
	if ratio < 0 || ratio > 1 {
		return nil, fmt.Errorf("OTEL_SAMPLING_RATIO must be between 0 and 1, got %v", ratio)
	}

	loc, err := time.LoadLocation(v.GetString("APP_TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", v.GetString("APP_TIMEZONE"), err)
	}

	cfg := &Config{
		Port:        v.GetString("PORT"),
		AppEnv:      v.GetString("APP_ENV"),
		APIEndpoint: strings.TrimRight(v.GetString("API_ENDPOINT"), "/"),
		APITimeout:  timeout,
		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),

		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
		LogFile:   v.GetString("LOG_FILE"),

		DBURL: v.GetString("DB_URL"),

		OTelEnabled:    v.GetBool("OTEL_ENABLED"),
		OTelEndpoint:   v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTelSampleRate: ratio,

		DigestCron:        v.GetString("DIGEST_CRON"),
		DigestChannel:     strings.ToLower(v.GetString("DIGEST_CHANNEL")),
		DigestToken:       v.GetString("DIGEST_TOKEN"),
		TwilioAccountSID:  v.GetString("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   v.GetString("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber: v.GetString("TWILIO_PHONE_NUMBER"),
		DigestSMSTo:       v.GetString("DIGEST_SMS_TO"),
		TelegramBotToken:  v.GetString("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:    v.GetInt64("TELEGRAM_CHAT_ID"),

		CurrencySymbol: v.GetString("CURRENCY_SYMBOL"),
		Location:       loc,
	}
	if cfg.APIEndpoint == "" {
		return nil, fmt.Errorf("API_ENDPOINT is required")
	}
	switch cfg.DigestChannel {
	case "", "none", "sms", "telegram":
	default:
		return nil, fmt.Errorf("DIGEST_CHANNEL must be sms, telegram or none, got %q", cfg.DigestChannel)
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
