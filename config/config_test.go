package config

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spa-admin/api"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:3000", cfg.APIEndpoint)
	assert.Equal(t, 15*time.Second, cfg.APITimeout)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, "0 9 * * *", cfg.DigestCron)
	assert.Equal(t, "none", cfg.DigestChannel)
	assert.Equal(t, "₱", cfg.CurrencySymbol)
	assert.Equal(t, "Asia/Manila", cfg.Location.String())
	assert.False(t, cfg.IsProduction())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("API_ENDPOINT", "https://api.spa.test/")
	v.Set("API_TIMEOUT", "3s")
	v.Set("APP_ENV", "production")
	v.Set("DIGEST_CHANNEL", "Telegram")
	v.Set("TELEGRAM_CHAT_ID", "12345")
	v.Set("APP_TIMEZONE", "UTC")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "https://api.spa.test", cfg.APIEndpoint)
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "telegram", cfg.DigestChannel)
	assert.Equal(t, int64(12345), cfg.TelegramChatID)
	assert.Equal(t, time.UTC, cfg.Location)
}

func TestFromViper_Invalid(t *testing.T) {
	for key, value := range map[string]string{
		"API_TIMEOUT":         "soon",
		"OTEL_SAMPLING_RATIO": "2",
		"DIGEST_CHANNEL":      "email",
		"APP_TIMEZONE":        "Mars/Olympus",
	} {
		v := viper.New()
		v.Set(key, value)
		_, err := fromViper(v)
		assert.Error(t, err, key)
	}
}

func TestPerformanceLogger_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(PerformanceLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = api.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), seen)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", seen)
}
