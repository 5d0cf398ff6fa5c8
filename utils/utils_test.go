package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthMiddleware(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	r := gin.New()
	r.GET("/x", AuthMiddleware(clock), func(c *gin.Context) {
		c.String(http.StatusOK, SessionFrom(c).Actor())
	})

	sign := func(exp time.Time) string {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"email": "owner@lotus.test",
			"exp":   exp.Unix(),
		}).SignedString([]byte("k"))
		require.NoError(t, err)
		return tok
	}

	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"valid", "Bearer " + sign(now.Add(time.Hour)), http.StatusOK, "owner@lotus.test"},
		{"expired", "Bearer " + sign(now.Add(-time.Hour)), http.StatusUnauthorized, `{"error":"Session Expired"}`},
		{"missing", "", http.StatusUnauthorized, `{"error":"Invalid Session"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.body, w.Body.String())
			if tc.status == http.StatusUnauthorized {
				assert.Equal(t, SignInPath, w.Header().Get(RedirectHdr))
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	for _, bad := range []string{"9:30", "25:00", "09:60", "", "0930"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestEndOfDay(t *testing.T) {
	d := time.Date(2025, 1, 31, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC), EndOfDay(d))
	assert.Equal(t, 1, DaysBetween(d, EndOfDay(d).Add(time.Second)))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+63 917-123-4567"))
	assert.False(t, ValidatePhone("09171234567"))
	assert.False(t, ValidatePhone("abc"))
}
