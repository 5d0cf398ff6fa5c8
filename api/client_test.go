package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spa-admin/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, WithHTTPClient(srv.Client()))
}

func TestListAppointments_StatusFilterAndAuth(t *testing.T) {
	var gotQuery, gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appointment", r.URL.Path)
		gotQuery = r.URL.Query().Get("status")
		gotAuth = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, `{"appointments":[{"_id":"a1","status":"Pending"}]}`)
	})

	appts, err := c.WithSession(&Session{Token: "tok"}).ListAppointments(context.Background(), "Pending")
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, models.StatusPending, appts[0].Status)
	assert.Equal(t, "Pending", gotQuery)
	assert.Equal(t, "Bearer tok", gotAuth)
}

func TestClient_ErrorMessageSurfacedVerbatim(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"message":"Appointment already approved"}`)
	})

	_, err := c.ApproveAppointment(context.Background(), "a1")
	require.Error(t, err)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Appointment already approved", apiErr.Error())
}

func TestClient_ErrorFallbackMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `not json`)
	})

	_, err := c.CompleteAppointment(context.Background(), "a1")
	require.Error(t, err)
	assert.Equal(t, "Failed to complete", err.Error())
}

func TestCancelAppointment_SendsNotes(t *testing.T) {
	var body map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/appointment/a1/cancel", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, `{"message":"cancelled"}`)
	})

	res, err := c.CancelAppointment(context.Background(), "a1", "client asked")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", res.Message)
	assert.Equal(t, "client asked", body["notes"])
}

func TestGetSpaSettings_NotFoundMeansAbsent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Settings not found"}`)
	})

	s, err := c.GetSpaSettings(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s)

	h, err := c.GetHomepageSettings(context.Background())
	require.NoError(t, err)
	assert.Nil(t, h)
}

func TestCreateService_Multipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Hot Stone", r.FormValue("name"))
		assert.Equal(t, "1250.5", r.FormValue("price"))
		assert.Equal(t, "90", r.FormValue("duration"))

		f, hdr, err := r.FormFile("image")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "stone.png", hdr.Filename)
		assert.Equal(t, "png-bytes", string(data))

		_, _ = io.WriteString(w, `{"_id":"s1","name":"Hot Stone","price":1250.5,"duration":90,"status":"available"}`)
	})

	svc, err := c.CreateService(context.Background(), ServiceForm{
		Name:     "Hot Stone",
		Price:    decimal.RequireFromString("1250.5"),
		Duration: 90,
	}, &Upload{Filename: "stone.png", ContentType: "image/png", Body: strings.NewReader("png-bytes")})
	require.NoError(t, err)
	assert.Equal(t, "s1", svc.ID)
	assert.Equal(t, models.ServiceAvailable, svc.Status)
}

func TestUpdateHomepageSettings_SkipsEmptyOptionalFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Lotus Spa", r.FormValue("brand[name]"))
		assert.Equal(t, "hi@lotus.test", r.FormValue("contact[email]"))
		_, hasPhone := r.MultipartForm.Value["contact[phone]"]
		assert.False(t, hasPhone)
		_, _ = io.WriteString(w, `{"brand":{"name":"Lotus Spa"},"contact":{"email":"hi@lotus.test"},"content":{}}`)
	})

	out, err := c.UpdateHomepageSettings(context.Background(), models.HomepageSettings{
		Brand:   models.HomepageBrand{Name: "Lotus Spa"},
		Contact: models.HomepageContact{Email: "hi@lotus.test"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Lotus Spa", out.Brand.Name)
}

func TestExchangeGoogle_NestedIDToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"firstName":"Mia","lastName":"Reyes","email":"mia@lotus.test","tokens":{"id_token":"idtok"}}`)
	})

	res, err := c.ExchangeGoogle(context.Background(), GoogleLogin{Code: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "idtok", res.Token)
	assert.Equal(t, "Mia", res.FirstName)
}

func TestWithTimeout_LeavesSharedHTTPClientAlone(t *testing.T) {
	shared := &http.Client{Timeout: time.Minute}
	c := NewClient("http://spa.test", WithHTTPClient(shared), WithTimeout(2*time.Second))

	assert.Equal(t, time.Minute, shared.Timeout)
	assert.Equal(t, 2*time.Second, c.http.Timeout)
	assert.NotSame(t, shared, c.http)
}
