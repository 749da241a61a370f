package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sunstate/server/config"
	"sunstate/server/internal/i18n"
	"sunstate/server/internal/models"
	"sunstate/server/internal/notify"
	"sunstate/server/internal/session"
	"sunstate/server/internal/wizard"
)

type stubSubmitter struct {
	err   error
	delay time.Duration
	calls int32
}

func (s *stubSubmitter) Submit(_ context.Context, _ models.ListingSubmission) (models.SubmissionAck, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return models.SubmissionAck{}, s.err
	}
	return models.SubmissionAck{Reference: "REF-TEST", SubmittedAt: time.Now().UTC()}, nil
}

func (s *stubSubmitter) callCount() int32 {
	return atomic.LoadInt32(&s.calls)
}

func newTestRouter(t *testing.T, submitter wizard.Submitter) *gin.Engine {
	t.Helper()

	logger := logrus.New()
	store := session.NewMemoryStore(time.Minute, logger)
	t.Cleanup(func() { store.Close() })

	return newTestRouterWithStore(t, store, submitter)
}

func newTestRouterWithStore(t *testing.T, store session.Store, submitter wizard.Submitter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	cfg := &config.Config{}
	cfg.Site.DefaultLocale = "en"
	cfg.Site.Domain = "sunstaterealty.com.au"

	translator, err := i18n.New("en")
	require.NoError(t, err)

	notifier := notify.NewService(notify.NoopMailer{}, "enquiries@example.com.au", "noreply@example.com.au", logger)

	router := gin.New()
	router.Use(RecoveryMiddleware(logger))
	handler := NewHandler(cfg, store, submitter, notifier, translator, logger)
	SetupRoutes(router, handler)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var parsed map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	}
	return rec, parsed
}

func TestSubmitContact_InvalidEmail(t *testing.T) {
	router := newTestRouter(t, &stubSubmitter{})

	rec, body := doJSON(t, router, http.MethodPost, "/api/contact", map[string]string{
		"name": "A", "email": "not-an-email", "message": "hi",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please provide a valid email address", body["error"])
}

func TestSubmitContact_MissingFields(t *testing.T) {
	router := newTestRouter(t, &stubSubmitter{})

	rec, body := doJSON(t, router, http.MethodPost, "/api/contact", map[string]string{
		"name": "A", "email": "a@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Name, email and message are required", body["error"])
}

func TestSubmitContact_Success(t *testing.T) {
	router := newTestRouter(t, &stubSubmitter{})

	rec, body := doJSON(t, router, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Jordan Lee",
		"email":   "jordan@example.com",
		"message": "I'd like an appraisal.",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["message"])
}

func TestGetSavings(t *testing.T) {
	router := newTestRouter(t, &stubSubmitter{})

	rec, body := doJSON(t, router, http.MethodGet, "/api/calculator/savings?price=600000", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, float64(2495), body["self_managed_cost"])
	assert.Equal(t, float64(6695), body["full_service_cost"])
	assert.Equal(t, float64(17500), body["traditional_agent_cost"])
	assert.Equal(t, float64(10805), body["full_service_savings"])
}

func TestGetSavings_Invalid(t *testing.T) {
	router := newTestRouter(t, &stubSubmitter{})

	tests := []struct {
		name  string
		query string
	}{
		{"missing price", ""},
		{"non-numeric price", "?price=abc"},
		{"below lower bound", "?price=199999"},
		{"above upper bound", "?price=3000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := doJSON(t, router, http.MethodGet, "/api/calculator/savings"+tt.query, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetAgents(t *testing.T) {
	router := newTestRouter(t, &stubSubmitter{})

	rec, body := doJSON(t, router, http.MethodGet, "/api/agents", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	agents, ok := body["agents"].([]interface{})
	require.True(t, ok)
	assert.Len(t, agents, len(config.Agents))
	assert.NotEmpty(t, body["no_agent_option"])
}

func TestGetSiteConfig(t *testing.T) {
	router := newTestRouter(t, &stubSubmitter{})

	rec, body := doJSON(t, router, http.MethodGet, "/api/site-config", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "en", body["default_locale"])
	assert.Equal(t, false, body["analytics_enabled"])

	propertyTypes, ok := body["property_types"].([]interface{})
	require.True(t, ok)
	assert.Len(t, propertyTypes, len(models.PropertyTypes))
	assert.Contains(t, propertyTypes, "house")
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t, &stubSubmitter{})

	rec, body := doJSON(t, router, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

var errBackend = errors.New("backend unavailable")
