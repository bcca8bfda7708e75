package leaflog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/leaflog/internal/cache"
	"github.com/magabrotheeeer/leaflog/internal/config"
	"github.com/magabrotheeeer/leaflog/internal/lib/sl"
)

type envelope struct {
	Status string          `json:"status"`
	Error  string          `json:"error"`
	Data   json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	router, err := newRouter(context.Background(), cfg, sl.Discard(), cache.Noop{})
	require.NoError(t, err)
	return router
}

func testConfig() *config.Config {
	return &config.Config{
		CacheTTL:  time.Hour,
		RateLimit: config.RateLimit{RPS: 1000, Burst: 1000},
	}
}

func do(t *testing.T, h http.Handler, method, url, body string) (int, envelope) {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, url, nil)
	} else {
		r = httptest.NewRequest(method, url, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestRoutes_PlantLifecycle(t *testing.T) {
	h := newTestRouter(t, testConfig())

	code, env := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK", env.Status)

	code, env = do(t, h, http.MethodGet, "/api/v1/plants", "")
	require.Equal(t, http.StatusOK, code)
	var list struct {
		Count int `json:"list_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 2, list.Count)

	code, env = do(t, h, http.MethodPost, "/api/v1/plants", `{"name":"Monstera","type":"Monstera deliciosa"}`)
	require.Equal(t, http.StatusCreated, code)
	var plant struct {
		ID          string `json:"id"`
		GrowthStage string `json:"growthStage"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &plant))
	require.NotEmpty(t, plant.ID)
	assert.Equal(t, "Seedling", plant.GrowthStage)

	code, _ = do(t, h, http.MethodPatch, "/api/v1/plants/"+plant.ID, `{"name":"Swiss Cheese Plant"}`)
	require.Equal(t, http.StatusOK, code)

	code, env = do(t, h, http.MethodPost, "/api/v1/reminders", `{"plantId":"`+plant.ID+`","task":"Water","dueDate":"2099-01-01"}`)
	require.Equal(t, http.StatusCreated, code)
	var reminder struct {
		ID        string `json:"id"`
		PlantName string `json:"plantName"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reminder))
	assert.Equal(t, "Swiss Cheese Plant", reminder.PlantName)

	code, env = do(t, h, http.MethodPost, "/api/v1/reminders/"+reminder.ID+"/complete", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"status":"completed"`)

	code, env = do(t, h, http.MethodGet, "/api/v1/admin/stats", "")
	require.Equal(t, http.StatusOK, code)
	var s struct {
		TotalPlants    int `json:"totalPlants"`
		CompletionRate int `json:"completionRate"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &s))
	assert.Equal(t, 3, s.TotalPlants)
	assert.Equal(t, 33, s.CompletionRate)

	code, env = do(t, h, http.MethodDelete, "/api/v1/plants/"+plant.ID, "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"reminders_removed":1`)

	code, env = do(t, h, http.MethodGet, "/api/v1/plants/"+plant.ID, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "plant not found", env.Error)
}

func TestRoutes_DisableSeed(t *testing.T) {
	cfg := testConfig()
	cfg.DisableSeed = true
	h := newTestRouter(t, cfg)

	code, env := do(t, h, http.MethodGet, "/api/v1/admin/users", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"list_count":0`)
}

func TestRoutes_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimit{RPS: 1e-8, Burst: 1}
	h := newTestRouter(t, cfg)

	code, _ := do(t, h, http.MethodGet, "/api/v1/reminders", "")
	assert.Equal(t, http.StatusOK, code)
	code, env := do(t, h, http.MethodGet, "/api/v1/reminders", "")
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.Equal(t, "too many requests", env.Error)

	// health не ограничивается
	code, _ = do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, code)
}

func TestRoutes_MetricsAndDocs(t *testing.T) {
	h := newTestRouter(t, testConfig())
	do(t, h, http.MethodGet, "/api/v1/plants", "")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "leaflog_plants 2")
	assert.Contains(t, w.Body.String(), `leaflog_http_requests_total{method="GET",route="/api/v1/plants",status="200"} 1`)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Leaflog API")
	assert.Contains(t, w.Body.String(), "/reminders/{id}/complete")
}
