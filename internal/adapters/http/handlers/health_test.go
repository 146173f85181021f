package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claudeomosa/NETconf25/internal/ports"
)

// fakeHealthRegistry returns a canned result instead of running checks.
type fakeHealthRegistry struct {
	result *ports.HealthResult
}

func (f *fakeHealthRegistry) Register(ports.HealthChecker) error {
	return nil
}

func (f *fakeHealthRegistry) CheckAll(context.Context) *ports.HealthResult {
	return f.result
}

func TestNewBuildInfo(t *testing.T) {
	bi := NewBuildInfo("1.4.0", "abc123", "2024-01-15T10:00:00Z")

	assert.Equal(t, "1.4.0", bi.Version)
	assert.Equal(t, "abc123", bi.Commit)
	assert.Equal(t, "2024-01-15T10:00:00Z", bi.BuildTime)
	assert.Equal(t, runtime.Version(), bi.GoVersion)
}

func TestHealthHandler_Liveness(t *testing.T) {
	handler := NewHealthHandler(&fakeHealthRegistry{}, BuildInfo{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/-/live", nil)

	handler.Liveness(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name       string
		result     *ports.HealthResult
		wantStatus int
		wantBody   []string
	}{
		{
			name: "all checks healthy",
			result: &ports.HealthResult{
				Status: ports.HealthStatusHealthy,
				Checks: map[string]*ports.CheckResult{
					"quote-catalog": {Status: ports.HealthStatusHealthy},
					"process-stats": {Status: ports.HealthStatusHealthy},
				},
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"status":"healthy"`, "quote-catalog", "process-stats"},
		},
		{
			name: "one check unhealthy",
			result: &ports.HealthResult{
				Status: ports.HealthStatusUnhealthy,
				Checks: map[string]*ports.CheckResult{
					"quote-catalog": {Status: ports.HealthStatusHealthy},
					"process-stats": {Status: ports.HealthStatusUnhealthy, Message: "proc not readable"},
				},
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   []string{`"status":"unhealthy"`, "proc not readable"},
		},
		{
			name: "no checks registered",
			result: &ports.HealthResult{
				Status: ports.HealthStatusHealthy,
				Checks: map[string]*ports.CheckResult{},
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"status":"healthy"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(&fakeHealthRegistry{result: tt.result}, BuildInfo{})

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/-/ready", nil)

			handler.Readiness(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			for _, fragment := range tt.wantBody {
				assert.Contains(t, w.Body.String(), fragment)
			}
		})
	}
}

func TestHealthHandler_BuildInfoHandler(t *testing.T) {
	buildInfo := BuildInfo{
		Version:   "1.4.0",
		Commit:    "def456",
		BuildTime: "2024-02-01T12:00:00Z",
		GoVersion: "go1.25.7",
	}

	handler := NewHealthHandler(&fakeHealthRegistry{}, buildInfo)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/-/build", nil)

	handler.BuildInfoHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, buildInfo, resp)
}

func TestMetricsHandler(t *testing.T) {
	handler := MetricsHandler()
	require.NotNil(t, handler)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "go_goroutines", "runtime collector output expected")
}

func TestHealthHandler_RegisterHealthRoutes(t *testing.T) {
	handler := NewHealthHandler(&fakeHealthRegistry{
		result: &ports.HealthResult{
			Status: ports.HealthStatusHealthy,
			Checks: map[string]*ports.CheckResult{},
		},
	}, BuildInfo{Version: "test"})

	router := gin.New()
	handler.RegisterHealthRoutes(router.Group("/-"))

	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /-/live",
		"GET /-/ready",
		"GET /-/build",
		"GET /-/metrics",
	} {
		assert.True(t, registered[want], "missing route: %s", want)
	}
}

func TestHealthHandler_RegisterHealthRoutesOnEngine(t *testing.T) {
	handler := NewHealthHandler(&fakeHealthRegistry{
		result: &ports.HealthResult{
			Status: ports.HealthStatusHealthy,
			Checks: map[string]*ports.CheckResult{},
		},
	}, BuildInfo{})

	router := gin.New()
	handler.RegisterHealthRoutesOnEngine(router)

	// The engine variant mounts the same routes under the /- prefix.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
