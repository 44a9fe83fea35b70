// Package handlers_test provides behavior tests for the API handlers package.
package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/dabmux-gui/internal/api/handlers"
	"github.com/jroosing/dabmux-gui/internal/api/models"
	"github.com/jroosing/dabmux-gui/internal/config"
	"github.com/jroosing/dabmux-gui/internal/rc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type setCall struct {
	module, param, value string
}

type fakeMux struct {
	params    []rc.Param
	paramsErr error
	stats     rc.Stats
	statsErr  error
	setErr    error
	sets      []setCall
}

func (m *fakeMux) ListParameters(context.Context) ([]rc.Param, error) {
	return m.params, m.paramsErr
}

func (m *fakeMux) SetParameter(_ context.Context, module, param, value string) error {
	m.sets = append(m.sets, setCall{module, param, value})
	return m.setErr
}

func (m *fakeMux) Stats(context.Context) (rc.Stats, error) {
	return m.stats, m.statsErr
}

func createTestHandler(t *testing.T, mux handlers.Mux) *handlers.Handler {
	t.Helper()
	cfg := config.Default()
	cfg.Instance.Name = "Test Mux"
	cfg.API.APIKey = "secret"
	require.NoError(t, cfg.Validate())

	h := handlers.New(cfg, mux, nil)
	h.SetHostInfoFunc(func(context.Context) (handlers.HostSnapshot, error) {
		return handlers.HostSnapshot{Hostname: "muxhost", UptimeSeconds: 42, Load1: 0.5}, nil
	})
	return h
}

func performRequest(r http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func sampleStats() rc.Stats {
	state := "Streaming"
	return rc.Stats{
		Version: "v5.1.0",
		Inputs: []rc.InputStats{
			{Name: "a", Stat: rc.InputStat{MaxFill: 10, NumUnderruns: 2, PeakLeft: -12, State: &state}},
			{Name: "b", Stat: rc.InputStat{MinFill: 1}},
		},
	}
}

// ============================================================================
// Health / Config Endpoint Tests
// ============================================================================

func TestHealth_ReturnsOK(t *testing.T) {
	h := createTestHandler(t, &fakeMux{})
	router := gin.New()
	router.GET("/health", h.Health)

	w := performRequest(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.HealthResponse](t, w)
	assert.Equal(t, "ok", resp.Status)
	require.NotNil(t, resp.Host)
	assert.Equal(t, "muxhost", resp.Host.Hostname)
	assert.Equal(t, uint64(42), resp.Host.UptimeSeconds)
}

func TestHealth_HostInfoFailureIsNotFatal(t *testing.T) {
	h := createTestHandler(t, &fakeMux{})
	h.SetHostInfoFunc(func(context.Context) (handlers.HostSnapshot, error) {
		return handlers.HostSnapshot{}, errors.New("not supported")
	})
	router := gin.New()
	router.GET("/health", h.Health)

	w := performRequest(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode[models.HealthResponse](t, w).Host)
}

func TestGetConfig_RedactsAPIKey(t *testing.T) {
	h := createTestHandler(t, &fakeMux{})
	router := gin.New()
	router.GET("/config", h.GetConfig)

	w := performRequest(router, http.MethodGet, "/config", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
	resp := decode[models.ConfigResponse](t, w)
	assert.True(t, resp.APIKeySet)
	assert.Equal(t, "Test Mux", resp.Instance)
	assert.Equal(t, rc.DefaultRCEndpoint, resp.RCEndpoint)
	assert.Equal(t, "frames", resp.SetReplyFormat)
}

func TestGetConfig_NilConfig(t *testing.T) {
	h := handlers.New(nil, &fakeMux{}, nil)
	router := gin.New()
	router.GET("/config", h.GetConfig)

	w := performRequest(router, http.MethodGet, "/config", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// ============================================================================
// Params Endpoint Tests
// ============================================================================

func TestListParams_ReturnsParamsInOrder(t *testing.T) {
	mux := &fakeMux{params: []rc.Param{
		{Module: "srv", Param: "label", Value: "Foo,F"},
		{Module: "ensemble", Param: "localtime", Value: "1"},
	}}
	h := createTestHandler(t, mux)
	router := gin.New()
	router.GET("/params", h.ListParams)

	w := performRequest(router, http.MethodGet, "/params", "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.ParamsResponse](t, w)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "srv", resp.Params[0].Module)
	assert.Equal(t, "Foo,F", resp.Params[0].Value)
	assert.Equal(t, "ensemble", resp.Params[1].Module)
}

func TestListParams_ErrorStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantKind string
	}{
		{"timeout", fmt.Errorf("%w: tcp://127.0.0.1:12722", rc.ErrTimeout), http.StatusGatewayTimeout, "timeout"},
		{"malformed", &rc.MalformedResponseError{Detail: "root"}, http.StatusBadGateway, "malformed_response"},
		{"framing", &rc.FramingError{Frames: []string{"a", "b"}}, http.StatusBadGateway, "unexpected_framing"},
		{"shape", &rc.UnsupportedValueShapeError{Module: "m", Param: "p", Kind: rc.KindArray}, http.StatusBadGateway, "unsupported_value_shape"},
		{"transport", errors.New("connection refused"), http.StatusBadGateway, "transport"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t, &fakeMux{paramsErr: tt.err})
			router := gin.New()
			router.GET("/params", h.ListParams)

			w := performRequest(router, http.MethodGet, "/params", "")

			assert.Equal(t, tt.wantCode, w.Code)
			resp := decode[models.ErrorResponse](t, w)
			assert.Equal(t, tt.wantKind, resp.Kind)
			assert.Equal(t, tt.err.Error(), resp.Error)
		})
	}
}

func TestSetParam_Success(t *testing.T) {
	mux := &fakeMux{}
	h := createTestHandler(t, mux)
	router := gin.New()
	router.POST("/params", h.SetParam)

	w := performRequest(router, http.MethodPost, "/params", `{"module":"srv","param":"label","value":"Foo,F"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[models.StatusResponse](t, w).Status)
	assert.Equal(t, []setCall{{"srv", "label", "Foo,F"}}, mux.sets)
}

func TestSetParam_Rejected(t *testing.T) {
	mux := &fakeMux{setErr: &rc.SetRejectedError{Reason: "busy"}}
	h := createTestHandler(t, mux)
	router := gin.New()
	router.POST("/params", h.SetParam)

	w := performRequest(router, http.MethodPost, "/params", `{"module":"srv","param":"pty","value":"5"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[models.ErrorResponse](t, w)
	assert.Equal(t, "set_rejected", resp.Kind)
	assert.Contains(t, resp.Error, "busy")
}

func TestSetParam_InvalidBody(t *testing.T) {
	mux := &fakeMux{}
	h := createTestHandler(t, mux)
	router := gin.New()
	router.POST("/params", h.SetParam)

	for _, body := range []string{`{"param":"pty","value":"5"}`, `not json`} {
		w := performRequest(router, http.MethodPost, "/params", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.Empty(t, mux.sets)
}

// ============================================================================
// Stats / Dashboard Endpoint Tests
// ============================================================================

func TestStats_ReturnsInputs(t *testing.T) {
	h := createTestHandler(t, &fakeMux{stats: sampleStats()})
	router := gin.New()
	router.GET("/stats", h.Stats)

	w := performRequest(router, http.MethodGet, "/stats", "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.MuxStatsResponse](t, w)
	assert.Equal(t, "v5.1.0", resp.Version)
	require.Len(t, resp.Inputs, 2)
	assert.Equal(t, "a", resp.Inputs[0].Name)
	assert.Equal(t, uint64(2), resp.Inputs[0].NumUnderruns)
	require.NotNil(t, resp.Inputs[0].State)
	assert.Equal(t, "Streaming", *resp.Inputs[0].State)
	assert.Nil(t, resp.Inputs[1].State)
}

func TestStats_WrongService(t *testing.T) {
	h := createTestHandler(t, &fakeMux{statsErr: &rc.WrongServiceError{Actual: "OtherThing"}})
	router := gin.New()
	router.GET("/stats", h.Stats)

	w := performRequest(router, http.MethodGet, "/stats", "")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "wrong_service", decode[models.ErrorResponse](t, w).Kind)
}

func TestDashboard_CombinesSections(t *testing.T) {
	mux := &fakeMux{
		params: []rc.Param{{Module: "srv", Param: "pty", Value: "5"}},
		stats:  sampleStats(),
	}
	h := createTestHandler(t, mux)
	router := gin.New()
	router.GET("/dashboard", h.Dashboard)

	w := performRequest(router, http.MethodGet, "/dashboard", "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.DashboardResponse](t, w)
	assert.Equal(t, "Test Mux", resp.Instance)
	assert.Len(t, resp.Params, 1)
	assert.Empty(t, resp.ParamsError)
	require.NotNil(t, resp.Stats)
	assert.Empty(t, resp.StatsError)
}

func TestDashboard_InlineErrors(t *testing.T) {
	mux := &fakeMux{
		paramsErr: fmt.Errorf("%w: tcp://127.0.0.1:12722", rc.ErrTimeout),
		stats:     sampleStats(),
	}
	h := createTestHandler(t, mux)
	router := gin.New()
	router.GET("/dashboard", h.Dashboard)

	w := performRequest(router, http.MethodGet, "/dashboard", "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.DashboardResponse](t, w)
	assert.Empty(t, resp.Params)
	assert.Contains(t, resp.ParamsError, "timeout")
	require.NotNil(t, resp.Stats)
	assert.Len(t, resp.Stats.Inputs, 2)

	mux.paramsErr = nil
	mux.statsErr = &rc.MissingFieldError{Name: "service"}
	w = performRequest(router, http.MethodGet, "/dashboard", "")
	resp = decode[models.DashboardResponse](t, w)
	assert.Nil(t, resp.Stats)
	assert.Contains(t, resp.StatsError, "service")
}

func TestMuxEndpoints_NoClient(t *testing.T) {
	h := handlers.New(config.Default(), nil, nil)
	router := gin.New()
	router.GET("/params", h.ListParams)
	router.GET("/stats", h.Stats)

	assert.Equal(t, http.StatusServiceUnavailable, performRequest(router, http.MethodGet, "/params", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, performRequest(router, http.MethodGet, "/stats", "").Code)
}
