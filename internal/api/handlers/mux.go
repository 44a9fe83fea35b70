package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/dabmux-gui/internal/api/models"
	"github.com/jroosing/dabmux-gui/internal/rc"
)

// rcErrorKinds maps rc sentinels to the error kind reported to clients.
var rcErrorKinds = []struct {
	err    error
	kind   string
	status int
}{
	{rc.ErrTimeout, "timeout", http.StatusGatewayTimeout},
	{rc.ErrSetRejected, "set_rejected", http.StatusBadRequest},
	{rc.ErrMalformedResponse, "malformed_response", http.StatusBadGateway},
	{rc.ErrUnexpectedFraming, "unexpected_framing", http.StatusBadGateway},
	{rc.ErrUnsupportedValueShape, "unsupported_value_shape", http.StatusBadGateway},
	{rc.ErrWrongService, "wrong_service", http.StatusBadGateway},
	{rc.ErrMissingField, "missing_field", http.StatusBadGateway},
}

// classify returns the HTTP status and kind for an rc error.
func classify(err error) (int, string) {
	for _, k := range rcErrorKinds {
		if errors.Is(err, k.err) {
			return k.status, k.kind
		}
	}
	return http.StatusBadGateway, "transport"
}

func (h *Handler) muxError(c *gin.Context, op string, err error) {
	status, kind := classify(err)
	h.logger.Warn("mux request failed", "op", op, "kind", kind, "error", err)
	c.JSON(status, models.ErrorResponse{Error: err.Error(), Kind: kind})
}

func (h *Handler) requireMux(c *gin.Context) bool {
	if h.mux == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "mux client not configured"})
		return false
	}
	return true
}

func toParamResponses(params []rc.Param) []models.ParamResponse {
	out := make([]models.ParamResponse, len(params))
	for i, p := range params {
		out[i] = models.ParamResponse{Module: p.Module, Param: p.Param, Value: p.Value}
	}
	return out
}

func toStatsResponse(s rc.Stats) *models.MuxStatsResponse {
	resp := &models.MuxStatsResponse{
		Version: s.Version,
		Inputs:  make([]models.InputStatResponse, len(s.Inputs)),
	}
	for i, in := range s.Inputs {
		st := in.Stat
		resp.Inputs[i] = models.InputStatResponse{
			Name:           in.Name,
			MaxFill:        st.MaxFill,
			MinFill:        st.MinFill,
			NumUnderruns:   st.NumUnderruns,
			NumOverruns:    st.NumOverruns,
			PeakLeft:       st.PeakLeft,
			PeakRight:      st.PeakRight,
			PeakLeftSlow:   st.PeakLeftSlow,
			PeakRightSlow:  st.PeakRightSlow,
			LastTistOffset: st.LastTistOffset,
			State:          st.State,
			Version:        st.Version,
			Uptime:         st.Uptime,
		}
	}
	return resp
}

// ListParams godoc
// @Summary List RC parameters
// @Description Returns every RC parameter of the mux; label and shortlabel are merged into label
// @Tags mux
// @Produce json
// @Success 200 {object} models.ParamsResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 504 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /params [get]
func (h *Handler) ListParams(c *gin.Context) {
	if !h.requireMux(c) {
		return
	}
	params, err := h.mux.ListParameters(c.Request.Context())
	if err != nil {
		h.muxError(c, "list_parameters", err)
		return
	}
	c.JSON(http.StatusOK, models.ParamsResponse{Params: toParamResponses(params), Count: len(params)})
}

// SetParam godoc
// @Summary Set an RC parameter
// @Description Sets module.param on the mux
// @Tags mux
// @Accept json
// @Produce json
// @Param request body models.SetParamRequest true "Parameter to set"
// @Success 200 {object} models.StatusResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 504 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /params [post]
func (h *Handler) SetParam(c *gin.Context) {
	if !h.requireMux(c) {
		return
	}
	var req models.SetParamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.mux.SetParameter(c.Request.Context(), req.Module, req.Param, req.Value); err != nil {
		h.muxError(c, "set_parameter", err)
		return
	}
	h.logger.Info("rc parameter set", "module", req.Module, "param", req.Param, "value", req.Value)
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Stats godoc
// @Summary Mux statistics
// @Description Returns per-input buffer, underrun/overrun and audio level counters sorted by input name
// @Tags mux
// @Produce json
// @Success 200 {object} models.MuxStatsResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 504 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	if !h.requireMux(c) {
		return
	}
	stats, err := h.mux.Stats(c.Request.Context())
	if err != nil {
		h.muxError(c, "stats", err)
		return
	}
	c.JSON(http.StatusOK, toStatsResponse(stats))
}

// Dashboard godoc
// @Summary Dashboard data
// @Description Returns parameters and statistics together; failures are reported inline per section
// @Tags mux
// @Produce json
// @Success 200 {object} models.DashboardResponse
// @Security ApiKeyAuth
// @Router /dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	if !h.requireMux(c) {
		return
	}
	ctx := c.Request.Context()
	resp := models.DashboardResponse{Params: []models.ParamResponse{}}
	if h.cfg != nil {
		resp.Instance = h.cfg.Instance.Name
	}

	params, err := h.mux.ListParameters(ctx)
	if err != nil {
		resp.ParamsError = err.Error()
	} else {
		resp.Params = toParamResponses(params)
	}

	stats, err := h.mux.Stats(ctx)
	if err != nil {
		resp.StatsError = err.Error()
	} else {
		resp.Stats = toStatsResponse(stats)
	}

	c.JSON(http.StatusOK, resp)
}
