// Package httpserver exposes the sizing and scoring services over HTTP.
// The server is stateless per request: every simulation carries its full
// parameter set, so handlers share nothing but the store and the scorer.
package httpserver

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"effectif-engine/pkg/core/model"
	"effectif-engine/pkg/core/scoring"
	"effectif-engine/pkg/core/services"
	"effectif-engine/pkg/metrics"
)

const contentTypeJSON = "application/json"

// Server routes sizing and scoring requests to the core services
type Server struct {
	store          services.SimulationStore
	scorer         *scoring.Scorer
	logger         *zap.Logger
	metricsHandler fasthttp.RequestHandler
}

// ErrorResponse is the JSON body returned for every non-2xx status
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// NewServer builds a server around a simulation store and a scorer
func NewServer(store services.SimulationStore, scorer *scoring.Scorer, logger *zap.Logger) *Server {
	return &Server{
		store:  store,
		scorer: scorer,
		logger: logger,
		metricsHandler: fasthttpadaptor.NewFastHTTPHandler(
			promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}),
		),
	}
}

// Handler is the single fasthttp entry point
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/api/v1/simulate":
		s.handleSimulate(ctx)
	case "/api/v1/score":
		s.handleScore(ctx)
	case "/healthz":
		s.handleHealth(ctx)
	case "/metrics":
		s.metricsHandler(ctx)
	default:
		s.writeError(ctx, http.StatusNotFound, "Not found")
	}
}

// ListenAndServe blocks serving on addr
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("http server starting", zap.String("addr", addr))
	return fasthttp.ListenAndServe(addr, s.Handler)
}

func (s *Server) handleSimulate(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		s.writeError(ctx, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.SimulationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeError(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	start := time.Now()
	resp, err := services.Simulate(ctx, s.store, s.logger, req)
	if err != nil {
		s.writeError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	metrics.SimulationsTotal.WithLabelValues(string(req.Scope)).Inc()
	metrics.SimulationDuration.Observe(time.Since(start).Seconds())
	for _, warning := range resp.Warnings {
		metrics.WarningsTotal.WithLabelValues(string(warning.Code)).Inc()
	}
	for _, row := range resp.Rows {
		if row.Undefined && row.Scope == model.ScopePost {
			metrics.ZeroCapacityTotal.Inc()
		}
	}

	s.writeJSON(ctx, http.StatusOK, resp)
}

func (s *Server) handleScore(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		s.writeError(ctx, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.ScoringRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeError(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := services.ServerScoreCampaign(s.scorer, s.logger, req)
	if err != nil {
		s.writeError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	// This handler is the authoritative path, so the label is fixed
	metrics.ScoringCampaignsTotal.WithLabelValues(string(model.ProvenanceServer)).Inc()
	s.writeJSON(ctx, http.StatusOK, resp)
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	s.writeJSON(ctx, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, body any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType(contentTypeJSON)
	payload, err := json.Marshal(body)
	if err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
		ctx.SetStatusCode(http.StatusInternalServerError)
		return
	}
	ctx.SetBody(payload)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	s.writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}
