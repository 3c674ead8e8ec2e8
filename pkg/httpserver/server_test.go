package httpserver

import (
	"context"
	"net/http"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"effectif-engine/pkg/core/model"
	"effectif-engine/pkg/core/scoring"
	"effectif-engine/pkg/metrics"
)

type stubStore struct {
	tasks     []model.Task
	hierarchy model.Hierarchy
	volumes   []model.VolumeRecord
}

func (s *stubStore) GetTasks(ctx context.Context) ([]model.Task, error) {
	return s.tasks, nil
}

func (s *stubStore) GetHierarchy(ctx context.Context, scope model.Scope, scopeID string) (model.Hierarchy, error) {
	return s.hierarchy, nil
}

func (s *stubStore) GetVolumes(ctx context.Context, scope model.Scope, scopeID string) ([]model.VolumeRecord, error) {
	return s.volumes, nil
}

func testServer() *Server {
	store := &stubStore{
		tasks: []model.Task{
			{Code: "TRI_CO", Name: "Tri courrier", Family: "Tri", UnitTimeMinutes: 3, Unit: "pli"},
		},
		hierarchy: model.Hierarchy{
			Posts: []model.Post{
				{ID: "p1", Label: "Tri CTC Lyon", Category: model.LaborMOD, CentreID: "c1", EffectifActuel: 5},
			},
			Centres: []model.Centre{
				{ID: "c1", Label: "CTC Lyon", Classe: model.ClasseB, DirectionID: "d1"},
			},
			Directions: []model.Direction{
				{ID: "d1", Label: "Direction Rhône"},
			},
		},
		volumes: []model.VolumeRecord{
			{OwnerID: "p1", TaskCode: "TRI_CO", Quantity: 992, Period: model.PeriodDaily},
		},
	}
	return NewServer(store, scoring.DefaultScorer(), zap.NewNop())
}

func serveRequest(t *testing.T, server *Server, method, path string, body any) *fasthttp.RequestCtx {
	t.Helper()
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		ctx.Request.SetBody(payload)
	}
	server.Handler(&ctx)
	return &ctx
}

func TestHandleSimulate(t *testing.T) {
	server := testServer()
	req := model.SimulationRequest{
		Scope:      model.ScopeNation,
		Parameters: model.DefaultParameters(),
	}

	ctx := serveRequest(t, server, http.MethodPost, "/api/v1/simulate", req)
	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var resp model.SimulationResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.NotEmpty(t, resp.Metadata.SimulationID)
	require.Len(t, resp.Rows, 4)
	assert.InDelta(t, 6.2, resp.Rows[0].EtpCalcule, 1e-9)
	assert.Equal(t, 7, resp.Rows[0].EtpArrondi)
	assert.Equal(t, model.DecisionRecruter, resp.Rows[0].Decision)
}

func TestHandleSimulate_BadBody(t *testing.T) {
	server := testServer()

	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(http.MethodPost)
	ctx.Request.SetRequestURI("/api/v1/simulate")
	ctx.Request.SetBody([]byte("{not json"))
	server.Handler(&ctx)

	require.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &errResp))
	assert.Equal(t, http.StatusBadRequest, errResp.Status)
}

func TestHandleSimulate_MethodNotAllowed(t *testing.T) {
	server := testServer()
	ctx := serveRequest(t, server, http.MethodGet, "/api/v1/simulate", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, ctx.Response.StatusCode())
}

func TestHandleSimulate_InvalidScope(t *testing.T) {
	server := testServer()
	req := model.SimulationRequest{
		Scope:      "region",
		Parameters: model.DefaultParameters(),
	}

	ctx := serveRequest(t, server, http.MethodPost, "/api/v1/simulate", req)
	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}

func TestHandleScore(t *testing.T) {
	server := testServer()
	req := model.ScoringRequest{
		CampaignID: "camp-1",
		Centres: []model.CentreMetrics{
			{
				CentreID:         "c1",
				CurrentClasse:    model.ClasseC,
				ParcelVolume:     5000,
				RegisteredMail:   2000,
				OrdinaryMail:     80000,
				Headcount:        200,
				InternationalPct: 40,
			},
		},
	}

	before := testutil.ToFloat64(metrics.ScoringCampaignsTotal.WithLabelValues(string(model.ProvenanceServer)))

	ctx := serveRequest(t, server, http.MethodPost, "/api/v1/score", req)
	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var resp model.ScoringResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, "camp-1", resp.CampaignID)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, model.ProvenanceServer, resp.Results[0].Provenance)
	assert.Equal(t, model.ClasseA, resp.Results[0].SimulatedClasse)
	assert.Equal(t, model.ImpactPromotion, resp.Results[0].Impact)

	after := testutil.ToFloat64(metrics.ScoringCampaignsTotal.WithLabelValues(string(model.ProvenanceServer)))
	assert.Equal(t, before+1, after)
}

func TestHandleScore_EmptyCampaign(t *testing.T) {
	server := testServer()
	req := model.ScoringRequest{CampaignID: "camp-2"}

	ctx := serveRequest(t, server, http.MethodPost, "/api/v1/score", req)
	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}

func TestHandleHealth(t *testing.T) {
	server := testServer()
	ctx := serveRequest(t, server, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "ok")
}

func TestHandleMetrics(t *testing.T) {
	server := testServer()
	ctx := serveRequest(t, server, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
}

func TestHandleUnknownPath(t *testing.T) {
	server := testServer()
	ctx := serveRequest(t, server, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
}
