// Package scoringclient calls the authoritative scoring endpoint over HTTP.
// Transport failures and server-side outages surface as
// model.ErrBackendUnavailable so callers can fall back to local scoring.
package scoringclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"effectif-engine/pkg/core/model"
)

const (
	scorePath      = "/api/v1/score"
	defaultTimeout = 10 * time.Second
)

// Client implements services.AuthoritativeScorer against a remote backend
type Client struct {
	baseURL string
	httpc   *fasthttp.Client
	timeout time.Duration
}

// NewClient creates a client for the backend at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &fasthttp.Client{},
		timeout: defaultTimeout,
	}
}

// ScoreCampaign posts the campaign to the backend and returns its verdicts
func (c *Client) ScoreCampaign(ctx context.Context, req model.ScoringRequest) (*model.ScoringResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scoring request: %w", err)
	}

	httpReq := fasthttp.AcquireRequest()
	httpResp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(httpReq)
	defer fasthttp.ReleaseResponse(httpResp)

	httpReq.SetRequestURI(c.baseURL + scorePath)
	httpReq.Header.SetMethod(http.MethodPost)
	httpReq.Header.SetContentType("application/json")
	httpReq.SetBody(payload)

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	if err := c.httpc.DoTimeout(httpReq, httpResp, timeout); err != nil {
		return nil, fmt.Errorf("scoring backend request failed: %v: %w", err, model.ErrBackendUnavailable)
	}

	status := httpResp.StatusCode()
	if status >= http.StatusInternalServerError {
		return nil, fmt.Errorf("scoring backend returned %d: %w", status, model.ErrBackendUnavailable)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("scoring backend rejected campaign with status %d: %s", status, httpResp.Body())
	}

	var resp model.ScoringResponse
	if err := json.Unmarshal(httpResp.Body(), &resp); err != nil {
		return nil, fmt.Errorf("failed to decode scoring response: %w", err)
	}
	return &resp, nil
}
