package ragclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"ums-chatbot-be/internal/dto"
	"ums-chatbot-be/internal/pkg/apperr"
)

// Client is the gateway's HTTP client for the retrieval service. Every
// failure comes back as a tagged apperr so callers never branch on error
// shape: Timeout, Unreachable, Downstream(status, body) or Internal.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		// Per-call deadlines come from the context; no client-wide timeout.
		httpClient: &http.Client{},
	}
}

// Query forwards a question to POST /api/query and returns the raw
// response body so the gateway can relay it verbatim.
func (c *Client) Query(ctx context.Context, question string, timeout time.Duration) ([]byte, error) {
	payload, err := json.Marshal(dto.QueryRequest{Question: question})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "marshal query payload", err)
	}

	body, err := c.do(ctx, http.MethodPost, "/api/query", bytes.NewBuffer(payload), timeout)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// Health probes GET /health and decodes the readiness payload.
func (c *Client) Health(ctx context.Context, timeout time.Duration) (*dto.RagHealthResponse, error) {
	body, err := c.do(ctx, http.MethodGet, "/health", nil, timeout)
	if err != nil {
		return nil, err
	}

	var health dto.RagHealthResponse
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "decode health payload", err)
	}
	return &health, nil
}

func (c *Client) do(ctx context.Context, method, path string, reqBody io.Reader, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "build request", err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "read response body", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, apperr.Downstream(resp.StatusCode, body)
	}
	return body, nil
}

// classifyTransportError distinguishes "took too long" from "nobody home".
func classifyTransportError(err error) *apperr.Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.Wrap(apperr.KindTimeout, "retrieval service did not respond in time", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperr.Wrap(apperr.KindTimeout, "retrieval service did not respond in time", err)
	}
	return apperr.Wrap(apperr.KindUnreachable, "retrieval service unreachable", err)
}
