package controller_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ums-chatbot-be/internal/config"
	"ums-chatbot-be/internal/controller"
	"ums-chatbot-be/internal/dto"
	"ums-chatbot-be/internal/pkg/apperr"
	"ums-chatbot-be/internal/pkg/logger"
	"ums-chatbot-be/internal/server"
	"ums-chatbot-be/internal/service"
	"ums-chatbot-be/pkg/vectorstore"
)

type fakeRetrievalService struct {
	ready  bool
	answer string
	err    error
	docs   int
}

func (f *fakeRetrievalService) BuildIndex(ctx context.Context) error {
	f.ready = true
	return nil
}

func (f *fakeRetrievalService) Search(ctx context.Context, question string, k int) ([]vectorstore.ScoredChunk, error) {
	return nil, nil
}

func (f *fakeRetrievalService) Answer(ctx context.Context, question string) (*dto.QueryResponse, error) {
	if strings.TrimSpace(question) == "" {
		return &dto.QueryResponse{Answer: service.AnswerNoQuestion}, nil
	}
	if !f.ready {
		return nil, apperr.New(apperr.KindNotReady, "vector store is not ready")
	}
	if f.err != nil {
		return nil, f.err
	}
	return &dto.QueryResponse{Answer: f.answer}, nil
}

func (f *fakeRetrievalService) Health() *dto.RagHealthResponse {
	return &dto.RagHealthResponse{
		Status:           "UMS retrieval service is running",
		VectorstoreReady: f.ready,
		TotalDocuments:   f.docs,
	}
}

func retrievalApp(t *testing.T, svc service.IRetrievalService) *fiber.App {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.Environment = "development"
	cfg.App.CorsAllowedOrigins = "*"

	ctrl := controller.NewQueryController(svc)
	return server.New(cfg, logger.NewNopLogger(), ctrl.RegisterRoutes).GetApp()
}

func TestRetrievalHealthReportsReadiness(t *testing.T) {
	app := retrievalApp(t, &fakeRetrievalService{ready: true, docs: 19})

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var health dto.RagHealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.True(t, health.VectorstoreReady)
	assert.Equal(t, 19, health.TotalDocuments)
}

func TestRetrievalQueryReturnsAnswer(t *testing.T) {
	app := retrievalApp(t, &fakeRetrievalService{
		ready:  true,
		answer: "Login -> UmsHome -> Change Password -> Change UMS Password",
	})

	req := httptest.NewRequest("POST", "/api/query", strings.NewReader(`{"question":"How to change password?"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":"Login -> UmsHome -> Change Password -> Change UMS Password"}`, string(body))
}

func TestRetrievalQueryBeforeReadyIs503(t *testing.T) {
	app := retrievalApp(t, &fakeRetrievalService{ready: false})

	req := httptest.NewRequest("POST", "/api/query", strings.NewReader(`{"question":"How to change password?"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestRetrievalQueryEmptyBodyIs200Prompt(t *testing.T) {
	app := retrievalApp(t, &fakeRetrievalService{ready: true})

	req := httptest.NewRequest("POST", "/api/query", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), service.AnswerNoQuestion)
}

func TestRetrievalQueryInternalErrorIs500(t *testing.T) {
	app := retrievalApp(t, &fakeRetrievalService{
		ready: true,
		err:   apperr.New(apperr.KindInternal, "embedding question failed"),
	})

	req := httptest.NewRequest("POST", "/api/query", strings.NewReader(`{"question":"q"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
