package service

import (
	"context"
	"strings"
	"time"

	"ums-chatbot-be/internal/config"
	"ums-chatbot-be/internal/dto"
	"ums-chatbot-be/internal/pkg/apperr"
	"ums-chatbot-be/internal/pkg/logger"
)

// RagCaller is what the gateway needs from the retrieval client. Satisfied
// by ragclient.Client; swapped for a fake in tests.
type RagCaller interface {
	Query(ctx context.Context, question string, timeout time.Duration) ([]byte, error)
	Health(ctx context.Context, timeout time.Duration) (*dto.RagHealthResponse, error)
}

type IGatewayService interface {
	Query(ctx context.Context, question string) ([]byte, error)
	RagHealth(ctx context.Context) (*dto.RagProxyHealthResponse, error)
}

type gatewayService struct {
	ragCfg config.RagConfig
	client RagCaller
	log    logger.ILogger
}

func NewGatewayService(ragCfg config.RagConfig, client RagCaller, log logger.ILogger) IGatewayService {
	return &gatewayService{
		ragCfg: ragCfg,
		client: client,
		log:    log,
	}
}

// Query validates the question and forwards it to the retrieval service,
// returning the downstream body verbatim on success. No retries: a failed
// forward surfaces immediately as a tagged error.
func (s *gatewayService) Query(ctx context.Context, question string) ([]byte, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, apperr.New(apperr.KindValidation, "question must not be empty")
	}

	if s.ragCfg.BaseURL == "" {
		// Misconfiguration is logged with detail; the client only ever
		// sees the generic apology.
		return nil, apperr.New(apperr.KindConfiguration, "RAG_SERVICE_URL is not configured")
	}

	body, err := s.client.Query(ctx, question, s.ragCfg.QueryTimeout)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// RagHealth relays the retrieval service's readiness with a short timeout.
func (s *gatewayService) RagHealth(ctx context.Context) (*dto.RagProxyHealthResponse, error) {
	if s.ragCfg.BaseURL == "" {
		return nil, apperr.New(apperr.KindConfiguration, "RAG_SERVICE_URL is not configured")
	}

	health, err := s.client.Health(ctx, s.ragCfg.HealthTimeout)
	if err != nil {
		s.log.Warn("gateway", "rag health probe failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	return &dto.RagProxyHealthResponse{
		Status:      "connected",
		RagResponse: health,
	}, nil
}
