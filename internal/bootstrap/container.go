package bootstrap

import (
	"log"

	"ums-chatbot-be/internal/config"
	"ums-chatbot-be/internal/controller"
	"ums-chatbot-be/internal/pkg/logger"
	"ums-chatbot-be/internal/service"
	"ums-chatbot-be/pkg/embedding"
	"ums-chatbot-be/pkg/ragclient"
)

// RetrievalContainer wires the retrieval service's dependencies. The
// vector index inside RetrievalService must be built (BuildIndex) before
// the server starts accepting traffic.
type RetrievalContainer struct {
	QueryController  controller.IQueryController
	RetrievalService service.IRetrievalService
	Logger           logger.ILogger
}

func NewRetrievalContainer(cfg *config.Config) (*RetrievalContainer, error) {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Initialize Embedding Provider based on Config
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		provider, err := embedding.NewOpenAIProvider(cfg.Keys.OpenAI, cfg.Ai.OpenAIModel)
		if err != nil {
			return nil, err
		}
		embeddingProvider = provider
		log.Printf("[INFO] Using Embedding Provider: OPENAI (%s)", cfg.Ai.OpenAIModel)
	}

	retrievalService := service.NewRetrievalService(
		cfg.Ai.KnowledgeBasePath,
		cfg.Ai.TopK,
		embeddingProvider,
		sysLogger,
	)

	return &RetrievalContainer{
		QueryController:  controller.NewQueryController(retrievalService),
		RetrievalService: retrievalService,
		Logger:           sysLogger,
	}, nil
}

// GatewayContainer wires the proxy gateway. It holds no domain state;
// every request carries its own outbound call.
type GatewayContainer struct {
	GatewayController controller.IGatewayController
	Logger            logger.ILogger
}

func NewGatewayContainer(cfg *config.Config) *GatewayContainer {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	client := ragclient.NewClient(cfg.Rag.BaseURL)
	gatewayService := service.NewGatewayService(cfg.Rag, client, sysLogger)

	return &GatewayContainer{
		GatewayController: controller.NewGatewayController(gatewayService, cfg),
		Logger:            sysLogger,
	}
}
