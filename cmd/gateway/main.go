package main

import (
	"context"
	"log"

	"ums-chatbot-be/internal/bootstrap"
	"ums-chatbot-be/internal/config"
	"ums-chatbot-be/internal/server"
	"ums-chatbot-be/internal/tracer"
)

func main() {
	// 1. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer("ums-proxy-gateway")
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()
	if cfg.Rag.BaseURL == "" {
		// Not fatal: the gateway keeps running and each query fails with
		// a configuration error until the URL is provided.
		log.Println("[WARN] RAG_SERVICE_URL is not set; /api/query will return configuration errors")
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewGatewayContainer(cfg)

	// 4. Initialize Server
	srv := server.New(cfg, container.Logger, container.GatewayController.RegisterRoutes)

	// 5. Run Server
	log.Fatal(srv.Run())
}
