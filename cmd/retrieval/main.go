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
	shutdownTracer := tracer.InitTracer("ums-retrieval-service")
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewRetrievalContainer(cfg)
	if err != nil {
		log.Fatalf("[FATAL] Failed to bootstrap retrieval service: %v", err)
	}

	// 4. Build the vector index before accepting traffic. Fail fast: a
	// missing knowledge base or a failed embedding run aborts the process.
	if err := container.RetrievalService.BuildIndex(context.Background()); err != nil {
		log.Fatalf("[FATAL] Index build failed: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container.Logger, container.QueryController.RegisterRoutes)

	// 6. Run Server
	log.Fatal(srv.Run())
}
