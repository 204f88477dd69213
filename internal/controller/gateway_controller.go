package controller

import (
	"github.com/gofiber/fiber/v2"

	"ums-chatbot-be/internal/config"
	"ums-chatbot-be/internal/dto"
	"ums-chatbot-be/internal/pkg/apperr"
	"ums-chatbot-be/internal/pkg/serverutils"
	"ums-chatbot-be/internal/service"
)

// IGatewayController is the stateless HTTP front door: it owns no domain
// data and only relays to the retrieval service.
type IGatewayController interface {
	RegisterRoutes(app fiber.Router)
	Banner(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
	RagHealth(ctx *fiber.Ctx) error
	Query(ctx *fiber.Ctx) error
}

type gatewayController struct {
	gatewayService service.IGatewayService
	cfg            *config.Config
}

func NewGatewayController(gatewayService service.IGatewayService, cfg *config.Config) IGatewayController {
	return &gatewayController{
		gatewayService: gatewayService,
		cfg:            cfg,
	}
}

func (c *gatewayController) RegisterRoutes(app fiber.Router) {
	app.Get("/", c.Banner)
	app.Get("/health", c.Health)
	app.Get("/api/rag-health", c.RagHealth)
	app.Post("/api/query", c.Query)
}

func (c *gatewayController) Banner(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("UMS Chatbot Proxy Gateway is running", []string{
		"GET  /health",
		"GET  /api/rag-health",
		"POST /api/query",
	}))
}

// Health is local-only: it reports the configured retrieval URL but never
// contacts the retrieval service.
func (c *gatewayController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.GatewayHealthResponse{
		Status:      "Gateway is running",
		RagURL:      c.cfg.Rag.BaseURL,
		Environment: c.cfg.App.Environment,
	})
}

// RagHealth forwards a probe to the retrieval service. Any failure,
// timeout included, is reported as 503 unavailable here.
func (c *gatewayController) RagHealth(ctx *fiber.Ctx) error {
	res, err := c.gatewayService.RagHealth(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(
			serverutils.ErrorResponse(fiber.StatusServiceUnavailable, "RAG service unavailable"),
		)
	}
	return ctx.JSON(res)
}

func (c *gatewayController) Query(ctx *fiber.Ctx) error {
	var req dto.QueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.Wrap(apperr.KindValidation, "invalid request body", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	body, err := c.gatewayService.Query(ctx.Context(), req.Question)
	if err != nil {
		return err
	}

	// Relay the retrieval service's response verbatim.
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(body)
}
