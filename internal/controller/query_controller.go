package controller

import (
	"github.com/gofiber/fiber/v2"

	"ums-chatbot-be/internal/dto"
	"ums-chatbot-be/internal/service"
)

// IQueryController serves the retrieval service's public API.
type IQueryController interface {
	RegisterRoutes(app fiber.Router)
	Health(ctx *fiber.Ctx) error
	Query(ctx *fiber.Ctx) error
}

type queryController struct {
	retrievalService service.IRetrievalService
}

func NewQueryController(retrievalService service.IRetrievalService) IQueryController {
	return &queryController{
		retrievalService: retrievalService,
	}
}

func (c *queryController) RegisterRoutes(app fiber.Router) {
	app.Get("/health", c.Health)
	app.Post("/api/query", c.Query)
}

func (c *queryController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(c.retrievalService.Health())
}

func (c *queryController) Query(ctx *fiber.Ctx) error {
	var req dto.QueryRequest
	// A missing or unparsable body is treated like an empty question; the
	// service answers it with a prompt rather than an error.
	_ = ctx.BodyParser(&req)

	res, err := c.retrievalService.Answer(ctx.Context(), req.Question)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
