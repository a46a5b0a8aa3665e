package controller

import (
	"github.com/gofiber/fiber/v2"

	"ai-legalaid-be/internal/pkg/serverutils"
	"ai-legalaid-be/internal/service"
)

type ICorpusController interface {
	RegisterRoutes(r fiber.Router)
	ListUnits(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type corpusController struct {
	corpusService service.ICorpusService
}

func NewCorpusController(corpusService service.ICorpusService) ICorpusController {
	return &corpusController{
		corpusService: corpusService,
	}
}

func (c *corpusController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/corpus/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("units", c.ListUnits)
}

func (c *corpusController) ListUnits(ctx *fiber.Ctx) error {
	category := ctx.Query("category")

	res, err := c.corpusService.ListUnits(ctx.Context(), category)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK, "Success list reference units", res))
}

// Health is mounted at the app root, outside the authenticated API group.
func (c *corpusController) Health(ctx *fiber.Ctx) error {
	res := c.corpusService.Health(ctx.Context())
	if !res.CorpusReady {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(res)
	}
	return ctx.JSON(res)
}
