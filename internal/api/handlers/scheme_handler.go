package handlers

import (
	"context"

	"scheme-navigator/internal/models"
	"scheme-navigator/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SchemeCatalog serves flattened and normalized scheme listings.
type SchemeCatalog interface {
	Aggregate(ctx context.Context) []models.SchemeEntity
	Category(ctx context.Context, slug string) ([]models.SchemeEntity, error)
	NormalizedAll(ctx context.Context) []models.SchemeView
	NormalizedCategory(ctx context.Context, slug string) ([]models.SchemeView, error)
}

type SchemeHandler struct {
	catalog SchemeCatalog
	logger  *zap.Logger
}

func NewSchemeHandler(catalog SchemeCatalog, logger *zap.Logger) *SchemeHandler {
	return &SchemeHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// ListAll godoc
// @Summary List schemes of all categories
// @Description Flattened schemes of all six categories in category order. Domains that cannot be read are skipped.
// @Tags schemes
// @Produce json
// @Param normalized query bool false "Return normalized display records"
// @Success 200 {array} object
// @Router /api/all [get]
func (h *SchemeHandler) ListAll(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if c.QueryBool("normalized", false) {
		return c.JSON(h.catalog.NormalizedAll(ctx))
	}
	return c.JSON(h.catalog.Aggregate(ctx))
}

// ListCategory godoc
// @Summary List schemes of one category
// @Tags schemes
// @Produce json
// @Param category path string true "agriculture, education, healthcare, social-welfare, transport or women"
// @Param normalized query bool false "Return normalized display records"
// @Success 200 {array} object
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/{category} [get]
func (h *SchemeHandler) ListCategory(c *fiber.Ctx) error {
	ctx := c.UserContext()
	slug := c.Params("category")

	if c.QueryBool("normalized", false) {
		views, err := h.catalog.NormalizedCategory(ctx, slug)
		if err != nil {
			middleware.RequestLogger(c, h.logger).Debug("Category listing rejected", zap.String("category", slug), zap.Error(err))
			return writeError(c, err)
		}
		return c.JSON(views)
	}

	schemes, err := h.catalog.Category(ctx, slug)
	if err != nil {
		middleware.RequestLogger(c, h.logger).Debug("Category listing rejected", zap.String("category", slug), zap.Error(err))
		return writeError(c, err)
	}
	return c.JSON(schemes)
}
