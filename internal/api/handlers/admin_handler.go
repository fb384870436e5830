package handlers

import (
	"context"

	"scheme-navigator/internal/dto"
	"scheme-navigator/internal/service"
	"scheme-navigator/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Importer interface {
	Import(ctx context.Context, dir string, slugs []string) ([]service.CategoryImport, error)
}

type AdminHandler struct {
	importer   Importer
	datasetDir string
	logger     *zap.Logger
}

func NewAdminHandler(importer Importer, datasetDir string, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		importer:   importer,
		datasetDir: datasetDir,
		logger:     logger,
	}
}

// Reload godoc
// @Summary Reload the dataset
// @Description Replaces the stored documents of the selected categories (all when none are given) with the dataset files.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.ReloadRequest false "Categories to reload"
// @Security Bearer
// @Success 200 {object} dto.ReloadResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ReloadResponse
// @Router /api/v1/admin/reload [post]
func (h *AdminHandler) Reload(c *fiber.Ctx) error {
	var req dto.ReloadRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	log := middleware.RequestLogger(c, h.logger)
	reports, err := h.importer.Import(c.UserContext(), h.datasetDir, req.Categories)
	if reports == nil && err != nil {
		log.Warn("Dataset reload rejected", zap.Error(err))
		return writeError(c, err)
	}

	resp := dto.ReloadResponse{Categories: make([]dto.CategoryImportResponse, 0, len(reports))}
	for _, r := range reports {
		resp.Categories = append(resp.Categories, dto.CategoryImportResponse{
			Category:  r.Category,
			Documents: r.Documents,
			Schemes:   r.Schemes,
			Error:     r.Error,
		})
	}

	if err != nil {
		log.Error("Dataset reload finished with failures", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}

	log.Info("Dataset reloaded", zap.Int("categories", len(reports)))
	return c.JSON(resp)
}
