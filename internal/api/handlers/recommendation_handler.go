package handlers

import (
	"context"

	"scheme-navigator/internal/dto"
	"scheme-navigator/internal/models"
	"scheme-navigator/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Recommender interface {
	Recommend(ctx context.Context, profile models.UserProfile) ([]models.RankedRecommendation, error)
}

type RecommendationHandler struct {
	recommender Recommender
	logger      *zap.Logger
}

func NewRecommendationHandler(recommender Recommender, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recommender: recommender,
		logger:      logger,
	}
}

// Recommend godoc
// @Summary Rank schemes for a user profile
// @Description Scores every scheme against the profile. Without a profile a default farmer profile is used.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body dto.RecommendRequest false "User profile"
// @Success 200 {array} models.RankedRecommendation
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/recommend [post]
func (h *RecommendationHandler) Recommend(c *fiber.Ctx) error {
	var req dto.RecommendRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	profile := models.DefaultUserProfile()
	if req.UserProfile != nil {
		profile = *req.UserProfile
	}

	recommendations, err := h.recommender.Recommend(c.UserContext(), profile)
	if err != nil {
		middleware.RequestLogger(c, h.logger).Error("Failed to generate recommendations", zap.Error(err))
		return writeError(c, err)
	}

	return c.JSON(recommendations)
}
