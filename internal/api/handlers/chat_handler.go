package handlers

import (
	"context"
	"strings"

	"scheme-navigator/internal/dto"
	"scheme-navigator/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Assistant interface {
	Lookup(ctx context.Context, message string) service.MatchResult
	Respond(ctx context.Context, message string) service.ChatReply
}

type ChatHandler struct {
	assistant Assistant
	logger    *zap.Logger
}

func NewChatHandler(assistant Assistant, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		assistant: assistant,
		logger:    logger,
	}
}

// Chat godoc
// @Summary Ask the scheme assistant
// @Description Matches the message against scheme names and descriptions and answers in markdown.
// @Tags chatbot
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "User message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/chatbot [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	message, ok := parseMessage(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is required",
		})
	}

	reply := h.assistant.Respond(c.UserContext(), message)
	return c.JSON(dto.ChatResponse{
		Response:  reply.Response,
		Generated: reply.Generated,
	})
}

// Lookup godoc
// @Summary Look up schemes for a query
// @Description Returns the exact-name match, or up to three keyword matches.
// @Tags chatbot
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Query"
// @Success 200 {object} dto.LookupResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/chatbot/lookup [post]
func (h *ChatHandler) Lookup(c *fiber.Ctx) error {
	message, ok := parseMessage(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is required",
		})
	}

	result := h.assistant.Lookup(c.UserContext(), message)
	return c.JSON(dto.LookupResponse{
		Outcome: result.Outcome,
		Schemes: result.Schemes,
	})
}

func parseMessage(c *fiber.Ctx) (string, bool) {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		return "", false
	}
	return req.Message, true
}
