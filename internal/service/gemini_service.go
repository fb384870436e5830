package service

import (
	"context"
	"fmt"
	"strings"

	"scheme-navigator/internal/models"
	"scheme-navigator/pkg/config"
	"scheme-navigator/pkg/logger"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type GeminiService struct {
	client      *genai.Client
	model       string
	temperature float32
	logger      *zap.Logger
}

func NewGeminiService(ctx context.Context, cfg *config.GeminiConfig, temperature float64, logger *zap.Logger) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Info("Using Gemini reasoning collaborator", zap.String("model", cfg.Model))

	return &GeminiService{
		client:      client,
		model:       cfg.Model,
		temperature: float32(temperature),
		logger:      logger,
	}, nil
}

func (s *GeminiService) Evaluate(ctx context.Context, profile models.UserProfile, corpus []models.SchemeView) (string, error) {
	prompt, err := BuildRankingPrompt(profile, corpus)
	if err != nil {
		return "", err
	}
	return s.generate(ctx, rankingSystemInstruction, prompt)
}

func (s *GeminiService) Answer(ctx context.Context, message string, schemes []models.SchemeEntity) (string, error) {
	prompt, err := BuildAnswerPrompt(message, schemes)
	if err != nil {
		return "", err
	}
	return s.generate(ctx, answerSystemInstruction, prompt)
}

func (s *GeminiService) generate(ctx context.Context, system, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(sanitizeUTF8(prompt), genai.RoleUser),
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr(s.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", ErrCollaboratorUnavailable, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: gemini returned no text", ErrCollaboratorUnavailable)
	}
	logger.FromContext(ctx, s.logger).Debug("Gemini response received", zap.Int("length", len(text)))
	return text, nil
}

func (s *GeminiService) Close() error {
	return nil
}
