package service

import (
	"context"
	"fmt"
	"strings"

	"scheme-navigator/internal/models"
	"scheme-navigator/pkg/config"
	"scheme-navigator/pkg/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

const (
	groqRankingMaxTokens = 4096
	groqAnswerMaxTokens  = 1000
)

// GroqService talks to Groq through its OpenAI-compatible API.
type GroqService struct {
	client      llms.Model
	temperature float64
	logger      *zap.Logger
}

func NewGroqService(cfg *config.GroqConfig, temperature float64, logger *zap.Logger) (*GroqService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Groq API key is required")
	}

	client, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Groq client: %w", err)
	}

	logger.Info("Using Groq reasoning collaborator", zap.String("model", cfg.Model))

	return &GroqService{
		client:      client,
		temperature: temperature,
		logger:      logger,
	}, nil
}

func (s *GroqService) Evaluate(ctx context.Context, profile models.UserProfile, corpus []models.SchemeView) (string, error) {
	prompt, err := BuildRankingPrompt(profile, corpus)
	if err != nil {
		return "", err
	}
	return s.generate(ctx, rankingSystemInstruction, prompt, groqRankingMaxTokens)
}

func (s *GroqService) Answer(ctx context.Context, message string, schemes []models.SchemeEntity) (string, error) {
	prompt, err := BuildAnswerPrompt(message, schemes)
	if err != nil {
		return "", err
	}
	return s.generate(ctx, answerSystemInstruction, prompt, groqAnswerMaxTokens)
}

func (s *GroqService) generate(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(system)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(sanitizeUTF8(prompt))},
		},
	}

	resp, err := s.client.GenerateContent(ctx, content,
		llms.WithTemperature(s.temperature),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("%w: groq: %v", ErrCollaboratorUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: groq returned no choices", ErrCollaboratorUnavailable)
	}

	text := strings.TrimSpace(resp.Choices[0].Content)
	logger.FromContext(ctx, s.logger).Debug("Groq response received", zap.Int("length", len(text)))
	return text, nil
}

func (s *GroqService) Close() error {
	return nil
}
