package service

import (
	"context"
	"fmt"
	"strings"

	"scheme-navigator/internal/models"
	"scheme-navigator/pkg/config"
	"scheme-navigator/pkg/logger"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// LLMService is the GigaChat collaborator.
type LLMService struct {
	client      *gigago.Client
	rankModel   *gigago.GenerativeModel
	answerModel *gigago.GenerativeModel
	logger      *zap.Logger
}

func NewLLMService(ctx context.Context, cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GigaChat API key is required")
	}

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = "GigaChat"
	}

	rankModel := client.GenerativeModel(modelName)
	rankModel.SystemInstruction = rankingSystemInstruction
	rankModel.Temperature = 0.3

	answerModel := client.GenerativeModel(modelName)
	answerModel.SystemInstruction = answerSystemInstruction
	answerModel.Temperature = 0.7

	logger.Info("Using GigaChat reasoning collaborator", zap.String("model", modelName))

	return &LLMService{
		client:      client,
		rankModel:   rankModel,
		answerModel: answerModel,
		logger:      logger,
	}, nil
}

func (s *LLMService) Evaluate(ctx context.Context, profile models.UserProfile, corpus []models.SchemeView) (string, error) {
	prompt, err := BuildRankingPrompt(profile, corpus)
	if err != nil {
		return "", err
	}
	return s.generate(ctx, s.rankModel, prompt)
}

func (s *LLMService) Answer(ctx context.Context, message string, schemes []models.SchemeEntity) (string, error) {
	prompt, err := BuildAnswerPrompt(message, schemes)
	if err != nil {
		return "", err
	}
	return s.generate(ctx, s.answerModel, prompt)
}

func (s *LLMService) generate(ctx context.Context, model *gigago.GenerativeModel, prompt string) (string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: sanitizeUTF8(prompt)},
	}

	resp, err := model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("%w: gigachat: %v", ErrCollaboratorUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: gigachat returned no choices", ErrCollaboratorUnavailable)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	logger.FromContext(ctx, s.logger).Debug("GigaChat response received", zap.Int("length", len(content)))
	return content, nil
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
