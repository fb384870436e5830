package service

import (
	"context"
	"fmt"

	"scheme-navigator/internal/models"
	"scheme-navigator/pkg/config"

	"go.uber.org/zap"
)

// Reasoner is the external text-generation collaborator.
type Reasoner interface {
	// Evaluate returns the raw judgment text for corpus against profile.
	Evaluate(ctx context.Context, profile models.UserProfile, corpus []models.SchemeView) (string, error)
	// Answer returns markdown describing schemes in reply to message.
	Answer(ctx context.Context, message string, schemes []models.SchemeEntity) (string, error)
	Close() error
}

// NewReasoner builds the collaborator selected by cfg.Provider.
func NewReasoner(ctx context.Context, cfg *config.ReasoningConfig, logger *zap.Logger) (Reasoner, error) {
	switch cfg.Provider {
	case config.ProviderGigaChat:
		return NewLLMService(ctx, &cfg.GigaChat, logger)
	case config.ProviderGroq:
		return NewGroqService(&cfg.Groq, cfg.Temperature, logger)
	case config.ProviderGemini:
		return NewGeminiService(ctx, &cfg.Gemini, cfg.Temperature, logger)
	}
	return nil, fmt.Errorf("unknown reasoning provider %q", cfg.Provider)
}
