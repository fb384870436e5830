package service

import (
	"context"

	"scheme-navigator/internal/metrics"
	"scheme-navigator/internal/models"
	"scheme-navigator/pkg/logger"

	"go.uber.org/zap"
)

// ChatReply is the assistant's answer to one message.
type ChatReply struct {
	Response string
	Schemes  []models.SchemeEntity
	// Generated is false when the collaborator could not be used and the
	// response was rendered locally.
	Generated bool
}

type ChatService struct {
	catalog  CorpusSource
	reasoner Reasoner
	logger   *zap.Logger
}

func NewChatService(catalog CorpusSource, reasoner Reasoner, logger *zap.Logger) *ChatService {
	return &ChatService{
		catalog:  catalog,
		reasoner: reasoner,
		logger:   logger,
	}
}

// Lookup matches message against a freshly aggregated corpus. It never
// fails; no match is an empty result.
func (s *ChatService) Lookup(ctx context.Context, message string) MatchResult {
	result := MatchQuery(message, s.catalog.Aggregate(ctx))

	metrics.QueryLookupTotal.WithLabelValues(result.Outcome).Inc()
	logger.FromContext(ctx, s.logger).Info("query lookup completed",
		zap.String("outcome", result.Outcome),
		zap.Int("results", len(result.Schemes)),
	)
	return result
}

// Respond looks up message and asks the collaborator to present the
// matches. When the collaborator fails the matches are rendered locally.
func (s *ChatService) Respond(ctx context.Context, message string) ChatReply {
	result := s.Lookup(ctx, message)

	if s.reasoner != nil {
		answer, err := s.reasoner.Answer(ctx, message, result.Schemes)
		if err == nil && answer != "" {
			return ChatReply{Response: answer, Schemes: result.Schemes, Generated: true}
		}
		logger.FromContext(ctx, s.logger).Warn("Collaborator answer unavailable, rendering locally", zap.Error(err))
	}

	return ChatReply{
		Response: RenderSchemesMarkdown(result.Schemes),
		Schemes:  result.Schemes,
	}
}
