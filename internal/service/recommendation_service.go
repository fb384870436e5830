package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"scheme-navigator/internal/metrics"
	"scheme-navigator/internal/models"
	"scheme-navigator/pkg/logger"

	"go.uber.org/zap"
)

// CorpusSource provides the aggregated scheme corpus.
type CorpusSource interface {
	Aggregate(ctx context.Context) []models.SchemeEntity
}

// RecommendationService ranks schemes against a user profile.
type RecommendationService struct {
	catalog  CorpusSource
	reasoner Reasoner
	logger   *zap.Logger
}

func NewRecommendationService(catalog CorpusSource, reasoner Reasoner, logger *zap.Logger) *RecommendationService {
	return &RecommendationService{
		catalog:  catalog,
		reasoner: reasoner,
		logger:   logger,
	}
}

// Recommend fetches the corpus and ranks it for profile.
func (s *RecommendationService) Recommend(ctx context.Context, profile models.UserProfile) ([]models.RankedRecommendation, error) {
	return s.Rank(ctx, profile, s.catalog.Aggregate(ctx))
}

// Rank asks the collaborator to judge corpus against profile and joins each
// judgment back to its scheme by exact name. Judgments naming no scheme are
// dropped. Output that cannot be parsed fails the whole ranking.
func (s *RecommendationService) Rank(ctx context.Context, profile models.UserProfile, corpus []models.SchemeEntity) ([]models.RankedRecommendation, error) {
	log := logger.FromContext(ctx, s.logger)

	if len(corpus) == 0 {
		metrics.RankingTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
		log.Info("ranking completed", zap.Int("judgments", 0), zap.Int("kept", 0), zap.Int("dropped", 0))
		return []models.RankedRecommendation{}, nil
	}

	views := NormalizeCorpus(corpus)

	output, err := s.reasoner.Evaluate(ctx, profile, views)
	if err != nil {
		metrics.RankingTotal.WithLabelValues(metrics.OutcomeFailure).Inc()
		log.Error("ranking failed", zap.Error(err))
		if errors.Is(err, ErrCollaboratorUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrCollaboratorUnavailable, err)
	}

	judgments, err := ParseJudgments(output)
	if err != nil {
		metrics.RankingTotal.WithLabelValues(metrics.OutcomeFailure).Inc()
		log.Error("ranking failed", zap.Error(err), zap.Int("output_length", len(output)))
		return nil, err
	}

	byName := make(map[string]int, len(corpus))
	for i, scheme := range corpus {
		if _, seen := byName[scheme.SchemeName]; !seen {
			byName[scheme.SchemeName] = i
		}
	}

	recommendations := make([]models.RankedRecommendation, 0, len(judgments))
	dropped := 0
	for _, j := range judgments {
		idx, ok := byName[j.Name]
		if !ok || j.Name == "" {
			dropped++
			metrics.RankingJudgmentsDropped.Inc()
			log.Debug("Dropping judgment",
				zap.Error(ErrUnknownSchemeReference),
				zap.String("name", j.Name),
			)
			continue
		}
		recommendations = append(recommendations, buildRecommendation(views[idx], j))
	}

	metrics.RankingTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	log.Info("ranking completed",
		zap.Int("judgments", len(judgments)),
		zap.Int("kept", len(recommendations)),
		zap.Int("dropped", dropped),
	)
	return recommendations, nil
}

func buildRecommendation(view models.SchemeView, j models.Judgment) models.RankedRecommendation {
	if j.ID != "" {
		view.ID = j.ID
	}

	score := defaultMatchScore
	if j.Score != nil {
		score = int(math.Round(*j.Score))
	}

	explanation := j.Explanation
	if explanation == "" {
		explanation = fmt.Sprintf("Supports %s initiatives", view.Category)
	}

	return models.RankedRecommendation{
		SchemeView:       view,
		MatchScore:       score,
		Explanation:      explanation,
		EligibilityScore: score,
		WhySuggested:     explanation,
	}
}
