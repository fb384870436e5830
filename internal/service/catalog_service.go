package service

import (
	"context"
	"time"

	"scheme-navigator/internal/metrics"
	"scheme-navigator/internal/models"
	"scheme-navigator/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SchemeAccessor reads the stored documents of one category.
type SchemeAccessor interface {
	FetchAll(ctx context.Context, category string) ([]models.RawDocument, error)
}

// CatalogService aggregates the six domains into one scheme corpus. Every
// call fetches fresh data; nothing is cached between requests.
type CatalogService struct {
	accessor SchemeAccessor
	logger   *zap.Logger
}

func NewCatalogService(accessor SchemeAccessor, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		accessor: accessor,
		logger:   logger,
	}
}

// Aggregate fetches all categories concurrently and concatenates their
// schemes in category order. A category that cannot be read contributes
// nothing.
func (s *CatalogService) Aggregate(ctx context.Context) []models.SchemeEntity {
	var corpus []models.SchemeEntity
	for _, slot := range s.fetchAll(ctx) {
		corpus = append(corpus, slot...)
	}
	if corpus == nil {
		corpus = []models.SchemeEntity{}
	}
	return corpus
}

// Category returns the flattened schemes of a single category.
func (s *CatalogService) Category(ctx context.Context, slug string) ([]models.SchemeEntity, error) {
	desc, ok := models.CategoryBySlug(slug)
	if !ok {
		return nil, ErrUnknownCategory
	}
	return s.fetchCategory(ctx, desc), nil
}

// NormalizedAll returns the display form of the whole corpus.
func (s *CatalogService) NormalizedAll(ctx context.Context) []models.SchemeView {
	return NormalizeCorpus(s.Aggregate(ctx))
}

// NormalizedCategory returns the display form of one category. Identifiers
// are positions in the full corpus so they agree with NormalizedAll.
func (s *CatalogService) NormalizedCategory(ctx context.Context, slug string) ([]models.SchemeView, error) {
	if _, ok := models.CategoryBySlug(slug); !ok {
		return nil, ErrUnknownCategory
	}

	slots := s.fetchAll(ctx)
	views := []models.SchemeView{}
	offset := 0
	for i, desc := range models.Categories {
		if desc.Slug == slug {
			for j, scheme := range slots[i] {
				views = append(views, NormalizeScheme(scheme, offset+j))
			}
			break
		}
		offset += len(slots[i])
	}
	return views, nil
}

// fetchAll returns one slot per category, in category order.
func (s *CatalogService) fetchAll(ctx context.Context) [][]models.SchemeEntity {
	slots := make([][]models.SchemeEntity, len(models.Categories))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, desc := range models.Categories {
		i, desc := i, desc
		eg.Go(func() error {
			slots[i] = s.fetchCategory(egCtx, desc)
			return nil
		})
	}
	_ = eg.Wait()

	return slots
}

func (s *CatalogService) fetchCategory(ctx context.Context, desc models.CategoryDescriptor) []models.SchemeEntity {
	log := logger.FromContext(ctx, s.logger).With(zap.String("category", desc.Slug))
	start := time.Now()

	docs, err := s.accessor.FetchAll(ctx, desc.Slug)
	elapsed := time.Since(start)
	metrics.DomainFetchDuration.WithLabelValues(desc.Slug).Observe(elapsed.Seconds())
	if err != nil {
		metrics.DomainFetchTotal.WithLabelValues(desc.Slug, metrics.OutcomeFailure).Inc()
		log.Warn("domain fetch failed",
			zap.Error(err),
			zap.Duration("duration", elapsed),
		)
		return []models.SchemeEntity{}
	}

	schemes, problems := FlattenDocuments(desc, docs)
	for _, p := range problems {
		log.Warn("Skipping malformed document", zap.Error(p))
	}

	metrics.DomainFetchTotal.WithLabelValues(desc.Slug, metrics.OutcomeSuccess).Inc()
	log.Info("domain fetch completed",
		zap.Int("documents", len(docs)),
		zap.Int("schemes", len(schemes)),
		zap.Duration("duration", elapsed),
	)
	return schemes
}
