package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"scheme-navigator/internal/models"
	"scheme-navigator/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DocumentWriter replaces the stored documents of a category.
type DocumentWriter interface {
	ReplaceCategory(ctx context.Context, category string, docs [][]byte) error
}

// CategoryImport reports the reload of one category.
type CategoryImport struct {
	Category  string `json:"category"`
	Documents int    `json:"documents"`
	Schemes   int    `json:"schemes"`
	Error     string `json:"error,omitempty"`
}

// ImportService reloads the document store from the dataset directory.
type ImportService struct {
	writer DocumentWriter
	logger *zap.Logger
}

func NewImportService(writer DocumentWriter, logger *zap.Logger) *ImportService {
	return &ImportService{
		writer: writer,
		logger: logger,
	}
}

// Import replaces each selected category with the contents of its dataset
// file. An empty slugs list selects every category. Categories are imported
// independently; the returned error joins the failures.
func (s *ImportService) Import(ctx context.Context, dir string, slugs []string) ([]CategoryImport, error) {
	selected, err := selectCategories(slugs)
	if err != nil {
		return nil, err
	}

	reports := make([]CategoryImport, len(selected))
	failures := make([]error, len(selected))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, desc := range selected {
		i, desc := i, desc
		eg.Go(func() error {
			reports[i], failures[i] = s.importCategory(egCtx, dir, desc)
			return nil
		})
	}
	_ = eg.Wait()

	return reports, errors.Join(failures...)
}

func (s *ImportService) importCategory(ctx context.Context, dir string, desc models.CategoryDescriptor) (CategoryImport, error) {
	log := logger.FromContext(ctx, s.logger).With(zap.String("category", desc.Slug))
	report := CategoryImport{Category: desc.Slug}

	docs, schemes, err := readDataset(filepath.Join(dir, desc.DatasetFile), desc)
	if err == nil {
		err = s.writer.ReplaceCategory(ctx, desc.Slug, docs)
	}
	if err != nil {
		err = fmt.Errorf("import %s: %w", desc.Slug, err)
		report.Error = err.Error()
		log.Error("Failed to import category", zap.Error(err))
		return report, err
	}

	report.Documents = len(docs)
	report.Schemes = schemes
	log.Info("Category imported", zap.Int("documents", len(docs)), zap.Int("schemes", schemes))
	return report, nil
}

// readDataset loads a dataset file holding either one document or an array
// of documents. Documents are returned compacted, keys in source order.
func readDataset(path string, desc models.CategoryDescriptor) ([][]byte, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read dataset: %w", err)
	}

	root, err := models.ParseValue(data)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrMalformedDocument, filepath.Base(path), err)
	}

	var values []*models.Value
	switch root.Kind {
	case models.KindObject:
		values = []*models.Value{root}
	case models.KindArray:
		values = root.Items
	default:
		return nil, 0, fmt.Errorf("%w: %s holds neither a document nor a list of documents", ErrMalformedDocument, filepath.Base(path))
	}

	docs := make([][]byte, 0, len(values))
	schemes := 0
	for i, v := range values {
		if v.Kind != models.KindObject {
			return nil, 0, fmt.Errorf("%w: %s item %d is not an object", ErrMalformedDocument, filepath.Base(path), i)
		}
		encoded, err := v.MarshalJSON()
		if err != nil {
			return nil, 0, err
		}
		if items, ok := desc.SchemeList(v); ok {
			schemes += len(items)
		}
		docs = append(docs, encoded)
	}
	return docs, schemes, nil
}

func selectCategories(slugs []string) ([]models.CategoryDescriptor, error) {
	if len(slugs) == 0 {
		return models.Categories, nil
	}
	selected := make([]models.CategoryDescriptor, 0, len(slugs))
	for _, slug := range slugs {
		desc, ok := models.CategoryBySlug(slug)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, slug)
		}
		selected = append(selected, desc)
	}
	return selected, nil
}
