package service

import (
	"context"
	"sync"
	"testing"

	"scheme-navigator/internal/models"

	"github.com/stretchr/testify/require"
)

type fakeAccessor struct {
	mu    sync.Mutex
	docs  map[string][]string
	errs  map[string]error
	calls map[string]int
}

func newFakeAccessor() *fakeAccessor {
	return &fakeAccessor{
		docs:  map[string][]string{},
		errs:  map[string]error{},
		calls: map[string]int{},
	}
}

func (f *fakeAccessor) with(category string, docs ...string) *fakeAccessor {
	f.docs[category] = append(f.docs[category], docs...)
	return f
}

func (f *fakeAccessor) failing(category string, err error) *fakeAccessor {
	f.errs[category] = err
	return f
}

func (f *fakeAccessor) FetchAll(ctx context.Context, category string) ([]models.RawDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[category]++
	if err := f.errs[category]; err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]models.RawDocument, 0, len(f.docs[category]))
	for i, d := range f.docs[category] {
		out = append(out, models.RawDocument{ID: int64(i + 1), Category: category, Data: []byte(d)})
	}
	return out, nil
}

type fakeReasoner struct {
	evaluateOutput string
	evaluateErr    error
	answerOutput   string
	answerErr      error

	evaluateCalls int
	lastCorpus    []models.SchemeView
	lastProfile   models.UserProfile
	answerCalls   int
	lastSchemes   []models.SchemeEntity
}

func (f *fakeReasoner) Evaluate(_ context.Context, profile models.UserProfile, corpus []models.SchemeView) (string, error) {
	f.evaluateCalls++
	f.lastProfile = profile
	f.lastCorpus = corpus
	return f.evaluateOutput, f.evaluateErr
}

func (f *fakeReasoner) Answer(_ context.Context, _ string, schemes []models.SchemeEntity) (string, error) {
	f.answerCalls++
	f.lastSchemes = schemes
	return f.answerOutput, f.answerErr
}

func (f *fakeReasoner) Close() error {
	return nil
}

type staticCorpus []models.SchemeEntity

func (s staticCorpus) Aggregate(context.Context) []models.SchemeEntity {
	return s
}

// scheme builds an entity from a JSON record.
func scheme(t *testing.T, category, record string) models.SchemeEntity {
	t.Helper()
	v, err := models.ParseValue([]byte(record))
	require.NoError(t, err)
	return models.SchemeFromValue(v, category)
}

func value(t *testing.T, src string) *models.Value {
	t.Helper()
	v, err := models.ParseValue([]byte(src))
	require.NoError(t, err)
	return v
}
