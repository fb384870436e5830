package service

import (
	"context"
	"testing"

	"scheme-navigator/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fullAccessor() *fakeAccessor {
	return newFakeAccessor().
		with("agriculture", `{"agriculture_schemes": [{"scheme_name": "PM Kisan"}, {"scheme_name": "Soil Health Card"}]}`).
		with("education", `{"education_schemes": [{"scheme_name": "Post Matric Scholarship"}]}`).
		with("healthcare", `{"healthcare_schemes": [{"scheme_name": "Ayushman Bharat"}]}`).
		with("social-welfare", `{"social_welfare_schemes": [{"scheme_name": "Old Age Pension"}]}`).
		with("transport", `{"transport_and_infrastructure_schemes": [{"scheme_name": "Bus Pass"}]}`).
		with("women", `{"women_schemes": [{"scheme_name": "Mahila Samman"}, {"scheme_name": "Ujjwala"}]}`)
}

func TestCatalogService_AggregateKeepsCategoryOrder(t *testing.T) {
	svc := NewCatalogService(fullAccessor(), zaptest.NewLogger(t))

	corpus := svc.Aggregate(context.Background())

	assert.Equal(t, []string{
		"PM Kisan", "Soil Health Card",
		"Post Matric Scholarship",
		"Ayushman Bharat",
		"Old Age Pension",
		"Bus Pass",
		"Mahila Samman", "Ujjwala",
	}, names(corpus))
	assert.Equal(t, "social welfare", corpus[4].Category)
}

func TestCatalogService_AggregateIsStable(t *testing.T) {
	svc := NewCatalogService(fullAccessor(), zaptest.NewLogger(t))

	first := svc.Aggregate(context.Background())
	second := svc.Aggregate(context.Background())
	assert.Equal(t, names(first), names(second))
}

func TestCatalogService_FailingDomainContributesNothing(t *testing.T) {
	accessor := fullAccessor().failing("healthcare", repository.ErrStorageUnavailable)
	svc := NewCatalogService(accessor, zaptest.NewLogger(t))

	corpus := svc.Aggregate(context.Background())

	assert.NotContains(t, names(corpus), "Ayushman Bharat")
	assert.Len(t, corpus, 7)
	assert.Equal(t, 1, accessor.calls["healthcare"])
}

func TestCatalogService_AllDomainsFailing(t *testing.T) {
	accessor := newFakeAccessor()
	for _, slug := range []string{"agriculture", "education", "healthcare", "social-welfare", "transport", "women"} {
		accessor.failing(slug, repository.ErrStorageUnavailable)
	}
	svc := NewCatalogService(accessor, zaptest.NewLogger(t))

	corpus := svc.Aggregate(context.Background())
	assert.NotNil(t, corpus)
	assert.Empty(t, corpus)
}

func TestCatalogService_MalformedDocumentIsSkipped(t *testing.T) {
	accessor := newFakeAccessor().
		with("education",
			`{"education_schemes": "not a list"}`,
			`{"education_schemes": [{"scheme_name": "Post Matric Scholarship"}]}`,
			`{broken`,
		)
	svc := NewCatalogService(accessor, zaptest.NewLogger(t))

	schemes, err := svc.Category(context.Background(), "education")
	require.NoError(t, err)
	assert.Equal(t, []string{"Post Matric Scholarship"}, names(schemes))
}

func TestCatalogService_TransportAlias(t *testing.T) {
	accessor := newFakeAccessor().
		with("transport",
			`{"transport_schemes": [{"scheme_name": "Metro Card"}]}`,
			`{"transport_and_infrastructure_schemes": [{"scheme_name": "Bus Pass"}], "transport_schemes": [{"scheme_name": "Ignored"}]}`,
		)
	svc := NewCatalogService(accessor, zaptest.NewLogger(t))

	schemes, err := svc.Category(context.Background(), "transport")
	require.NoError(t, err)
	assert.Equal(t, []string{"Metro Card", "Bus Pass"}, names(schemes))
}

func TestCatalogService_UnknownCategory(t *testing.T) {
	svc := NewCatalogService(fullAccessor(), zaptest.NewLogger(t))

	_, err := svc.Category(context.Background(), "space")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = svc.NormalizedCategory(context.Background(), "space")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCatalogService_NormalizedCategoryUsesCorpusPositions(t *testing.T) {
	svc := NewCatalogService(fullAccessor(), zaptest.NewLogger(t))
	ctx := context.Background()

	all := svc.NormalizedAll(ctx)
	require.Len(t, all, 8)

	women, err := svc.NormalizedCategory(ctx, "women")
	require.NoError(t, err)
	require.Len(t, women, 2)
	assert.Equal(t, all[6], women[0])
	assert.Equal(t, all[7], women[1])
	assert.Equal(t, "women-6", women[0].ID)
}

func TestCatalogService_CancelledContext(t *testing.T) {
	svc := NewCatalogService(fullAccessor(), zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Empty(t, svc.Aggregate(ctx))
}
