package service

import (
	"strings"

	"scheme-navigator/internal/models"
)

const maxFallbackMatches = 3

const (
	MatchExact    = "exact"
	MatchFallback = "fallback"
	MatchNone     = "none"
)

// MatchResult is the outcome of a query lookup.
type MatchResult struct {
	Schemes []models.SchemeEntity
	Outcome string
}

// MatchQuery selects schemes for a free-text query. A scheme whose name
// equals or contains the query is returned alone. Otherwise up to three
// schemes whose name or description contains any query word are returned in
// corpus order.
func MatchQuery(query string, corpus []models.SchemeEntity) MatchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return MatchResult{Schemes: []models.SchemeEntity{}, Outcome: MatchNone}
	}

	for _, s := range corpus {
		name := strings.ToLower(s.SchemeName)
		if name == "" {
			continue
		}
		if name == query || strings.Contains(name, query) {
			return MatchResult{Schemes: []models.SchemeEntity{s}, Outcome: MatchExact}
		}
	}

	keywords := strings.Fields(query)
	matches := make([]models.SchemeEntity, 0, maxFallbackMatches)
	for _, s := range corpus {
		if len(matches) == maxFallbackMatches {
			break
		}
		if containsAny(strings.ToLower(s.SchemeName), keywords) ||
			containsAny(strings.ToLower(s.Description), keywords) {
			matches = append(matches, s)
		}
	}

	if len(matches) == 0 {
		return MatchResult{Schemes: matches, Outcome: MatchNone}
	}
	return MatchResult{Schemes: matches, Outcome: MatchFallback}
}

func containsAny(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
