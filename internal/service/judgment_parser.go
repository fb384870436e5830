package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"scheme-navigator/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

const (
	defaultMatchScore = 80
	minMatchScore     = 0
	maxMatchScore     = 100
)

// judgmentSchema enforces an array of objects. Field values are read
// leniently afterwards: a field of the wrong type counts as absent.
const judgmentSchema = `{
  "type": "array",
  "items": {"type": "object"}
}`

var judgmentSchemaLoader = gojsonschema.NewStringLoader(judgmentSchema)

// ParseJudgments extracts the judgment array from collaborator output. Any
// failure is reported as ErrUnparsableCollaboratorOutput.
func ParseJudgments(output string) ([]models.Judgment, error) {
	payload, err := extractJSONArray(output)
	if err != nil {
		return nil, err
	}

	result, err := gojsonschema.Validate(judgmentSchemaLoader, gojsonschema.NewStringLoader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsableCollaboratorOutput, err)
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			problems = append(problems, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrUnparsableCollaboratorOutput, strings.Join(problems, "; "))
	}

	root, err := models.ParseValue([]byte(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsableCollaboratorOutput, err)
	}

	judgments := make([]models.Judgment, 0, len(root.Items))
	for _, item := range root.Items {
		judgments = append(judgments, models.Judgment{
			ID:          identifierText(item.Get("id")),
			Name:        rawText(item.Get("name")),
			Score:       matchScore(item.Get("matchScore")),
			Explanation: item.Get("explanation").Text(),
		})
	}
	return judgments, nil
}

// extractJSONArray strips markdown fences and cuts the text between the
// first '[' and the last ']'.
func extractJSONArray(output string) (string, error) {
	content := strings.TrimSpace(output)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("%w: no JSON array in response", ErrUnparsableCollaboratorOutput)
	}
	return content[start : end+1], nil
}

// matchScore returns nil for a missing, non-numeric or out of range score.
func matchScore(v *models.Value) *float64 {
	if v == nil {
		return nil
	}

	var raw string
	switch v.Kind {
	case models.KindNumber:
		raw = v.Num.String()
	case models.KindString:
		raw = strings.TrimSpace(v.Str)
	default:
		return nil
	}

	score, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	if math.IsNaN(score) || score < minMatchScore || score > maxMatchScore {
		return nil
	}
	return &score
}

func identifierText(v *models.Value) string {
	if v == nil {
		return ""
	}
	switch v.Kind {
	case models.KindString:
		return strings.TrimSpace(v.Str)
	case models.KindNumber:
		return v.Num.String()
	}
	return ""
}

func rawText(v *models.Value) string {
	if v == nil || v.Kind != models.KindString {
		return ""
	}
	return v.Str
}
