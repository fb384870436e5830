package service

import (
	"fmt"

	"scheme-navigator/internal/models"
)

// FlattenDocuments extracts the scheme list of every document of one
// category, in document order. Documents whose list is missing or malformed
// contribute nothing; their errors are returned alongside for logging.
func FlattenDocuments(desc models.CategoryDescriptor, docs []models.RawDocument) ([]models.SchemeEntity, []error) {
	schemes := []models.SchemeEntity{}
	var problems []error

	for _, doc := range docs {
		root, err := models.ParseValue(doc.Data)
		if err != nil {
			problems = append(problems, fmt.Errorf("%w: document %d: %v", ErrMalformedDocument, doc.ID, err))
			continue
		}
		schemes = append(schemes, flattenValue(desc, root, doc.ID, &problems)...)
	}

	return schemes, problems
}

func flattenValue(desc models.CategoryDescriptor, root *models.Value, docID int64, problems *[]error) []models.SchemeEntity {
	items, ok := desc.SchemeList(root)
	if !ok {
		*problems = append(*problems, fmt.Errorf("%w: document %d has no %s list", ErrMalformedDocument, docID, desc.SchemesField))
		return nil
	}

	schemes := make([]models.SchemeEntity, 0, len(items))
	for _, item := range items {
		if item == nil || item.Kind != models.KindObject {
			continue
		}
		schemes = append(schemes, models.SchemeFromValue(item, desc.Name))
	}
	return schemes
}
