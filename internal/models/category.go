package models

// CategoryDescriptor configures the generic domain accessor for one welfare
// domain: where its schemes live inside a stored document and which dataset
// file seeds it.
type CategoryDescriptor struct {
	Name         string // display name, also the default scheme category
	Slug         string // storage key and URL segment
	SchemesField string
	FieldAliases []string
	DatasetFile  string
}

// Categories lists the six domains in aggregation order. Index-based scheme
// identifiers depend on this order.
var Categories = []CategoryDescriptor{
	{Name: "agriculture", Slug: "agriculture", SchemesField: "agriculture_schemes", DatasetFile: "agriculture.json"},
	{Name: "education", Slug: "education", SchemesField: "education_schemes", DatasetFile: "education.json"},
	{Name: "healthcare", Slug: "healthcare", SchemesField: "healthcare_schemes", DatasetFile: "healthcare.json"},
	{Name: "social welfare", Slug: "social-welfare", SchemesField: "social_welfare_schemes", DatasetFile: "socialwelfare.json"},
	{
		Name:         "transport",
		Slug:         "transport",
		SchemesField: "transport_and_infrastructure_schemes",
		FieldAliases: []string{"transport_schemes"},
		DatasetFile:  "transport.json",
	},
	{Name: "women", Slug: "women", SchemesField: "women_schemes", DatasetFile: "women.json"},
}

// CategoryBySlug looks up a descriptor by its slug.
func CategoryBySlug(slug string) (CategoryDescriptor, bool) {
	for _, c := range Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return CategoryDescriptor{}, false
}

// SchemeList returns the nested scheme list of a stored document, consulting
// aliases only when the primary field is missing. ok is false when no field
// holds an array.
func (c CategoryDescriptor) SchemeList(doc *Value) (items []*Value, ok bool) {
	fields := append([]string{c.SchemesField}, c.FieldAliases...)
	for _, name := range fields {
		v := doc.Get(name)
		if v == nil {
			continue
		}
		if v.Kind != KindArray {
			return nil, false
		}
		return v.Items, true
	}
	return nil, false
}
