package service

import (
	"fmt"
	"regexp"
	"strings"

	"scheme-navigator/internal/models"
)

const (
	RegionScopeRegional   = "regional"
	RegionScopeNationwide = "nationwide"

	ApplicationTypeGroup      = "group"
	ApplicationTypeIndividual = "individual"

	nationwideRegion      = "Pan India"
	nationalProviderShort = "GoI"

	defaultStatus         = "active"
	defaultDeadline       = "2025-12-31"
	defaultApplicants     = 1000
	defaultSuccessRate    = 50
	defaultProvider       = "Unknown"
	noDescriptionProvided = "No description available"
)

var (
	defaultSmartTips      = []string{"Ensure all documents are valid", "Apply before deadline"}
	defaultPostSubmission = []string{"Track application status online", "Contact relevant department"}
	defaultDosAndDonts    = []string{"Do: Submit complete documents", "Don't: Apply if ineligible"}
)

// state is a state or union territory.
type state struct {
	name string
	code string
}

var states = []state{
	{"Andhra Pradesh", "AP"}, {"Arunachal Pradesh", "AR"}, {"Assam", "AS"}, {"Bihar", "BR"},
	{"Chhattisgarh", "CG"}, {"Goa", "GA"}, {"Gujarat", "GJ"}, {"Haryana", "HR"},
	{"Himachal Pradesh", "HP"}, {"Jharkhand", "JH"}, {"Karnataka", "KA"}, {"Kerala", "KL"},
	{"Madhya Pradesh", "MP"}, {"Maharashtra", "MH"}, {"Manipur", "MN"}, {"Meghalaya", "ML"},
	{"Mizoram", "MZ"}, {"Nagaland", "NL"}, {"Odisha", "OD"}, {"Punjab", "PB"},
	{"Rajasthan", "RJ"}, {"Sikkim", "SK"}, {"Tamil Nadu", "TN"}, {"Telangana", "TG"},
	{"Tripura", "TR"}, {"Uttar Pradesh", "UP"}, {"Uttarakhand", "UK"}, {"West Bengal", "WB"},

	// Union territories
	{"Andaman and Nicobar Islands", "AN"}, {"Chandigarh", "CH"},
	{"Dadra and Nagar Haveli and Daman and Diu", "DN"}, {"Delhi", "DL"},
	{"Jammu and Kashmir", "JK"}, {"Ladakh", "LA"}, {"Lakshadweep", "LD"}, {"Puducherry", "PY"},
}

var (
	stateAlternation = func() string {
		names := make([]string, len(states))
		for i, s := range states {
			names[i] = regexp.QuoteMeta(s.name)
		}
		return strings.Join(names, "|")
	}()

	residencyMarker = regexp.MustCompile(`(?i)\bresidents? of\s+(?:the state of\s+)?(` + stateAlternation + `)\b`)
	stateMention    = regexp.MustCompile(`(?i)\b(` + stateAlternation + `)\b`)
	groupMarker     = regexp.MustCompile(`(?i)\bgroups?\b`)
)

func canonicalState(matched string) (state, bool) {
	for _, s := range states {
		if strings.EqualFold(s.name, matched) {
			return s, true
		}
	}
	return state{}, false
}

// ClassifyRegion returns the state a scheme is restricted to, taken from the
// first eligibility criterion carrying a residency requirement.
func ClassifyRegion(eligibility []string) (region, scope string) {
	for _, criterion := range eligibility {
		m := residencyMarker.FindStringSubmatch(criterion)
		if m == nil {
			continue
		}
		if s, ok := canonicalState(m[1]); ok {
			return s.name, RegionScopeRegional
		}
	}
	return nationwideRegion, RegionScopeNationwide
}

func ClassifyApplicationType(eligibility []string) string {
	for _, criterion := range eligibility {
		if groupMarker.MatchString(criterion) {
			return ApplicationTypeGroup
		}
	}
	return ApplicationTypeIndividual
}

// ProviderShort abbreviates a ministry name: GoTN, GoKA, ... when it names a
// state government, GoI otherwise.
func ProviderShort(provider string) string {
	if m := stateMention.FindStringSubmatch(provider); m != nil {
		if s, ok := canonicalState(m[1]); ok {
			return "Go" + s.code
		}
	}
	return nationalProviderShort
}

func BuildTags(category string, objectives []string) []string {
	tags := make([]string, 0, len(objectives)+1)
	tags = append(tags, capitalize(category))
	return append(tags, objectives...)
}

// SchemeID is the fallback identifier of the scheme at position index of
// the aggregated corpus.
func SchemeID(category string, index int) string {
	slug := strings.Join(strings.Fields(strings.ToLower(category)), "-")
	if slug == "" {
		slug = "unknown"
	}
	return fmt.Sprintf("%s-%d", slug, index)
}

// NormalizeScheme derives the display form of a scheme found at position
// index of the aggregated corpus. It reads nothing but s.
func NormalizeScheme(s models.SchemeEntity, index int) models.SchemeView {
	region, scope := ClassifyRegion(s.EligibilityCriteria)

	view := models.SchemeView{
		ID:                 SchemeID(s.Category, index),
		Name:               s.SchemeName,
		Provider:           orDefault(s.Ministry, defaultProvider),
		ProviderShort:      ProviderShort(s.Ministry),
		Category:           s.Category,
		Status:             orDefault(s.Status, defaultStatus),
		Deadline:           orDefault(s.Deadline, defaultDeadline),
		Benefits:           s.Benefits,
		Description:        noDescriptionProvided,
		Applicants:         s.ApplicantCount,
		SuccessRate:        s.SuccessRate,
		Tags:               BuildTags(s.Category, s.Objectives),
		FundingAmount:      ExtractFundingAmount(s.Benefits),
		Region:             region,
		RegionScope:        scope,
		ApplicationType:    ClassifyApplicationType(s.EligibilityCriteria),
		Location:           region,
		Eligibility:        nonNil(s.EligibilityCriteria),
		Documents:          nonNil(s.DocumentsRequired),
		ApplicationProcess: nonNil(s.ApplicationSteps),
		OfficialLinks:      nonNil(s.OfficialLinks),
		SmartTips:          orDefaultList(s.SmartTips, defaultSmartTips),
		PostSubmission:     orDefaultList(s.PostSubmission, defaultPostSubmission),
		DosAndDonts:        orDefaultList(s.DosAndDonts, defaultDosAndDonts),
	}

	if !view.Benefits.Truthy() {
		view.Benefits = models.EmptyArray()
	}
	if len(s.Objectives) > 0 {
		view.Description = strings.Join(s.Objectives, " ")
	}
	if view.Applicants == 0 {
		view.Applicants = defaultApplicants
	}
	if view.SuccessRate == 0 {
		view.SuccessRate = defaultSuccessRate
	}

	return view
}

// NormalizeCorpus normalizes every scheme, using its corpus position for
// fallback ids.
func NormalizeCorpus(schemes []models.SchemeEntity) []models.SchemeView {
	views := make([]models.SchemeView, len(schemes))
	for i, s := range schemes {
		views[i] = NormalizeScheme(s, i)
	}
	return views
}

func capitalize(s string) string {
	if s == "" {
		return "Unknown"
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// orDefaultList keeps an explicitly empty list; only a missing one is
// replaced.
func orDefaultList(v, fallback []string) []string {
	if v == nil {
		return append([]string(nil), fallback...)
	}
	return v
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
