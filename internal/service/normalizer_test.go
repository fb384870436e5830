package service

import (
	"encoding/json"
	"testing"

	"scheme-navigator/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRegion(t *testing.T) {
	tests := []struct {
		name        string
		eligibility []string
		region      string
		scope       string
	}{
		{"tamil nadu residency", []string{"Age 18-40", "Resident of Tamil Nadu"}, "Tamil Nadu", RegionScopeRegional},
		{"case insensitive with context", []string{"Applicant must be a permanent resident of karnataka"}, "Karnataka", RegionScopeRegional},
		{"residents plural", []string{"Residents of West Bengal only"}, "West Bengal", RegionScopeRegional},
		{"union territory", []string{"Resident of Puducherry"}, "Puducherry", RegionScopeRegional},
		{"national capital", []string{"Resident of Delhi for 3 years"}, "Delhi", RegionScopeRegional},
		{"multi-word union territory", []string{"Resident of Jammu and Kashmir"}, "Jammu and Kashmir", RegionScopeRegional},
		{"state mentioned without residency", []string{"Preference to Kerala farmers"}, "Pan India", RegionScopeNationwide},
		{"indian citizen", []string{"Indian citizen"}, "Pan India", RegionScopeNationwide},
		{"no criteria", nil, "Pan India", RegionScopeNationwide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region, scope := ClassifyRegion(tt.eligibility)
			assert.Equal(t, tt.region, region)
			assert.Equal(t, tt.scope, scope)
		})
	}
}

func TestClassifyApplicationType(t *testing.T) {
	assert.Equal(t, ApplicationTypeGroup, ClassifyApplicationType([]string{"Self Help Group members"}))
	assert.Equal(t, ApplicationTypeGroup, ClassifyApplicationType([]string{"Farmer groups of 10 or more"}))
	assert.Equal(t, ApplicationTypeIndividual, ClassifyApplicationType([]string{"Individual farmers"}))
	assert.Equal(t, ApplicationTypeIndividual, ClassifyApplicationType([]string{"Groundnut growers"}))
	assert.Equal(t, ApplicationTypeIndividual, ClassifyApplicationType(nil))
}

func TestProviderShort(t *testing.T) {
	assert.Equal(t, "GoTN", ProviderShort("Government of Tamil Nadu, Agriculture Department"))
	assert.Equal(t, "GoKA", ProviderShort("Karnataka State Women Development Corporation"))
	assert.Equal(t, "GoI", ProviderShort("Ministry of Agriculture and Farmers Welfare"))
	assert.Equal(t, "GoDL", ProviderShort("Government of NCT of Delhi"))
	assert.Equal(t, "GoPY", ProviderShort("Puducherry Adi Dravidar Development Corporation"))
	assert.Equal(t, "GoI", ProviderShort("Government of India"))
	assert.Equal(t, "GoI", ProviderShort(""))
}

func TestSchemeID(t *testing.T) {
	assert.Equal(t, "social-welfare-12", SchemeID("social welfare", 12))
	assert.Equal(t, "agriculture-0", SchemeID("Agriculture", 0))
	assert.Equal(t, "unknown-3", SchemeID("", 3))
}

func TestNormalizeScheme_Defaults(t *testing.T) {
	s := scheme(t, "healthcare", `{"scheme_name": "Bare Scheme"}`)

	view := NormalizeScheme(s, 7)

	assert.Equal(t, "healthcare-7", view.ID)
	assert.Equal(t, "Bare Scheme", view.Name)
	assert.Equal(t, "Unknown", view.Provider)
	assert.Equal(t, "GoI", view.ProviderShort)
	assert.Equal(t, "active", view.Status)
	assert.Equal(t, "2025-12-31", view.Deadline)
	assert.Equal(t, "No description available", view.Description)
	assert.Equal(t, 1000, view.Applicants)
	assert.Equal(t, 50, view.SuccessRate)
	assert.Equal(t, []string{"Healthcare"}, view.Tags)
	assert.Zero(t, view.FundingAmount)
	assert.Equal(t, "Pan India", view.Region)
	assert.Equal(t, "Pan India", view.Location)
	assert.Equal(t, RegionScopeNationwide, view.RegionScope)
	assert.Equal(t, ApplicationTypeIndividual, view.ApplicationType)
	assert.Equal(t, []string{}, view.Eligibility)
	assert.Equal(t, []string{}, view.Documents)
	assert.Equal(t, []string{}, view.ApplicationProcess)
	assert.Equal(t, []string{}, view.OfficialLinks)
	assert.Equal(t, defaultSmartTips, view.SmartTips)
	assert.Equal(t, defaultPostSubmission, view.PostSubmission)
	assert.Equal(t, defaultDosAndDonts, view.DosAndDonts)

	out, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"benefits":[]`)
}

func TestNormalizeScheme_Populated(t *testing.T) {
	s := scheme(t, "agriculture", `{
		"scheme_name": "Uzhavar Credit",
		"ministry": "Government of Tamil Nadu",
		"objectives": ["Cheap credit", "Crop insurance"],
		"eligibility_criteria": ["Resident of Tamil Nadu", "Joint liability groups"],
		"benefits": {"loan_amount": "₹50,000 to ₹1,00,000"},
		"status": "closing soon",
		"deadline": "2026-03-31",
		"applicant_count": 250,
		"success_rate": 72,
		"smart_tips": []
	}`)

	view := NormalizeScheme(s, 3)

	assert.Equal(t, "GoTN", view.ProviderShort)
	assert.Equal(t, "Government of Tamil Nadu", view.Provider)
	assert.Equal(t, "Cheap credit Crop insurance", view.Description)
	assert.Equal(t, []string{"Agriculture", "Cheap credit", "Crop insurance"}, view.Tags)
	assert.Equal(t, int64(50000), view.FundingAmount)
	assert.Equal(t, "Tamil Nadu", view.Region)
	assert.Equal(t, RegionScopeRegional, view.RegionScope)
	assert.Equal(t, ApplicationTypeGroup, view.ApplicationType)
	assert.Equal(t, "closing soon", view.Status)
	assert.Equal(t, "2026-03-31", view.Deadline)
	assert.Equal(t, 250, view.Applicants)
	assert.Equal(t, 72, view.SuccessRate)
	assert.Equal(t, []string{}, view.SmartTips, "an explicitly empty list is kept")
}

func TestNormalizeCorpus_UsesPositions(t *testing.T) {
	corpus := []models.SchemeEntity{
		scheme(t, "agriculture", `{"scheme_name": "A"}`),
		scheme(t, "agriculture", `{"scheme_name": "B"}`),
		scheme(t, "women", `{"scheme_name": "C"}`),
	}

	views := NormalizeCorpus(corpus)

	require.Len(t, views, 3)
	assert.Equal(t, "agriculture-0", views[0].ID)
	assert.Equal(t, "agriculture-1", views[1].ID)
	assert.Equal(t, "women-2", views[2].ID)
}
