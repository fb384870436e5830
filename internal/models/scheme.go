package models

import (
	"encoding/json"
	"time"
)

// RawDocument is one stored domain document, unchanged from the dataset.
type RawDocument struct {
	ID        int64     `db:"id"`
	Category  string    `db:"category"`
	Data      []byte    `db:"document"`
	CreatedAt time.Time `db:"created_at"`
}

// SchemeEntity is a single government scheme pulled out of a domain
// document. Optional fields are left zero; display defaults are applied when
// the scheme is normalized.
type SchemeEntity struct {
	SchemeName          string
	Category            string
	Ministry            string
	Description         string
	Objectives          []string
	EligibilityCriteria []string
	Benefits            *Value
	DocumentsRequired   []string
	ApplicationSteps    []string
	OfficialLinks       []string
	SmartTips           []string
	PostSubmission      []string
	DosAndDonts         []string
	Status              string
	Deadline            string
	ApplicantCount      int
	SuccessRate         int

	// Raw is the scheme record as stored.
	Raw *Value
}

// SchemeFromValue reads a scheme record. category is used when the record
// does not name its own.
func SchemeFromValue(v *Value, category string) SchemeEntity {
	s := SchemeEntity{
		SchemeName:          v.Get("scheme_name").Text(),
		Category:            v.Get("category").Text(),
		Ministry:            v.Get("ministry").Text(),
		Description:         v.Get("description").Text(),
		Objectives:          v.Get("objectives").Strings(),
		EligibilityCriteria: v.Get("eligibility_criteria").Strings(),
		Benefits:            v.Get("benefits"),
		DocumentsRequired:   v.Get("documents_required").Strings(),
		ApplicationSteps:    v.Get("application_process").Get("steps").Strings(),
		OfficialLinks:       v.Get("official_links").Get("guidelines").Strings(),
		SmartTips:           v.Get("smart_tips").Strings(),
		PostSubmission:      v.Get("post_submission").Strings(),
		DosAndDonts:         v.Get("dos_and_donts").Strings(),
		Status:              v.Get("status").Text(),
		Deadline:            v.Get("deadline").Text(),
		Raw:                 v,
	}
	if s.Category == "" {
		s.Category = category
	}
	if n, ok := v.Get("applicant_count").Int(); ok {
		s.ApplicantCount = n
	}
	if n, ok := v.Get("success_rate").Int(); ok {
		s.SuccessRate = n
	}
	return s
}

// MarshalJSON renders the stored record so listings return schemes exactly
// as they were authored.
func (s SchemeEntity) MarshalJSON() ([]byte, error) {
	if s.Raw != nil {
		return s.Raw.MarshalJSON()
	}
	return json.Marshal(map[string]interface{}{
		"scheme_name": s.SchemeName,
		"category":    s.Category,
	})
}

// UserProfile describes the person schemes are ranked for. It is built per
// request and never stored.
type UserProfile struct {
	Age        int      `json:"age"`
	Gender     string   `json:"gender"`
	State      string   `json:"state"`
	Income     float64  `json:"income"`
	Interests  []string `json:"interests"`
	Occupation string   `json:"occupation"`
}

// DefaultUserProfile is used when a ranking request carries no profile.
func DefaultUserProfile() UserProfile {
	return UserProfile{
		Age:        30,
		Gender:     "male",
		State:      "Tamil Nadu",
		Income:     500000,
		Interests:  []string{"agriculture", "education"},
		Occupation: "farmer",
	}
}
