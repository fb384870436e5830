package models

// SchemeView is the normalized display form of a scheme.
type SchemeView struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Provider           string   `json:"provider"`
	ProviderShort      string   `json:"providerShort"`
	Category           string   `json:"category"`
	Status             string   `json:"status"`
	Deadline           string   `json:"deadline"`
	Benefits           *Value   `json:"benefits"`
	Description        string   `json:"description"`
	Applicants         int      `json:"applicants"`
	SuccessRate        int      `json:"successRate"`
	Tags               []string `json:"tags"`
	FundingAmount      int64    `json:"fundingAmount"`
	Region             string   `json:"region"`
	RegionScope        string   `json:"regionScope"`
	ApplicationType    string   `json:"applicationType"`
	Location           string   `json:"location"`
	Eligibility        []string `json:"eligibility"`
	Documents          []string `json:"documents"`
	ApplicationProcess []string `json:"applicationProcess"`
	OfficialLinks      []string `json:"officialLinks"`
	SmartTips          []string `json:"smartTips"`
	PostSubmission     []string `json:"postSubmission"`
	DosAndDonts        []string `json:"dosAndDonts"`
}

// RankedRecommendation is a scheme judged against a user profile.
// EligibilityScore and WhySuggested mirror MatchScore and Explanation under
// the names the web client reads.
type RankedRecommendation struct {
	SchemeView
	MatchScore       int    `json:"matchScore"`
	Explanation      string `json:"explanation"`
	EligibilityScore int    `json:"eligibilityScore"`
	WhySuggested     string `json:"whySuggested"`
}

// Judgment is one verdict returned by the reasoning collaborator.
type Judgment struct {
	ID          string
	Name        string
	Score       *float64
	Explanation string
}
