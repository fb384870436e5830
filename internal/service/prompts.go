package service

import (
	"encoding/json"
	"fmt"

	"scheme-navigator/internal/models"
)

const rankingSystemInstruction = `You recommend Indian government welfare schemes. You answer with a JSON array only, without markdown or commentary.`

const answerSystemInstruction = `You are a knowledgeable assistant about government schemes.`

const noMatchMessage = "No matching scheme found in the dataset. Please try a different query or category (e.g., education, healthcare)."

// BuildRankingPrompt asks for a scored judgment of every relevant scheme in
// corpus against profile.
func BuildRankingPrompt(profile models.UserProfile, corpus []models.SchemeView) (string, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("failed to encode profile: %w", err)
	}
	corpusJSON, err := json.MarshalIndent(corpus, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode schemes: %w", err)
	}

	return fmt.Sprintf(`You are an AI assistant tasked with recommending government schemes based on a user profile and calculating a match score for each scheme. The user profile is: %s.
Here are the available schemes: %s.

For each scheme, evaluate its relevance to the user based on their profile (age, gender, state, income, interests, occupation). Assign a match score (0-100) based on how well the scheme matches the user's profile. Consider factors like:
- Eligibility criteria (e.g., state residency, income level, occupation)
- Scheme category alignment with user interests
- Funding amount suitability
- Application type (individual/group)

Return a JSON array of recommended schemes with their match scores and a brief explanation for each score. Use the exact scheme name from the list. Format:
[
  {
    "id": "scheme-id",
    "name": "scheme-name",
    "matchScore": number,
    "explanation": "reason for the score"
  }
]`, profileJSON, corpusJSON), nil
}

// BuildAnswerPrompt asks for a markdown presentation of the schemes matched
// for message.
func BuildAnswerPrompt(message string, schemes []models.SchemeEntity) (string, error) {
	schemesJSON, err := json.MarshalIndent(schemes, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode schemes: %w", err)
	}

	return fmt.Sprintf(`You are a helpful assistant for government schemes in India. The user asked: %q.

Here are relevant schemes from the dataset:
%s

Format each scheme's details in a clean, readable structure using markdown headers and emojis as follows:

## 🎓 Scheme Name: [scheme_name]

### 🎯 Objectives
- [List each objective]

### 💰 Benefits
- [List each benefit with its value, grouping tiered benefits under a bold tier name]

### ✅ Eligibility Criteria
- [List each eligibility condition]

### 📝 Application Process
1. [Step 1]
2. [Step 2]
...

### 📄 Documents Required
- [List required documents]

### 🔗 Official Links
👉 [guidelines_url]

If only one scheme is found, show it as described above.
If multiple schemes (up to 3) are found, list them under "Top 3 Relevant Schemes:" with each formatted the same.
If no schemes are found, say: %q`, message, schemesJSON, noMatchMessage), nil
}
