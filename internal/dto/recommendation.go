package dto

import "scheme-navigator/internal/models"

type RecommendRequest struct {
	UserProfile *models.UserProfile `json:"userProfile"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	Generated bool   `json:"generated"`
}

type LookupResponse struct {
	Outcome string                `json:"outcome"`
	Schemes []models.SchemeEntity `json:"schemes"`
}

type ReloadRequest struct {
	Categories []string `json:"categories"`
}

type ReloadResponse struct {
	Categories []CategoryImportResponse `json:"categories"`
}

type CategoryImportResponse struct {
	Category  string `json:"category"`
	Documents int    `json:"documents"`
	Schemes   int    `json:"schemes"`
	Error     string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
