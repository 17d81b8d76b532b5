package models

import "github.com/google/uuid"

type ProcessVideoRequest struct {
	VideoURL string `json:"video_url"`
	UserID   string `json:"user_id"`
	Style    string `json:"style"`
}

type ProcessVideoResponse struct {
	Success          bool          `json:"success"`
	SummaryID        uuid.UUID     `json:"summary_id"`
	Summary          string        `json:"summary"`
	Metadata         VideoMetadata `json:"metadata"`
	CreditsRemaining int           `json:"credits_remaining"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
