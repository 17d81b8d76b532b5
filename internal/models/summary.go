package models

import (
	"time"

	"github.com/google/uuid"
)

// SummaryStyle selects which prompt template the summarizer uses.
type SummaryStyle string

const (
	StyleStructured SummaryStyle = "structured"
	StyleBullets    SummaryStyle = "bullets"
	StyleParagraph  SummaryStyle = "paragraph"
)

// ParseSummaryStyle validates a client-supplied style string. An empty string
// defaults to structured; anything else must match a known style exactly.
func ParseSummaryStyle(s string) (SummaryStyle, bool) {
	switch SummaryStyle(s) {
	case StyleStructured, StyleBullets, StyleParagraph:
		return SummaryStyle(s), true
	case "":
		return StyleStructured, true
	default:
		return "", false
	}
}

// SummaryRecord is the one row persisted per successful request. Rows are
// never updated or deleted by this service.
type SummaryRecord struct {
	ID            uuid.UUID    `json:"id"`
	UserID        uuid.UUID    `json:"user_id"`
	VideoURL      string       `json:"video_url"`
	VideoTitle    string       `json:"video_title"`
	VideoDuration int          `json:"video_duration"`
	ThumbnailURL  string       `json:"thumbnail_url"`
	ChannelName   string       `json:"channel_name"`
	Transcript    string       `json:"transcript"`
	Summary       string       `json:"summary"`
	Language      string       `json:"language"`
	Style         SummaryStyle `json:"style"`
	CreatedAt     time.Time    `json:"created_at"`
}
