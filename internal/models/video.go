package models

import "time"

// VideoMetadata holds the denormalized video fields returned by a metadata
// provider. Every field is best-effort: providers that cannot resolve a field
// leave it at its zero value and the record is stored with placeholders.
type VideoMetadata struct {
	Title      string     `json:"title"`
	Channel    string     `json:"channel"`
	Duration   int        `json:"duration"` // seconds
	Thumbnail  string     `json:"thumbnail"`
	ViewCount  int64      `json:"view_count"`
	UploadDate *time.Time `json:"upload_date,omitempty"`
}

// TranscriptResult is the plain transcript text plus the language tag of the
// caption track it came from. Ephemeral; persisted only as columns on the
// summary record.
type TranscriptResult struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}
