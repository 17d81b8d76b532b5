package services

import (
	"context"
	"fmt"

	"quicktube-backend/internal/models"
)

// Fetcher resolves video metadata and, where the provider supports it, a
// transcript. Providers that cannot fetch transcripts return an empty
// TranscriptResult; the summarizer then reasons from the URL.
type Fetcher interface {
	Fetch(ctx context.Context, videoID, videoURL string) (models.VideoMetadata, models.TranscriptResult, error)
}

// Caption language preference order. Manual tracks beat auto-generated ones
// within each language; after these, the first available track is accepted.
var preferredLanguages = []string{"fr", "en"}

// NewFetcher builds the transcript provider selected at startup.
func NewFetcher(provider, youtubeAPIKey, ytdlpPath string) (Fetcher, error) {
	switch provider {
	case "youtube-api":
		return NewYouTubeFetcher(youtubeAPIKey)
	case "ytdlp":
		return NewYtDlpFetcher(ytdlpPath), nil
	case "url-only":
		return NewURLOnlyFetcher(), nil
	default:
		return nil, fmt.Errorf("unknown transcript provider %q", provider)
	}
}
