package services

import (
	"context"

	yt "github.com/kkdai/youtube/v2"

	"quicktube-backend/internal/models"
)

// URLOnlyFetcher never fetches a transcript: metadata is scraped without an
// API key and the summarization model is asked to reason from the URL alone.
type URLOnlyFetcher struct {
	client *yt.Client
}

func NewURLOnlyFetcher() *URLOnlyFetcher {
	return &URLOnlyFetcher{client: &yt.Client{}}
}

func (f *URLOnlyFetcher) Fetch(ctx context.Context, videoID, videoURL string) (models.VideoMetadata, models.TranscriptResult, error) {
	return scrapeMetadata(ctx, f.client, videoID), models.TranscriptResult{}, nil
}
