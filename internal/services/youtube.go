package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	ytapi "github.com/hightemp/youtube-transcript-api-go/api"
	yt "github.com/kkdai/youtube/v2"
	"google.golang.org/api/option"
	ytdata "google.golang.org/api/youtube/v3"

	"quicktube-backend/internal/models"
)

// YouTubeFetcher resolves metadata through the official Data API and caption
// content through the transcript API. The Data API lists caption tracks but
// cannot serve their content without OAuth, so track selection happens against
// the captions listing and the text itself comes from the transcript API.
type YouTubeFetcher struct {
	data          *ytdata.Service
	transcriptAPI *ytapi.YouTubeTranscriptApi
	scrapeClient  *yt.Client
}

func NewYouTubeFetcher(apiKey string) (*YouTubeFetcher, error) {
	svc, err := ytdata.NewService(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube Data API client: %w", err)
	}
	return &YouTubeFetcher{
		data:          svc,
		transcriptAPI: ytapi.NewYouTubeTranscriptApi(),
		scrapeClient:  &yt.Client{},
	}, nil
}

func (f *YouTubeFetcher) Fetch(ctx context.Context, videoID, videoURL string) (models.VideoMetadata, models.TranscriptResult, error) {
	meta, err := f.videoInfo(ctx, videoID)
	if err != nil {
		// Metadata is best-effort: fall back to the scraping client and then
		// to placeholders. Transcript failure below still fails the request.
		log.Printf("Data API metadata failed for %s, falling back to scrape: %v", videoID, err)
		meta = scrapeMetadata(ctx, f.scrapeClient, videoID)
	}

	transcript, err := f.transcript(ctx, videoID)
	if err != nil {
		return models.VideoMetadata{}, models.TranscriptResult{}, &UpstreamError{Stage: "transcript", Err: err}
	}
	return meta, transcript, nil
}

func (f *YouTubeFetcher) videoInfo(ctx context.Context, videoID string) (models.VideoMetadata, error) {
	resp, err := f.data.Videos.
		List([]string{"snippet", "contentDetails", "statistics"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return models.VideoMetadata{}, fmt.Errorf("videos.list: %w", err)
	}
	if len(resp.Items) == 0 {
		return models.VideoMetadata{}, fmt.Errorf("video not found")
	}

	item := resp.Items[0]
	meta := models.VideoMetadata{
		Title:    item.Snippet.Title,
		Channel:  item.Snippet.ChannelTitle,
		Duration: parseISODuration(item.ContentDetails.Duration),
	}
	if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
		meta.Thumbnail = item.Snippet.Thumbnails.High.Url
	}
	if item.Statistics != nil {
		meta.ViewCount = int64(item.Statistics.ViewCount)
	}
	if t, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
		meta.UploadDate = &t
	}
	return meta, nil
}

func (f *YouTubeFetcher) transcript(ctx context.Context, videoID string) (models.TranscriptResult, error) {
	listed := f.captionLanguage(ctx, videoID)

	candidates := make([]string, 0, len(preferredLanguages)+1)
	candidates = append(candidates, preferredLanguages...)
	if listed != "" && !contains(candidates, listed) {
		candidates = append(candidates, listed)
	}

	var lastErr error
	for _, lang := range candidates {
		transcript, err := f.transcriptAPI.GetTranscript(videoID, []string{lang})
		if err != nil {
			lastErr = err
			continue
		}
		var b strings.Builder
		for _, entry := range transcript.Entries {
			if t := strings.TrimSpace(entry.Text); t != "" {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(t)
			}
		}
		if text := b.String(); text != "" {
			return models.TranscriptResult{Text: text, Language: lang}, nil
		}
	}

	// Last resort: whatever language the transcript API can find.
	transcript, err := f.transcriptAPI.GetTranscript(videoID, nil)
	if err != nil {
		if lastErr != nil {
			return models.TranscriptResult{}, fmt.Errorf("no subtitles available: %v", lastErr)
		}
		return models.TranscriptResult{}, fmt.Errorf("no subtitles available: %v", err)
	}
	var b strings.Builder
	for _, entry := range transcript.Entries {
		if t := strings.TrimSpace(entry.Text); t != "" {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(t)
		}
	}
	text := b.String()
	if text == "" {
		return models.TranscriptResult{}, fmt.Errorf("subtitle track is empty")
	}
	lang := listed
	if lang == "" {
		lang = "en" // listing unavailable; assume English
	}
	return models.TranscriptResult{Text: text, Language: lang}, nil
}

// captionLanguage picks a caption language from the Data API listing:
// manual track in a preferred language, then auto-generated in a preferred
// language, then the first listed track. Empty when the listing fails.
func (f *YouTubeFetcher) captionLanguage(ctx context.Context, videoID string) string {
	resp, err := f.data.Captions.List([]string{"snippet"}, videoID).Context(ctx).Do()
	if err != nil {
		log.Printf("captions.list failed for %s: %v", videoID, err)
		return ""
	}
	return pickCaptionLanguage(resp.Items)
}

func pickCaptionLanguage(items []*ytdata.Caption) string {
	if len(items) == 0 {
		return ""
	}
	for _, lang := range preferredLanguages {
		for _, item := range items {
			if item.Snippet.Language == lang && item.Snippet.TrackKind != "asr" {
				return lang
			}
		}
	}
	for _, lang := range preferredLanguages {
		for _, item := range items {
			if item.Snippet.Language == lang {
				return lang
			}
		}
	}
	return items[0].Snippet.Language
}

var isoDurationRE = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// parseISODuration converts an ISO 8601 duration (PT1H2M10S) to seconds.
func parseISODuration(s string) int {
	m := isoDurationRE.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	return hours*3600 + minutes*60 + seconds
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// scrapeMetadata resolves metadata without an API key. Never fails: a dead
// scrape yields placeholder fields so the request can continue.
func scrapeMetadata(ctx context.Context, client *yt.Client, videoID string) models.VideoMetadata {
	video, err := client.GetVideoContext(ctx, videoID)
	if err != nil {
		log.Printf("metadata scrape failed for %s: %v", videoID, err)
		return placeholderMetadata(videoID)
	}

	meta := models.VideoMetadata{
		Title:     video.Title,
		Channel:   video.Author,
		Duration:  int(video.Duration.Seconds()),
		Thumbnail: defaultThumbnail(videoID),
		ViewCount: int64(video.Views),
	}
	if !video.PublishDate.IsZero() {
		t := video.PublishDate
		meta.UploadDate = &t
	}
	return meta
}

func placeholderMetadata(videoID string) models.VideoMetadata {
	return models.VideoMetadata{
		Title:     "YouTube Video",
		Thumbnail: defaultThumbnail(videoID),
	}
}

func defaultThumbnail(videoID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", videoID)
}
