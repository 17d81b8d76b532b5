package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"sort"
	"time"

	"quicktube-backend/internal/captions"
	"quicktube-backend/internal/models"
)

const maxCaptionPayloadBytes = 4 * 1024 * 1024

// ytdlpDump is the subset of `yt-dlp -J` output the fetcher reads.
type ytdlpDump struct {
	Title             string                     `json:"title"`
	Channel           string                     `json:"channel"`
	Uploader          string                     `json:"uploader"`
	Duration          float64                    `json:"duration"`
	Thumbnail         string                     `json:"thumbnail"`
	ViewCount         int64                      `json:"view_count"`
	UploadDate        string                     `json:"upload_date"` // YYYYMMDD
	Subtitles         map[string][]subtitleTrack `json:"subtitles"`
	AutomaticCaptions map[string][]subtitleTrack `json:"automatic_captions"`
}

type subtitleTrack struct {
	URL string `json:"url"`
	Ext string `json:"ext"` // "vtt" | "json3" | ...
}

// YtDlpFetcher shells out to yt-dlp for a metadata dump, downloads the chosen
// subtitle track, and strips the timing markup to plain text.
type YtDlpFetcher struct {
	binary     string
	httpClient *http.Client
}

func NewYtDlpFetcher(binary string) *YtDlpFetcher {
	return &YtDlpFetcher{
		binary:     binary,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (f *YtDlpFetcher) Fetch(ctx context.Context, videoID, videoURL string) (models.VideoMetadata, models.TranscriptResult, error) {
	dump, err := f.dump(ctx, videoURL)
	if err != nil {
		return models.VideoMetadata{}, models.TranscriptResult{}, &UpstreamError{Stage: "metadata", Err: err}
	}
	meta := dump.metadata(videoID)

	track, lang, ok := pickSubtitleTrack(dump)
	if !ok {
		return models.VideoMetadata{}, models.TranscriptResult{}, &UpstreamError{Stage: "transcript", Err: errors.New("no subtitle tracks available")}
	}

	payload, err := f.download(ctx, track.URL)
	if err != nil {
		return models.VideoMetadata{}, models.TranscriptResult{}, &UpstreamError{Stage: "transcript", Err: err}
	}

	var text string
	if track.Ext == "json3" {
		text, err = captions.ParseJSON3(payload)
	} else {
		text, err = captions.ParseVTT(payload)
	}
	if err != nil {
		return models.VideoMetadata{}, models.TranscriptResult{}, &UpstreamError{Stage: "transcript", Err: err}
	}

	return meta, models.TranscriptResult{Text: text, Language: lang}, nil
}

func (f *YtDlpFetcher) dump(ctx context.Context, videoURL string) (*ytdlpDump, error) {
	cmd := exec.CommandContext(ctx, f.binary, "-J", "--skip-download", videoURL)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("yt-dlp failed: %w, stderr: %s", err, stderr.String())
	}

	var dump ytdlpDump
	if err := json.Unmarshal(stdout.Bytes(), &dump); err != nil {
		return nil, fmt.Errorf("decode yt-dlp output: %w", err)
	}
	return &dump, nil
}

func (f *YtDlpFetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch subtitle track: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("subtitle track returned status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxCaptionPayloadBytes))
}

func (d *ytdlpDump) metadata(videoID string) models.VideoMetadata {
	channel := d.Channel
	if channel == "" {
		channel = d.Uploader
	}
	thumbnail := d.Thumbnail
	if thumbnail == "" {
		thumbnail = defaultThumbnail(videoID)
	}

	meta := models.VideoMetadata{
		Title:     d.Title,
		Channel:   channel,
		Duration:  int(d.Duration),
		Thumbnail: thumbnail,
		ViewCount: d.ViewCount,
	}
	if t, err := time.Parse("20060102", d.UploadDate); err == nil {
		meta.UploadDate = &t
	}
	return meta
}

// pickSubtitleTrack selects a caption track: manual subtitles in a preferred
// language first, then auto-generated ones, then the first available of
// either kind. Within a language, vtt beats json3 beats anything else.
func pickSubtitleTrack(d *ytdlpDump) (subtitleTrack, string, bool) {
	for _, tracks := range []map[string][]subtitleTrack{d.Subtitles, d.AutomaticCaptions} {
		for _, lang := range preferredLanguages {
			if t, ok := pickTrackFormat(tracks[lang]); ok {
				return t, lang, true
			}
		}
	}
	for _, tracks := range []map[string][]subtitleTrack{d.Subtitles, d.AutomaticCaptions} {
		for _, lang := range sortedKeys(tracks) {
			if t, ok := pickTrackFormat(tracks[lang]); ok {
				return t, lang, true
			}
		}
	}
	return subtitleTrack{}, "", false
}

func pickTrackFormat(tracks []subtitleTrack) (subtitleTrack, bool) {
	for _, ext := range []string{"vtt", "json3"} {
		for _, t := range tracks {
			if t.Ext == ext && t.URL != "" {
				return t, true
			}
		}
	}
	return subtitleTrack{}, false
}

func sortedKeys(m map[string][]subtitleTrack) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
