package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"quicktube-backend/internal/models"
	"quicktube-backend/internal/repository"
	"quicktube-backend/internal/services"
)

type profileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	ConsumeCredit(ctx context.Context, id uuid.UUID) (int, error)
}

type summaryRepository interface {
	Create(ctx context.Context, s *models.SummaryRecord) error
}

// VideoHandler runs the whole pipeline synchronously per request: credit
// check, metadata/transcript fetch, summarization, persist, decrement.
type VideoHandler struct {
	profiles   profileRepository
	summaries  summaryRepository
	fetcher    services.Fetcher
	summarizer services.Summarizer
}

func NewVideoHandler(profiles profileRepository, summaries summaryRepository, fetcher services.Fetcher, summarizer services.Summarizer) *VideoHandler {
	return &VideoHandler{
		profiles:   profiles,
		summaries:  summaries,
		fetcher:    fetcher,
		summarizer: summarizer,
	}
}

func (h *VideoHandler) ProcessVideo(w http.ResponseWriter, r *http.Request) {
	var req models.ProcessVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if req.VideoURL == "" || req.UserID == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "video_url and user_id are required", r))
		return
	}

	style, ok := models.ParseSummaryStyle(req.Style)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "style must be structured, bullets or paragraph", r))
		return
	}

	videoID, err := services.ExtractVideoID(req.VideoURL)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid YouTube URL", r))
		return
	}

	// A user_id that is not a UUID cannot match any profile row.
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "User not found", r))
		return
	}

	profile, err := h.profiles.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "User not found", r))
			return
		}
		log.Printf("profile lookup failed for user %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load user profile", r))
		return
	}
	if profile.CreditsRemaining <= 0 {
		writeJSON(w, http.StatusForbidden, errorResp("QUOTA_EXCEEDED", "No credits remaining", r))
		return
	}

	log.Printf("fetching metadata/transcript for video_id=%s", videoID)
	meta, transcript, err := h.fetcher.Fetch(r.Context(), videoID, req.VideoURL)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	log.Printf("generating summary style=%s for video_id=%s", style, videoID)
	prompt := services.BuildSummaryPrompt(style, meta.Title, transcript.Text, req.VideoURL)
	summary, err := h.summarizer.Summarize(r.Context(), prompt)
	if err != nil {
		handleServiceError(w, r, &services.UpstreamError{Stage: "summary", Err: err})
		return
	}

	record := &models.SummaryRecord{
		UserID:        userID,
		VideoURL:      req.VideoURL,
		VideoTitle:    meta.Title,
		VideoDuration: meta.Duration,
		ThumbnailURL:  meta.Thumbnail,
		ChannelName:   meta.Channel,
		Transcript:    transcript.Text,
		Summary:       summary,
		Language:      transcript.Language,
		Style:         style,
	}
	if err := h.summaries.Create(r.Context(), record); err != nil {
		log.Printf("summary insert failed for user %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to save summary", r))
		return
	}

	remaining, err := h.profiles.ConsumeCredit(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoCredits) {
			// A concurrent request spent the last credit while this one was
			// in flight. The inserted row stays; there is no compensating
			// delete.
			writeJSON(w, http.StatusForbidden, errorResp("QUOTA_EXCEEDED", "No credits remaining", r))
			return
		}
		log.Printf("credit decrement failed for user %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to update credits", r))
		return
	}

	log.Printf("summary %s stored for user %s (credits left: %d)", record.ID, userID, remaining)

	writeJSON(w, http.StatusOK, models.ProcessVideoResponse{
		Success:          true,
		SummaryID:        record.ID,
		Summary:          summary,
		Metadata:         meta,
		CreditsRemaining: remaining,
	})
}
