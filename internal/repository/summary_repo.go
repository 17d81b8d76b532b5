package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"quicktube-backend/internal/models"
)

type SummaryRepo struct {
	pool *pgxpool.Pool
}

func NewSummaryRepo(pool *pgxpool.Pool) *SummaryRepo {
	return &SummaryRepo{pool: pool}
}

// Create inserts the single row a successful request produces. Rows are never
// updated or deleted afterwards.
func (r *SummaryRepo) Create(ctx context.Context, s *models.SummaryRecord) error {
	s.ID = uuid.New()

	query := `INSERT INTO summaries
		(id, user_id, video_url, video_title, video_duration, thumbnail_url,
		 channel_name, transcript, summary, language, style)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		s.ID, s.UserID, s.VideoURL, s.VideoTitle, s.VideoDuration, s.ThumbnailURL,
		s.ChannelName, s.Transcript, s.Summary, s.Language, string(s.Style),
	).Scan(&s.CreatedAt)
}
