package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/red326/media-client-management/internal/model"
)

type VideoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

// videoColumns selects the amount as text so it can be parsed into a
// fixed-point decimal without passing through binary floating point.
const videoColumns = `
	id, creator_id, title, upload_date, payment_state, amount::text,
	link, description, created_at`

// ListVideos returns a snapshot of videos matching the filter, newest
// upload first with undated videos last.
func (r *VideoRepo) ListVideos(ctx context.Context, filter model.VideoFilter) ([]model.Video, error) {
	query := `SELECT` + videoColumns + `
		FROM videos
		WHERE ($1::bigint IS NULL OR creator_id = $1)
		  AND ($2::text IS NULL OR payment_state = $2)
		ORDER BY upload_date DESC NULLS LAST, id`

	var state *string
	if filter.PaymentState != nil {
		s := string(*filter.PaymentState)
		state = &s
	}

	rows, err := r.pool.Query(ctx, query, filter.CreatorID, state)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanVideos(rows)
}

// FindByID returns a single video by its ID.
func (r *VideoRepo) FindByID(ctx context.Context, id int64) (*model.Video, error) {
	query := `SELECT` + videoColumns + `
		FROM videos
		WHERE id = $1`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos, err := scanVideos(rows)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, pgx.ErrNoRows
	}
	return &videos[0], nil
}

// ListRecent returns the most recently created videos, for the dashboard.
func (r *VideoRepo) ListRecent(ctx context.Context, limit int) ([]model.Video, error) {
	query := `SELECT` + videoColumns + `
		FROM videos
		ORDER BY created_at DESC, id DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanVideos(rows)
}

func scanVideos(rows pgx.Rows) ([]model.Video, error) {
	var videos []model.Video
	for rows.Next() {
		var (
			v      model.Video
			state  string
			amount string
			upload *time.Time
		)
		err := rows.Scan(
			&v.ID, &v.CreatorID, &v.Title, &upload, &state, &amount,
			&v.Link, &v.Description, &v.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		v.PaymentState = model.PaymentState(state)
		v.UploadDate = upload
		v.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("video %d: bad amount %q: %w", v.ID, amount, err)
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}
