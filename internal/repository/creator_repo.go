package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/red326/media-client-management/internal/model"
)

type CreatorRepo struct {
	pool *pgxpool.Pool
}

func NewCreatorRepo(pool *pgxpool.Pool) *CreatorRepo {
	return &CreatorRepo{pool: pool}
}

// ListCreators returns a complete snapshot of all creators, name ascending.
func (r *CreatorRepo) ListCreators(ctx context.Context) ([]model.Creator, error) {
	query := `
		SELECT id, name, channel_url, category, contact, notes, created_at
		FROM creators
		ORDER BY name, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creators []model.Creator
	for rows.Next() {
		var c model.Creator
		err := rows.Scan(&c.ID, &c.Name, &c.ChannelURL, &c.Category, &c.Contact, &c.Notes, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		creators = append(creators, c)
	}
	return creators, rows.Err()
}

// FindByID returns a single creator by its ID.
func (r *CreatorRepo) FindByID(ctx context.Context, id int64) (*model.Creator, error) {
	query := `
		SELECT id, name, channel_url, category, contact, notes, created_at
		FROM creators
		WHERE id = $1`

	var c model.Creator
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.ChannelURL, &c.Category, &c.Contact, &c.Notes, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCategories returns the distinct non-empty category labels in use,
// for the creators list filter dropdown.
func (r *CreatorRepo) ListCategories(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT category
		FROM creators
		WHERE category IS NOT NULL AND category <> ''
		ORDER BY category`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var cat string
		if err := rows.Scan(&cat); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}
