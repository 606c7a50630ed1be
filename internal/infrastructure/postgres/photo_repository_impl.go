package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/picbay/internal/domain/entity"
	"github.com/oksasatya/picbay/internal/domain/repository"
)

type PhotoRepository struct {
	pool *pgxpool.Pool
}

func NewPhotoRepository(pool *pgxpool.Pool) *PhotoRepository {
	return &PhotoRepository{pool: pool}
}

func (r *PhotoRepository) List(ctx context.Context, page, limit int) ([]entity.Photo, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM photos`).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	rows, err := r.pool.Query(ctx, `
		SELECT id, author, coalesce(description, ''), url, thumb_url, orientation, created_at
		FROM photos
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	photos := make([]entity.Photo, 0, limit)
	for rows.Next() {
		var p entity.Photo
		if err := rows.Scan(&p.ID, &p.Author, &p.Description, &p.URL, &p.ThumbURL, &p.Orientation, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return photos, total, nil
}

func (r *PhotoRepository) CountByOrientation(ctx context.Context, orientation string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM photos WHERE orientation = $1`, orientation).Scan(&n)
	return n, err
}

func (r *PhotoRepository) GetByOrientationOffset(ctx context.Context, orientation string, offset int) (*entity.Photo, error) {
	p := &entity.Photo{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, author, coalesce(description, ''), url, thumb_url, orientation, created_at
		FROM photos
		WHERE orientation = $1
		ORDER BY created_at DESC, id
		LIMIT 1 OFFSET $2
	`, orientation, offset)

	if err := row.Scan(&p.ID, &p.Author, &p.Description, &p.URL, &p.ThumbURL, &p.Orientation, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

var _ repository.PhotoRepository = (*PhotoRepository)(nil)
