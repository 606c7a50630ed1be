package repository

import (
	"context"

	"github.com/oksasatya/picbay/internal/domain/entity"
)

// PhotoRepository defines read access to the photo catalog.
type PhotoRepository interface {
	// List returns one page of the catalog plus the total row count.
	List(ctx context.Context, page, limit int) ([]entity.Photo, int, error)
	// CountByOrientation returns how many photos have the given orientation.
	CountByOrientation(ctx context.Context, orientation string) (int, error)
	// GetByOrientationOffset returns the photo at offset within the set of
	// photos with the given orientation, ordered by creation time.
	GetByOrientationOffset(ctx context.Context, orientation string, offset int) (*entity.Photo, error)
}
