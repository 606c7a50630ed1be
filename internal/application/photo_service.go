package application

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/picbay/internal/domain/entity"
	"github.com/oksasatya/picbay/internal/domain/repository"
	"github.com/oksasatya/picbay/pkg/helpers"
)

// ErrPhotoNotFound is returned when the catalog has nothing to serve.
var ErrPhotoNotFound = errors.New("image not found")

const (
	defaultPerPage = 10
	maxPerPage     = 30

	randomOrientation = "landscape"
)

// PhotoPage is one page of the catalog with pagination metadata.
type PhotoPage struct {
	Docs  []entity.Photo `json:"docs"`
	Total int            `json:"total"`
	Limit int            `json:"limit"`
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
}

// PhotoService serves the proxied photo catalog. List results are cached in
// Redis for a short TTL since the catalog changes rarely.
type PhotoService struct {
	Repo     repository.PhotoRepository
	Redis    *redis.Client
	Logger   *logrus.Logger
	CacheTTL time.Duration
}

func NewPhotoService(repo repository.PhotoRepository, rdb *redis.Client, logger *logrus.Logger, cacheTTL time.Duration) *PhotoService {
	return &PhotoService{Repo: repo, Redis: rdb, Logger: logger, CacheTTL: cacheTTL}
}

func photoPageKey(page, limit int) string {
	return fmt.Sprintf("photos:page:%d:limit:%d", page, limit)
}

// List returns one page of the catalog. Page defaults to 1, perPage to 10
// and is capped at 30.
func (s *PhotoService) List(ctx context.Context, page, perPage int) (*PhotoPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	key := photoPageKey(page, perPage)
	if s.Redis != nil {
		var cached PhotoPage
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, key, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	docs, total, err := s.Repo.List(ctx, page, perPage)
	if err != nil {
		return nil, err
	}

	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}
	result := &PhotoPage{Docs: docs, Total: total, Limit: perPage, Page: page, Pages: pages}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, key, result, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("photo cache write failed")
		}
	}
	return result, nil
}

// Random picks one landscape photo uniformly at random.
func (s *PhotoService) Random(ctx context.Context) (*entity.Photo, error) {
	count, err := s.Repo.CountByOrientation(ctx, randomOrientation)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrPhotoNotFound
	}
	p, err := s.Repo.GetByOrientationOffset(ctx, randomOrientation, rand.Intn(count))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	return p, nil
}
