package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/festa-kr/festa-api/internal/domain"
)

// ErrEmptyIdentity marks a record whose identity key is empty. Such a
// record has nothing to anchor an upsert on and must be skipped by callers.
var ErrEmptyIdentity = errors.New("record has no usable identity key")

type IngestFestivalRepository interface {
	Upsert(ctx context.Context, key string, rec domain.ImportRecord) (domain.Festival, bool, error)
}

// IngestService is the write path every import source goes through.
type IngestService struct {
	repo IngestFestivalRepository
}

func NewIngestService(repo IngestFestivalRepository) *IngestService {
	return &IngestService{
		repo: repo,
	}
}

// Upsert creates or updates the festival identified by the record's
// identity key. Calling it twice with the same record leaves the stored
// row unchanged the second time and reports created=false.
func (s *IngestService) Upsert(ctx context.Context, rec domain.ImportRecord) (domain.Festival, bool, error) {
	key := rec.IdentityKey()
	if key == "" {
		return domain.Festival{}, false, ErrEmptyIdentity
	}

	fest, created, err := s.repo.Upsert(ctx, key, rec)
	if err != nil {
		return domain.Festival{}, false, fmt.Errorf("s.repo.Upsert -> %w", err)
	}

	return fest, created, nil
}
