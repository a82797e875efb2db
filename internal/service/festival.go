package service

import (
	"context"
	"fmt"

	"github.com/festa-kr/festa-api/internal/domain"
	"github.com/festa-kr/festa-api/internal/repository"
)

var ErrFestivalNotFound = repository.ErrFestivalNotFound

// FestivalsPerPage is the page size of the public festival listing.
const FestivalsPerPage = 12

type FestivalRepository interface {
	Upsert(ctx context.Context, key string, rec domain.ImportRecord) (domain.Festival, bool, error)
	FindByID(ctx context.Context, id uint) (domain.Festival, error)
	List(ctx context.Context, query string, offset, limit int) ([]domain.Festival, int64, error)
	Delete(ctx context.Context, id uint) error
}

type FestivalService struct {
	repo FestivalRepository
}

func NewFestivalService(repo FestivalRepository) *FestivalService {
	return &FestivalService{
		repo: repo,
	}
}

// ListFestivals returns one page of festivals, optionally filtered by a
// title substring, along with the total match count.
func (s *FestivalService) ListFestivals(ctx context.Context, query string, page int) ([]domain.Festival, int64, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * FestivalsPerPage
	fests, total, err := s.repo.List(ctx, query, offset, FestivalsPerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.List -> %w", err)
	}

	return fests, total, nil
}

func (s *FestivalService) GetFestival(ctx context.Context, id uint) (domain.Festival, error) {
	fest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Festival{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return fest, nil
}

// CreateFestival routes a staff-entered record through the same upsert
// engine the import sources use, so the identity key and relational
// invariants hold no matter where a festival came from.
func (s *FestivalService) CreateFestival(ctx context.Context, rec domain.ImportRecord) (domain.Festival, error) {
	key := rec.IdentityKey()
	if key == "" {
		return domain.Festival{}, ErrEmptyIdentity
	}

	fest, _, err := s.repo.Upsert(ctx, key, rec)
	if err != nil {
		return domain.Festival{}, fmt.Errorf("s.repo.Upsert -> %w", err)
	}

	return fest, nil
}

// UpdateFestival reapplies the record under the festival's existing
// identity key; the key itself is never rewritten.
func (s *FestivalService) UpdateFestival(ctx context.Context, id uint, rec domain.ImportRecord) (domain.Festival, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Festival{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	fest, _, err := s.repo.Upsert(ctx, existing.ExternalID, rec)
	if err != nil {
		return domain.Festival{}, fmt.Errorf("s.repo.Upsert -> %w", err)
	}

	return fest, nil
}

func (s *FestivalService) DeleteFestival(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
