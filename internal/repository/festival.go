package repository

import (
	"context"
	"fmt"

	"github.com/festa-kr/festa-api/internal/domain"
	"github.com/festa-kr/festa-api/internal/repository/dao"
)

var ErrFestivalNotFound = dao.ErrFestivalNotFound

type FestivalDAO interface {
	Upsert(ctx context.Context, externalID string, fest dao.Festival, loc *dao.Location, roles map[string]string) (dao.Festival, bool, error)
	FindByID(ctx context.Context, id uint) (dao.Festival, error)
	FindByExternalID(ctx context.Context, externalID string) (dao.Festival, error)
	List(ctx context.Context, query string, offset, limit int) ([]dao.Festival, int64, error)
	Delete(ctx context.Context, id uint) error
}

type FestivalRepository struct {
	dao FestivalDAO
}

func NewFestivalRepository(dao FestivalDAO) *FestivalRepository {
	return &FestivalRepository{
		dao: dao,
	}
}

// Upsert applies one normalized record under the given identity key.
func (r *FestivalRepository) Upsert(ctx context.Context, key string, rec domain.ImportRecord) (domain.Festival, bool, error) {
	fest := dao.Festival{
		Title:             rec.Title,
		StartDate:         rec.StartDate,
		EndDate:           rec.EndDate,
		Description:       rec.Description,
		Telephone:         rec.Telephone,
		Homepage:          rec.Homepage,
		ExtraInfo:         rec.ExtraInfo,
		DataReferenceDate: rec.DataReferenceDate,
		PubDate:           rec.PubDate,
	}

	var loc *dao.Location
	if rec.HasLocation() {
		loc = &dao.Location{
			Name:        rec.LocationName,
			AddressRoad: rec.AddressRoad,
			AddressLot:  rec.AddressLot,
			Latitude:    rec.Latitude,
			Longitude:   rec.Longitude,
		}
	}

	roles := make(map[string]string, len(domain.Roles))
	for role, name := range rec.RoleNames() {
		roles[string(role)] = name
	}

	upserted, created, err := r.dao.Upsert(ctx, key, fest, loc, roles)
	if err != nil {
		return domain.Festival{}, false, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return r.daoToDomain(upserted), created, nil
}

func (r *FestivalRepository) FindByID(ctx context.Context, id uint) (domain.Festival, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Festival{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *FestivalRepository) List(ctx context.Context, query string, offset, limit int) ([]domain.Festival, int64, error) {
	found, total, err := r.dao.List(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.List -> %w", err)
	}

	fests := make([]domain.Festival, len(found))
	for i, f := range found {
		fests[i] = r.daoToDomain(f)
	}

	return fests, total, nil
}

func (r *FestivalRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *FestivalRepository) daoToDomain(f dao.Festival) domain.Festival {
	fest := domain.Festival{
		ID:                f.ID,
		ExternalID:        f.ExternalID,
		Title:             f.Title,
		StartDate:         f.StartDate,
		EndDate:           f.EndDate,
		Description:       f.Description,
		Telephone:         f.Telephone,
		Homepage:          f.Homepage,
		ExtraInfo:         f.ExtraInfo,
		DataReferenceDate: f.DataReferenceDate,
		PubDate:           f.PubDate,
		CreatedAt:         f.CreatedAt,
		UpdatedAt:         f.UpdatedAt,
	}

	if f.Location != nil {
		fest.Location = &domain.Location{
			ID:          f.Location.ID,
			Name:        f.Location.Name,
			AddressRoad: f.Location.AddressRoad,
			AddressLot:  f.Location.AddressLot,
			Latitude:    f.Location.Latitude,
			Longitude:   f.Location.Longitude,
		}
	}

	for _, fo := range f.Organizations {
		fest.Organizations = append(fest.Organizations, domain.FestivalOrganization{
			Role: domain.Role(fo.Role),
			Organization: domain.Organization{
				ID:        fo.Organization.ID,
				Name:      fo.Organization.Name,
				Telephone: fo.Organization.Telephone,
				Homepage:  fo.Organization.Homepage,
			},
		})
	}

	return fest
}
