package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrFestivalNotFound = errors.New("festival not found")

// Role values stored on festival_organizations rows.
const (
	RoleOrganizer = "organizer"
	RoleHost      = "host"
	RoleSponsor   = "sponsor"
)

// roleOrder fixes the application order so repeated imports touch the
// link rows deterministically.
var roleOrder = []string{RoleOrganizer, RoleHost, RoleSponsor}

type Festival struct {
	ID                uint       `gorm:"primaryKey"`
	ExternalID        string     `gorm:"size:250;uniqueIndex;not null"`
	Title             string     `gorm:"size:200;not null"`
	StartDate         *time.Time `gorm:"type:date"`
	EndDate           *time.Time `gorm:"type:date"`
	Description       string     `gorm:"type:text"`
	Telephone         string     `gorm:"size:50"`
	Homepage          string     `gorm:"size:200"`
	ExtraInfo         string     `gorm:"type:text"`
	DataReferenceDate *time.Time `gorm:"type:date"`
	PubDate           *time.Time

	LocationID    *uint
	Location      *Location              `gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL"`
	Organizations []FestivalOrganization `gorm:"foreignKey:FestivalID;constraint:OnDelete:CASCADE"`
	Comments      []Comment              `gorm:"foreignKey:FestivalID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location rows are unique over the full 5-tuple so equal places are
// shared, never duplicated. Postgres treats NULL coordinates as distinct
// in the index; the lookup in getOrCreateLocation matches them with IS NULL.
type Location struct {
	ID          uint             `gorm:"primaryKey"`
	Name        string           `gorm:"size:200;not null;uniqueIndex:idx_locations_tuple"`
	AddressRoad string           `gorm:"size:255;not null;uniqueIndex:idx_locations_tuple"`
	AddressLot  string           `gorm:"size:255;not null;uniqueIndex:idx_locations_tuple"`
	Latitude    *decimal.Decimal `gorm:"type:numeric(18,12);uniqueIndex:idx_locations_tuple"`
	Longitude   *decimal.Decimal `gorm:"type:numeric(18,12);uniqueIndex:idx_locations_tuple"`
}

type Organization struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;uniqueIndex;not null"`
	Telephone string `gorm:"size:50"`
	Homepage  string `gorm:"size:200"`
}

type FestivalOrganization struct {
	ID             uint         `gorm:"primaryKey"`
	FestivalID     uint         `gorm:"not null;uniqueIndex:idx_festival_role"`
	Role           string       `gorm:"size:20;not null;uniqueIndex:idx_festival_role"`
	OrganizationID uint         `gorm:"not null"`
	Organization   Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

type FestivalDAO struct {
	db *gorm.DB
}

func NewFestivalDAO(db *gorm.DB) *FestivalDAO {
	return &FestivalDAO{
		db: db,
	}
}

// Upsert creates or updates the festival matched by externalID and
// reconciles its location and role links in one transaction, so a failed
// step never leaves a half-applied record behind.
//
// roles maps each role to the organization name the source supplies; an
// empty name clears any existing assignment for that role.
func (d *FestivalDAO) Upsert(ctx context.Context, externalID string, fest Festival, loc *Location, roles map[string]string) (Festival, bool, error) {
	var out Festival
	var created bool

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		out, created, err = upsertFestival(tx, externalID, fest)
		if err != nil {
			return err
		}

		if loc != nil {
			stored, err := getOrCreateLocation(tx, *loc)
			if err != nil {
				return err
			}
			if err := tx.Model(&Festival{}).Where("id = ?", out.ID).Update("location_id", stored.ID).Error; err != nil {
				return fmt.Errorf("tx.Update location_id -> %w", err)
			}
			out.LocationID = &stored.ID
		}

		for _, role := range roleOrder {
			name, ok := roles[role]
			if !ok {
				continue
			}
			if err := replaceRole(tx, out.ID, role, name); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Festival{}, false, err
	}

	return out, created, nil
}

// upsertFestival is the idempotent anchor: the external key is assigned at
// first save and never rewritten by later upserts of the same record.
func upsertFestival(tx *gorm.DB, externalID string, fest Festival) (Festival, bool, error) {
	var existing Festival
	err := tx.Where("external_id = ?", externalID).First(&existing).Error
	if err == nil {
		if err := applyFestivalFields(tx, &existing, fest); err != nil {
			return Festival{}, false, err
		}
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Festival{}, false, fmt.Errorf("tx.First festival -> %w", err)
	}

	return insertFestival(tx, externalID, fest)
}

// insertFestival inserts the festival under externalID. When a concurrent
// writer claimed the key since the caller's lookup, the insert is a no-op
// rather than an error (a raised unique violation would abort the
// surrounding transaction on Postgres), and the existing row is updated
// instead.
func insertFestival(tx *gorm.DB, externalID string, fest Festival) (Festival, bool, error) {
	fest.ExternalID = externalID
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fest)
	if res.Error != nil {
		return Festival{}, false, fmt.Errorf("tx.Create festival -> %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var existing Festival
		if err := tx.Where("external_id = ?", externalID).First(&existing).Error; err != nil {
			return Festival{}, false, fmt.Errorf("tx.First festival after conflict -> %w", err)
		}
		if err := applyFestivalFields(tx, &existing, fest); err != nil {
			return Festival{}, false, err
		}
		return existing, false, nil
	}

	return fest, true, nil
}

func applyFestivalFields(tx *gorm.DB, existing *Festival, fest Festival) error {
	updates := map[string]interface{}{
		"title":               fest.Title,
		"start_date":          fest.StartDate,
		"end_date":            fest.EndDate,
		"description":         fest.Description,
		"telephone":           fest.Telephone,
		"homepage":            fest.Homepage,
		"extra_info":          fest.ExtraInfo,
		"data_reference_date": fest.DataReferenceDate,
		"pub_date":            fest.PubDate,
	}
	if err := tx.Model(existing).Updates(updates).Error; err != nil {
		return fmt.Errorf("tx.Updates festival -> %w", err)
	}

	existing.Title = fest.Title
	existing.StartDate = fest.StartDate
	existing.EndDate = fest.EndDate
	existing.Description = fest.Description
	existing.Telephone = fest.Telephone
	existing.Homepage = fest.Homepage
	existing.ExtraInfo = fest.ExtraInfo
	existing.DataReferenceDate = fest.DataReferenceDate
	existing.PubDate = fest.PubDate

	return nil
}

// getOrCreateLocation resolves the exact 5-tuple to a single shared row.
// The insert ignores conflicts and re-selects, so concurrent imports
// cannot duplicate a place the unique index covers.
func getOrCreateLocation(tx *gorm.DB, loc Location) (Location, error) {
	cond := map[string]interface{}{
		"name":         loc.Name,
		"address_road": loc.AddressRoad,
		"address_lot":  loc.AddressLot,
		"latitude":     loc.Latitude,
		"longitude":    loc.Longitude,
	}

	var found Location
	err := tx.Where(cond).First(&found).Error
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Location{}, fmt.Errorf("tx.First location -> %w", err)
	}

	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&loc)
	if res.Error != nil {
		return Location{}, fmt.Errorf("tx.Create location -> %w", res.Error)
	}
	if res.RowsAffected == 0 {
		if err := tx.Where(cond).First(&found).Error; err != nil {
			return Location{}, fmt.Errorf("tx.First location after conflict -> %w", err)
		}
		return found, nil
	}

	return loc, nil
}

func getOrCreateOrganization(tx *gorm.DB, name string) (Organization, error) {
	var found Organization
	err := tx.Where("name = ?", name).First(&found).Error
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Organization{}, fmt.Errorf("tx.First organization -> %w", err)
	}

	org := Organization{Name: name}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&org)
	if res.Error != nil {
		return Organization{}, fmt.Errorf("tx.Create organization -> %w", res.Error)
	}
	if res.RowsAffected == 0 {
		if err := tx.Where("name = ?", name).First(&found).Error; err != nil {
			return Organization{}, fmt.Errorf("tx.First organization after conflict -> %w", err)
		}
		return found, nil
	}

	return org, nil
}

// replaceRole swaps the festival's assignment for one role. Delete plus
// insert inside the surrounding transaction guarantees at most one
// organization per role without a merge path.
func replaceRole(tx *gorm.DB, festivalID uint, role, name string) error {
	if err := tx.Where("festival_id = ? AND role = ?", festivalID, role).Delete(&FestivalOrganization{}).Error; err != nil {
		return fmt.Errorf("tx.Delete festival_organization -> %w", err)
	}
	if name == "" {
		return nil
	}

	org, err := getOrCreateOrganization(tx, name)
	if err != nil {
		return err
	}

	link := FestivalOrganization{
		FestivalID:     festivalID,
		Role:           role,
		OrganizationID: org.ID,
	}
	if err := tx.Create(&link).Error; err != nil {
		return fmt.Errorf("tx.Create festival_organization -> %w", err)
	}

	return nil
}

func (d *FestivalDAO) FindByID(ctx context.Context, id uint) (Festival, error) {
	var fest Festival
	err := d.db.WithContext(ctx).
		Preload("Location").
		Preload("Organizations.Organization").
		First(&fest, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Festival{}, ErrFestivalNotFound
		}
		return Festival{}, err
	}

	return fest, nil
}

func (d *FestivalDAO) FindByExternalID(ctx context.Context, externalID string) (Festival, error) {
	var fest Festival
	err := d.db.WithContext(ctx).Where("external_id = ?", externalID).First(&fest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Festival{}, ErrFestivalNotFound
		}
		return Festival{}, err
	}

	return fest, nil
}

// List returns one page of festivals ordered by start date then title,
// optionally filtered by a case-insensitive title substring, plus the
// total match count for pagination.
func (d *FestivalDAO) List(ctx context.Context, query string, offset, limit int) ([]Festival, int64, error) {
	tx := d.db.WithContext(ctx).Model(&Festival{})
	if query != "" {
		tx = tx.Where("title ILIKE ?", "%"+query+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var fests []Festival
	err := tx.
		Preload("Location").
		Preload("Organizations.Organization").
		Order("start_date NULLS LAST, title").
		Offset(offset).
		Limit(limit).
		Find(&fests).Error
	if err != nil {
		return nil, 0, err
	}

	return fests, total, nil
}

func (d *FestivalDAO) Delete(ctx context.Context, id uint) error {
	res := d.db.WithContext(ctx).Delete(&Festival{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrFestivalNotFound
	}

	return nil
}
