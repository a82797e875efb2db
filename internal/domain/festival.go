package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role is the capacity in which an Organization relates to a Festival.
type Role string

const (
	RoleOrganizer Role = "organizer"
	RoleHost      Role = "host"
	RoleSponsor   Role = "sponsor"
)

// Roles lists every role in a fixed order.
var Roles = []Role{RoleOrganizer, RoleHost, RoleSponsor}

// Location is a place description shared by any number of festivals.
// Two festivals held at an identical place reference the same Location.
type Location struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	AddressRoad string           `json:"address_road"`
	AddressLot  string           `json:"address_lot"`
	Latitude    *decimal.Decimal `json:"latitude"`
	Longitude   *decimal.Decimal `json:"longitude"`
}

type Organization struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Telephone string `json:"telephone"`
	Homepage  string `json:"homepage"`
}

// FestivalOrganization assigns one Organization to a Festival under a role.
// A festival carries at most one assignment per role.
type FestivalOrganization struct {
	Role         Role         `json:"role"`
	Organization Organization `json:"organization"`
}

type Festival struct {
	ID                uint                   `json:"id"`
	ExternalID        string                 `json:"external_id"`
	Title             string                 `json:"title"`
	StartDate         *time.Time             `json:"start_date"`
	EndDate           *time.Time             `json:"end_date"`
	Description       string                 `json:"description"`
	Telephone         string                 `json:"telephone"`
	Homepage          string                 `json:"homepage"`
	ExtraInfo         string                 `json:"extra_info"`
	DataReferenceDate *time.Time             `json:"data_reference_date"`
	PubDate           *time.Time             `json:"pub_date"`
	Location          *Location              `json:"location"`
	Organizations     []FestivalOrganization `json:"organizations"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// Place returns the display name of the festival's location, if any.
// The flattened place/organizer/host/sponsor columns were normalized away,
// so these read through the related rows instead.
func (f Festival) Place() string {
	if f.Location == nil {
		return ""
	}
	return f.Location.Name
}

func (f Festival) Organizer() string {
	return f.organizationName(RoleOrganizer)
}

func (f Festival) Host() string {
	return f.organizationName(RoleHost)
}

func (f Festival) Sponsor() string {
	return f.organizationName(RoleSponsor)
}

func (f Festival) organizationName(role Role) string {
	for _, fo := range f.Organizations {
		if fo.Role == role {
			return fo.Organization.Name
		}
	}
	return ""
}
