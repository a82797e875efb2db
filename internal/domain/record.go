package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// maxExternalIDLen matches the length of the festivals.external_id column.
const maxExternalIDLen = 250

// ImportRecord is the normalized shape every external source (open-data API
// XML, CSV bulk file) is parsed into before it reaches the upsert engine.
// Text fields hold trimmed strings, with "" meaning absent; dates and
// coordinates are nil when the source value was missing or unparseable.
type ImportRecord struct {
	ExternalID        string
	Title             string
	StartDate         *time.Time
	EndDate           *time.Time
	Description       string
	Organizer         string
	Host              string
	Sponsor           string
	Telephone         string
	Homepage          string
	ExtraInfo         string
	LocationName      string
	AddressRoad       string
	AddressLot        string
	Latitude          *decimal.Decimal
	Longitude         *decimal.Decimal
	DataReferenceDate *time.Time
	PubDate           *time.Time
}

// IdentityKey returns the stable key used to match this record to an
// existing festival across import runs. A source-supplied external id wins;
// otherwise the key is derived from title and start date. An empty result
// means the record cannot be upserted and must be skipped.
func (r ImportRecord) IdentityKey() string {
	if id := strings.TrimSpace(r.ExternalID); id != "" {
		return truncateRunes(id, maxExternalIDLen)
	}

	title := strings.TrimSpace(r.Title)
	start := ""
	if r.StartDate != nil {
		start = r.StartDate.Format("2006-01-02")
	}
	if title == "" && start == "" {
		return ""
	}

	key := strings.TrimSpace(title + "-" + start)
	return truncateRunes(key, maxExternalIDLen)
}

// HasLocation reports whether any location-related field is present.
// A record without one must not produce an all-empty Location row.
func (r ImportRecord) HasLocation() bool {
	return r.LocationName != "" ||
		r.AddressRoad != "" ||
		r.AddressLot != "" ||
		r.Latitude != nil ||
		r.Longitude != nil
}

// RoleNames maps each role to the organization name the record supplies
// for it. Empty names are kept so the caller can clear stale assignments.
func (r ImportRecord) RoleNames() map[Role]string {
	return map[Role]string{
		RoleOrganizer: r.Organizer,
		RoleHost:      r.Host,
		RoleSponsor:   r.Sponsor,
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
