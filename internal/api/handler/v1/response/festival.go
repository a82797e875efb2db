package response

import (
	"time"

	"github.com/festa-kr/festa-api/internal/domain"
)

const dateLayout = "2006-01-02"

// FestivalSummary is the list-page projection: the relational rows are
// flattened back into the place/organizer/host/sponsor strings readers expect.
type FestivalSummary struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Place     string `json:"place,omitempty"`
	Organizer string `json:"organizer,omitempty"`
}

type FestivalDetail struct {
	ID                uint                          `json:"id"`
	Title             string                        `json:"title"`
	StartDate         string                        `json:"start_date,omitempty"`
	EndDate           string                        `json:"end_date,omitempty"`
	Description       string                        `json:"description,omitempty"`
	Organizer         string                        `json:"organizer,omitempty"`
	Host              string                        `json:"host,omitempty"`
	Sponsor           string                        `json:"sponsor,omitempty"`
	Telephone         string                        `json:"telephone,omitempty"`
	Homepage          string                        `json:"homepage,omitempty"`
	ExtraInfo         string                        `json:"extra_info,omitempty"`
	Place             string                        `json:"place,omitempty"`
	Location          *domain.Location              `json:"location,omitempty"`
	DataReferenceDate string                        `json:"data_reference_date,omitempty"`
	PubDate           *time.Time                    `json:"pub_date,omitempty"`
	Organizations     []domain.FestivalOrganization `json:"organizations"`
	CreatedAt         time.Time                     `json:"created_at"`
	UpdatedAt         time.Time                     `json:"updated_at"`
}

type FestivalList struct {
	Festivals  []FestivalSummary `json:"festivals"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	TotalCount int64             `json:"total_count"`
}

func NewFestivalSummary(fest domain.Festival) FestivalSummary {
	return FestivalSummary{
		ID:        fest.ID,
		Title:     fest.Title,
		StartDate: formatDate(fest.StartDate),
		EndDate:   formatDate(fest.EndDate),
		Place:     fest.Place(),
		Organizer: fest.Organizer(),
	}
}

func NewFestivalDetail(fest domain.Festival) FestivalDetail {
	orgs := fest.Organizations
	if orgs == nil {
		orgs = []domain.FestivalOrganization{}
	}

	return FestivalDetail{
		ID:                fest.ID,
		Title:             fest.Title,
		StartDate:         formatDate(fest.StartDate),
		EndDate:           formatDate(fest.EndDate),
		Description:       fest.Description,
		Organizer:         fest.Organizer(),
		Host:              fest.Host(),
		Sponsor:           fest.Sponsor(),
		Telephone:         fest.Telephone,
		Homepage:          fest.Homepage,
		ExtraInfo:         fest.ExtraInfo,
		Place:             fest.Place(),
		Location:          fest.Location,
		DataReferenceDate: formatDate(fest.DataReferenceDate),
		PubDate:           fest.PubDate,
		Organizations:     orgs,
		CreatedAt:         fest.CreatedAt,
		UpdatedAt:         fest.UpdatedAt,
	}
}

func NewFestivalList(fests []domain.Festival, page, perPage int, total int64) FestivalList {
	summaries := make([]FestivalSummary, 0, len(fests))
	for _, fest := range fests {
		summaries = append(summaries, NewFestivalSummary(fest))
	}

	return FestivalList{
		Festivals:  summaries,
		Page:       page,
		PerPage:    perPage,
		TotalCount: total,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
