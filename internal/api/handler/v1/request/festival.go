package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/festa-kr/festa-api/internal/domain"
	"github.com/festa-kr/festa-api/internal/ingest"
)

// SaveFestivalRequest is the staff create/edit form: the flat field shape
// festival data arrives in everywhere else, normalized the same way.
type SaveFestivalRequest struct {
	Title             string `json:"title"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	Description       string `json:"description"`
	Organizer         string `json:"organizer"`
	Host              string `json:"host"`
	Sponsor           string `json:"sponsor"`
	Telephone         string `json:"telephone"`
	Homepage          string `json:"homepage"`
	ExtraInfo         string `json:"extra_info"`
	Place             string `json:"place"`
	AddressRoad       string `json:"address_road"`
	AddressLot        string `json:"address_lot"`
	Latitude          string `json:"latitude"`
	Longitude         string `json:"longitude"`
	DataReferenceDate string `json:"data_reference_date"`
}

func (req *SaveFestivalRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.StartDate, validation.Date("2006-01-02")),
		validation.Field(&req.EndDate, validation.Date("2006-01-02")),
		validation.Field(&req.DataReferenceDate, validation.Date("2006-01-02")),
		validation.Field(&req.Telephone, validation.Length(0, 50)),
	)
}

// ToRecord converts the form into the normalized record shape the upsert
// engine consumes.
func (req *SaveFestivalRequest) ToRecord() domain.ImportRecord {
	return domain.ImportRecord{
		Title:             req.Title,
		StartDate:         ingest.ParseDate(req.StartDate),
		EndDate:           ingest.ParseDate(req.EndDate),
		Description:       req.Description,
		Organizer:         req.Organizer,
		Host:              req.Host,
		Sponsor:           req.Sponsor,
		Telephone:         req.Telephone,
		Homepage:          req.Homepage,
		ExtraInfo:         req.ExtraInfo,
		LocationName:      req.Place,
		AddressRoad:       req.AddressRoad,
		AddressLot:        req.AddressLot,
		Latitude:          ingest.ParseDecimal(req.Latitude),
		Longitude:         ingest.ParseDecimal(req.Longitude),
		DataReferenceDate: ingest.ParseDate(req.DataReferenceDate),
	}
}
