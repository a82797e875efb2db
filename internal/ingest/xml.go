package ingest

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/festa-kr/festa-api/internal/domain"
)

// ResultCodeSuccess is the open-data API's success sentinel. Any other
// result code means the server rejected the request; the parser surfaces
// the code and message and leaves acting on them to the caller.
const ResultCodeSuccess = "0000"

// APIPage is one parsed page of the open-data API response.
type APIPage struct {
	ResultCode string
	ResultMsg  string
	TotalCount int
	Records    []domain.ImportRecord
}

type xmlEnvelope struct {
	XMLName    xml.Name  `xml:"iq"`
	ResultCode string    `xml:"resultCode"`
	ResultMsg  string    `xml:"resultMsg"`
	TotalCount string    `xml:"totalCnt"`
	Items      []xmlItem `xml:"item"`
}

type xmlItem struct {
	Idx         string `xml:"idx"`
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Organ       string `xml:"organ"`
	Period      string `xml:"period"`
	Tel         string `xml:"tel"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
}

// ParseFestivalsXML parses an API response body into an APIPage. A document
// with a single <item> decodes into a one-element record slice like any
// other page. Parsing only fails on malformed XML, never on a non-success
// result code.
func ParseFestivalsXML(data []byte) (APIPage, error) {
	var env xmlEnvelope
	if err := xml.Unmarshal(data, &env); err != nil {
		return APIPage{}, fmt.Errorf("xml.Unmarshal -> %w", err)
	}

	page := APIPage{
		ResultCode: strings.TrimSpace(env.ResultCode),
		ResultMsg:  strings.TrimSpace(env.ResultMsg),
	}
	if n, err := strconv.Atoi(strings.TrimSpace(env.TotalCount)); err == nil {
		page.TotalCount = n
	}

	page.Records = make([]domain.ImportRecord, 0, len(env.Items))
	for _, item := range env.Items {
		page.Records = append(page.Records, domain.ImportRecord{
			ExternalID:  strings.TrimSpace(item.Idx),
			Title:       strings.TrimSpace(item.Title),
			Homepage:    strings.TrimSpace(item.Link),
			Organizer:   strings.TrimSpace(item.Organ),
			ExtraInfo:   strings.TrimSpace(item.Period),
			Telephone:   strings.TrimSpace(item.Tel),
			Description: strings.TrimSpace(item.Description),
			PubDate:     ParsePubDate(item.PubDate),
		})
	}

	return page, nil
}
