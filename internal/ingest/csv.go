package ingest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/festa-kr/festa-api/internal/domain"
)

// CSV column headers as published in the open-data bulk file. The
// organizer/host/sponsor columns exist under two alternate spellings across
// schema revisions, so those are probed in order.
const (
	colTitle             = "축제명"
	colStartDate         = "축제시작일자"
	colEndDate           = "축제종료일자"
	colDescription       = "축제내용"
	colTelephone         = "전화번호"
	colHomepage          = "홈페이지주소"
	colExtraInfo         = "관련정보"
	colLocationName      = "개최장소"
	colAddressRoad       = "소재지도로명주소"
	colAddressLot        = "소재지지번주소"
	colLatitude          = "위도"
	colLongitude         = "경도"
	colDataReferenceDate = "데이터기준일자"
)

var (
	colsOrganizer = []string{"주최기관명", "주최기관"}
	colsHost      = []string{"주관기관명", "주관기관"}
	colsSponsor   = []string{"후원기관명", "후원기관"}
)

// ReadCSVRecords reads the bulk CSV export from r and parses every row into
// a normalized record. A limit > 0 caps the number of rows read, for dry
// runs. The reader tolerates a UTF-8 byte-order mark before the header.
func ReadCSVRecords(r io.Reader, limit int) ([]domain.ImportRecord, error) {
	reader := csv.NewReader(stripUTF8BOM(bufio.NewReader(r)))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("missing header row")
		}
		return nil, fmt.Errorf("reader.Read -> %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var records []domain.ImportRecord
	for {
		if limit > 0 && len(records) >= limit {
			break
		}
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reader.Read -> %w", err)
		}
		records = append(records, parseCSVRow(index, row))
	}

	return records, nil
}

func parseCSVRow(index map[string]int, row []string) domain.ImportRecord {
	get := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	first := func(cols []string) string {
		for _, col := range cols {
			if v := get(col); v != "" {
				return v
			}
		}
		return ""
	}

	return domain.ImportRecord{
		Title:             get(colTitle),
		StartDate:         ParseDate(get(colStartDate)),
		EndDate:           ParseDate(get(colEndDate)),
		Description:       get(colDescription),
		Organizer:         first(colsOrganizer),
		Host:              first(colsHost),
		Sponsor:           first(colsSponsor),
		Telephone:         get(colTelephone),
		Homepage:          get(colHomepage),
		ExtraInfo:         get(colExtraInfo),
		LocationName:      get(colLocationName),
		AddressRoad:       get(colAddressRoad),
		AddressLot:        get(colAddressLot),
		Latitude:          ParseDecimal(get(colLatitude)),
		Longitude:         ParseDecimal(get(colLongitude)),
		DataReferenceDate: ParseDate(get(colDataReferenceDate)),
	}
}

func stripUTF8BOM(r *bufio.Reader) *bufio.Reader {
	b, err := r.Peek(3)
	if err == nil && len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
	return r
}
