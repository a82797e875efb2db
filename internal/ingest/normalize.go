package ingest

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var dateLayouts = []string{"2006-01-02", "2006.01.02"}

var pubDateLayouts = []string{"2006-01-02 15:04:05", "2006-01-02"}

// ParseDate parses a calendar date in either of the source feeds' two
// formats. Any other shape, including empty input, yields nil.
func ParseDate(text string) *time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return &t
		}
	}
	return nil
}

// ParseDecimal parses a decimal number after stripping comma
// thousands-separators. A value written with a decimal-comma convention
// ("37,1234") is therefore read as 371234, not 37.1234. Downstream data
// depends on this behavior, so keep it.
func ParseDecimal(text string) *decimal.Decimal {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(text, ",", ""))
	if err != nil {
		return nil
	}
	return &d
}

// ParsePubDate parses a publish timestamp, with or without a time-of-day
// component. The source feed carries no zone, so the process's local zone
// is attached.
func ParsePubDate(text string) *time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	for _, layout := range pubDateLayouts {
		if t, err := time.ParseInLocation(layout, text, time.Local); err == nil {
			return &t
		}
	}
	return nil
}
