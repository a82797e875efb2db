package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dashed format", "2024-04-01", "2024-04-01"},
		{"dotted format", "2024.04.01", "2024-04-01"},
		{"surrounding whitespace", "  2024-04-01  ", "2024-04-01"},
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"slashed format is not accepted", "04/01/2024", ""},
		{"garbage", "not a date", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseDate(tc.input)
			if tc.want == "" {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tc.want, got.Format("2006-01-02"))
		})
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain decimal", "37.1234", "37.1234"},
		{"negative", "-127.5", "-127.5"},
		{"thousands separator stripped", "1,234.5", "1234.5"},
		// A decimal comma is read as a thousands separator, so the comma
		// vanishes instead of becoming a decimal point.
		{"decimal comma collapses", "37,1234", "371234"},
		{"surrounding whitespace", " 127.001 ", "127.001"},
		{"empty", "", ""},
		{"garbage", "abc", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseDecimal(tc.input)
			if tc.want == "" {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestParsePubDate(t *testing.T) {
	t.Run("with time of day", func(t *testing.T) {
		got := ParsePubDate("2024-03-15 10:30:00")

		require.NotNil(t, got)
		want := time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)
		assert.True(t, got.Equal(want))
	})

	t.Run("date only", func(t *testing.T) {
		got := ParsePubDate("2024-03-15")

		require.NotNil(t, got)
		want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
		assert.True(t, got.Equal(want))
	})

	t.Run("unparseable", func(t *testing.T) {
		assert.Nil(t, ParsePubDate("yesterday"))
		assert.Nil(t, ParsePubDate(""))
	})
}
