package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFestivalsXML(t *testing.T) {
	t.Run("full page", func(t *testing.T) {
		body := `<?xml version="1.0" encoding="UTF-8"?>
<iq>
	<resultCode>0000</resultCode>
	<resultMsg>OK</resultMsg>
	<totalCnt>42</totalCnt>
	<item>
		<idx>festival-1</idx>
		<title> 봄꽃축제 </title>
		<link>https://example.com/spring</link>
		<organ>서울특별시</organ>
		<period>2024-04-01 ~ 2024-04-07</period>
		<tel>02-120</tel>
		<description>봄꽃을 즐기는 축제</description>
		<pubDate>2024-03-15 10:30:00</pubDate>
	</item>
	<item>
		<idx>festival-2</idx>
		<title>가을축제</title>
	</item>
</iq>`

		page, err := ParseFestivalsXML([]byte(body))

		require.NoError(t, err)
		assert.Equal(t, ResultCodeSuccess, page.ResultCode)
		assert.Equal(t, "OK", page.ResultMsg)
		assert.Equal(t, 42, page.TotalCount)
		require.Len(t, page.Records, 2)

		first := page.Records[0]
		assert.Equal(t, "festival-1", first.ExternalID)
		assert.Equal(t, "봄꽃축제", first.Title)
		assert.Equal(t, "https://example.com/spring", first.Homepage)
		assert.Equal(t, "서울특별시", first.Organizer)
		assert.Equal(t, "2024-04-01 ~ 2024-04-07", first.ExtraInfo)
		assert.Equal(t, "02-120", first.Telephone)
		assert.Equal(t, "봄꽃을 즐기는 축제", first.Description)
		require.NotNil(t, first.PubDate)
		assert.True(t, first.PubDate.Equal(time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)))

		second := page.Records[1]
		assert.Equal(t, "festival-2", second.ExternalID)
		assert.Equal(t, "가을축제", second.Title)
		assert.Nil(t, second.PubDate)
	})

	t.Run("single item still decodes as a slice", func(t *testing.T) {
		body := `<iq><resultCode>0000</resultCode><totalCnt>1</totalCnt>
<item><idx>only-one</idx><title>단독축제</title></item></iq>`

		page, err := ParseFestivalsXML([]byte(body))

		require.NoError(t, err)
		require.Len(t, page.Records, 1)
		assert.Equal(t, "only-one", page.Records[0].ExternalID)
	})

	t.Run("non-success result code is surfaced, not an error", func(t *testing.T) {
		body := `<iq><resultCode>9999</resultCode><resultMsg>INVALID KEY</resultMsg></iq>`

		page, err := ParseFestivalsXML([]byte(body))

		require.NoError(t, err)
		assert.Equal(t, "9999", page.ResultCode)
		assert.Equal(t, "INVALID KEY", page.ResultMsg)
		assert.Empty(t, page.Records)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := ParseFestivalsXML([]byte(`<iq><resultCode>`))

		assert.Error(t, err)
	})
}
