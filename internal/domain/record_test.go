package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestImportRecordIdentityKey(t *testing.T) {
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("explicit external id wins", func(t *testing.T) {
		rec := ImportRecord{ExternalID: " festival-1 ", Title: "봄 축제", StartDate: &start}

		assert.Equal(t, "festival-1", rec.IdentityKey())
	})

	t.Run("derived from title and start date", func(t *testing.T) {
		rec := ImportRecord{Title: "봄 축제", StartDate: &start}

		assert.Equal(t, "봄 축제-2024-04-01", rec.IdentityKey())
	})

	t.Run("title only", func(t *testing.T) {
		rec := ImportRecord{Title: "봄 축제"}

		assert.Equal(t, "봄 축제-", rec.IdentityKey())
	})

	t.Run("start date only", func(t *testing.T) {
		rec := ImportRecord{StartDate: &start}

		assert.Equal(t, "-2024-04-01", rec.IdentityKey())
	})

	t.Run("no title and no start date yields no key", func(t *testing.T) {
		rec := ImportRecord{Description: "이름 없는 행사"}

		assert.Equal(t, "", rec.IdentityKey())
	})

	t.Run("long keys are cut at 250 characters, not bytes", func(t *testing.T) {
		rec := ImportRecord{ExternalID: strings.Repeat("가", 300)}

		key := rec.IdentityKey()
		assert.Equal(t, 250, len([]rune(key)))
		assert.Equal(t, strings.Repeat("가", 250), key)
	})
}

func TestImportRecordHasLocation(t *testing.T) {
	lat := decimal.NewFromFloat(37.5444)

	assert.False(t, ImportRecord{Title: "봄 축제"}.HasLocation())
	assert.True(t, ImportRecord{LocationName: "서울숲"}.HasLocation())
	assert.True(t, ImportRecord{AddressRoad: "뚝섬로 273"}.HasLocation())
	assert.True(t, ImportRecord{AddressLot: "성수동1가"}.HasLocation())
	assert.True(t, ImportRecord{Latitude: &lat}.HasLocation())
}

func TestImportRecordRoleNames(t *testing.T) {
	rec := ImportRecord{Organizer: "서울특별시", Host: "성동구청"}

	names := rec.RoleNames()
	assert.Equal(t, "서울특별시", names[RoleOrganizer])
	assert.Equal(t, "성동구청", names[RoleHost])
	assert.Equal(t, "", names[RoleSponsor])
}

func TestFestivalReadThroughAccessors(t *testing.T) {
	fest := Festival{
		Location: &Location{Name: "서울숲"},
		Organizations: []FestivalOrganization{
			{Role: RoleOrganizer, Organization: Organization{Name: "서울특별시"}},
			{Role: RoleSponsor, Organization: Organization{Name: "한국관광공사"}},
		},
	}

	assert.Equal(t, "서울숲", fest.Place())
	assert.Equal(t, "서울특별시", fest.Organizer())
	assert.Equal(t, "", fest.Host())
	assert.Equal(t, "한국관광공사", fest.Sponsor())

	assert.Equal(t, "", Festival{}.Place())
}
