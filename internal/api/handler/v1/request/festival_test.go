package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveFestivalRequestValidate(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		req := SaveFestivalRequest{StartDate: "2024-04-01"}

		assert.Error(t, req.Validate())
	})

	t.Run("bad date shape", func(t *testing.T) {
		req := SaveFestivalRequest{Title: "봄꽃축제", StartDate: "01/04/2024"}

		assert.Error(t, req.Validate())
	})
}

func TestSaveFestivalRequestToRecord(t *testing.T) {
	req := SaveFestivalRequest{
		Title:     "봄꽃축제",
		StartDate: "2024-04-01",
		Latitude:  "37.5444",
		Place:     "서울숲",
		Organizer: "서울특별시",
	}

	assert.NoError(t, req.Validate())

	rec := req.ToRecord()
	assert.Equal(t, "봄꽃축제", rec.Title)
	assert.NotNil(t, rec.StartDate)
	assert.Equal(t, "서울숲", rec.LocationName)
	assert.Equal(t, "서울특별시", rec.Organizer)
	assert.NotNil(t, rec.Latitude)
	assert.Nil(t, rec.EndDate)
}

func TestAddCommentRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := AddCommentRequest{Nickname: "방문객", Content: "재미있었어요"}

		assert.NoError(t, req.Validate())
	})

	t.Run("nickname too short", func(t *testing.T) {
		req := AddCommentRequest{Nickname: "a", Content: "재미있었어요"}

		assert.Error(t, req.Validate())
	})

	t.Run("missing content", func(t *testing.T) {
		req := AddCommentRequest{Nickname: "방문객"}

		assert.Error(t, req.Validate())
	})
}
