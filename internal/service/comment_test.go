package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festa-kr/festa-api/internal/domain"
)

type fakeCommentRepo struct {
	comments []domain.Comment
}

func (f *fakeCommentRepo) Create(_ context.Context, comment domain.Comment) (domain.Comment, error) {
	comment.ID = uint(len(f.comments) + 1)
	f.comments = append(f.comments, comment)
	return comment, nil
}

func (f *fakeCommentRepo) FindByFestivalID(_ context.Context, festivalID uint) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, c := range f.comments {
		if c.FestivalID == festivalID {
			out = append(out, c)
		}
	}
	return out, nil
}

func newCommentService(festivalRepo *fakeFestivalRepo) (*CommentService, *fakeCommentRepo) {
	repo := &fakeCommentRepo{}
	return NewCommentService(repo, festivalRepo), repo
}

func TestCommentServiceAddComment(t *testing.T) {
	festivalRepo := newFakeFestivalRepo()
	fest, err := NewFestivalService(festivalRepo).CreateFestival(context.Background(), domain.ImportRecord{
		ExternalID: "festival-1",
		Title:      "봄꽃축제",
	})
	require.NoError(t, err)

	t.Run("trims nickname and content", func(t *testing.T) {
		svc, _ := newCommentService(festivalRepo)

		comment, err := svc.AddComment(context.Background(), fest.ID, "  방문객  ", "  재미있었어요  ")

		require.NoError(t, err)
		assert.Equal(t, "방문객", comment.Nickname)
		assert.Equal(t, "재미있었어요", comment.Content)
	})

	t.Run("rejects whitespace-only content", func(t *testing.T) {
		svc, _ := newCommentService(festivalRepo)

		_, err := svc.AddComment(context.Background(), fest.ID, "방문객", "   ")

		assert.ErrorIs(t, err, ErrCommentEmptyContent)
	})

	t.Run("rejects content over 1000 characters", func(t *testing.T) {
		svc, _ := newCommentService(festivalRepo)

		_, err := svc.AddComment(context.Background(), fest.ID, "방문객", strings.Repeat("가", 1001))

		assert.ErrorIs(t, err, ErrCommentTooLong)
	})

	t.Run("rejects out-of-range nicknames", func(t *testing.T) {
		svc, _ := newCommentService(festivalRepo)

		_, err := svc.AddComment(context.Background(), fest.ID, "a", "괜찮은 내용")
		assert.ErrorIs(t, err, ErrCommentInvalidNickname)

		_, err = svc.AddComment(context.Background(), fest.ID, strings.Repeat("가", 31), "괜찮은 내용")
		assert.ErrorIs(t, err, ErrCommentInvalidNickname)
	})

	t.Run("rejects comments for a missing festival", func(t *testing.T) {
		svc, _ := newCommentService(festivalRepo)

		_, err := svc.AddComment(context.Background(), 999, "방문객", "괜찮은 내용")

		assert.ErrorIs(t, err, ErrFestivalNotFound)
	})
}

func TestCommentServiceListComments(t *testing.T) {
	festivalRepo := newFakeFestivalRepo()
	fest, err := NewFestivalService(festivalRepo).CreateFestival(context.Background(), domain.ImportRecord{
		ExternalID: "festival-1",
		Title:      "봄꽃축제",
	})
	require.NoError(t, err)

	svc, _ := newCommentService(festivalRepo)

	_, err = svc.AddComment(context.Background(), fest.ID, "첫손님", "좋아요")
	require.NoError(t, err)
	_, err = svc.AddComment(context.Background(), fest.ID, "둘째손님", "또 올게요")
	require.NoError(t, err)

	comments, err := svc.ListComments(context.Background(), fest.ID)

	require.NoError(t, err)
	assert.Len(t, comments, 2)
}
