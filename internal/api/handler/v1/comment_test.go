package v1

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festa-kr/festa-api/internal/domain"
	"github.com/festa-kr/festa-api/internal/service"
)

type fakeCommentService struct {
	comments map[uint][]domain.Comment
}

func newFakeCommentService() *fakeCommentService {
	return &fakeCommentService{
		comments: map[uint][]domain.Comment{
			1: {},
		},
	}
}

func (f *fakeCommentService) AddComment(_ context.Context, festivalID uint, nickname, content string) (domain.Comment, error) {
	if _, ok := f.comments[festivalID]; !ok {
		return domain.Comment{}, fmt.Errorf("lookup -> %w", service.ErrFestivalNotFound)
	}

	comment := domain.Comment{
		ID:         uint(len(f.comments[festivalID]) + 1),
		FestivalID: festivalID,
		Nickname:   strings.TrimSpace(nickname),
		Content:    strings.TrimSpace(content),
	}
	f.comments[festivalID] = append(f.comments[festivalID], comment)

	return comment, nil
}

func (f *fakeCommentService) ListComments(_ context.Context, festivalID uint) ([]domain.Comment, error) {
	return f.comments[festivalID], nil
}

func setupCommentRouter(svc CommentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewCommentHandler(svc)
	router.GET("/api/v1/festivals/:festivalID/comments", handler.HandleListComments)
	router.POST("/api/v1/festivals/:festivalID/comments", handler.HandleAddComment)

	return router
}

func TestCommentHandlerFlow(t *testing.T) {
	svc := newFakeCommentService()
	router := setupCommentRouter(svc)

	post := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("posting a comment returns it", func(t *testing.T) {
		w := post("/api/v1/festivals/1/comments", `{"nickname":"방문객","content":"재미있었어요"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "방문객")
		assert.Contains(t, w.Body.String(), "재미있었어요")
	})

	t.Run("posted comments appear in the listing", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/festivals/1/comments", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "재미있었어요")
	})

	t.Run("short nickname is rejected", func(t *testing.T) {
		w := post("/api/v1/festivals/1/comments", `{"nickname":"a","content":"괜찮은 내용"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing festival yields 404", func(t *testing.T) {
		w := post("/api/v1/festivals/999/comments", `{"nickname":"방문객","content":"괜찮은 내용"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric festival id is a bad request", func(t *testing.T) {
		w := post("/api/v1/festivals/abc/comments", `{"nickname":"방문객","content":"괜찮은 내용"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
