package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/festa-kr/festa-api/internal/domain"
)

var (
	ErrCommentEmptyContent    = errors.New("comment content is empty")
	ErrCommentTooLong         = errors.New("comment content exceeds 1000 characters")
	ErrCommentInvalidNickname = errors.New("nickname must be 2 to 30 characters")
)

type CommentRepository interface {
	Create(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	FindByFestivalID(ctx context.Context, festivalID uint) ([]domain.Comment, error)
}

type CommentFestivalRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Festival, error)
}

type CommentService struct {
	repo         CommentRepository
	festivalRepo CommentFestivalRepository
}

func NewCommentService(repo CommentRepository, festivalRepo CommentFestivalRepository) *CommentService {
	return &CommentService{
		repo:         repo,
		festivalRepo: festivalRepo,
	}
}

// AddComment stores a visitor comment after trimming. Content that trims
// down to nothing is rejected, as is a nickname outside 2-30 characters.
func (s *CommentService) AddComment(ctx context.Context, festivalID uint, nickname, content string) (domain.Comment, error) {
	nickname = strings.TrimSpace(nickname)
	content = strings.TrimSpace(content)

	if n := utf8.RuneCountInString(nickname); n < 2 || n > 30 {
		return domain.Comment{}, ErrCommentInvalidNickname
	}
	if content == "" {
		return domain.Comment{}, ErrCommentEmptyContent
	}
	if utf8.RuneCountInString(content) > 1000 {
		return domain.Comment{}, ErrCommentTooLong
	}

	if _, err := s.festivalRepo.FindByID(ctx, festivalID); err != nil {
		return domain.Comment{}, fmt.Errorf("s.festivalRepo.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.Comment{
		FestivalID: festivalID,
		Nickname:   nickname,
		Content:    content,
	})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CommentService) ListComments(ctx context.Context, festivalID uint) ([]domain.Comment, error) {
	comments, err := s.repo.FindByFestivalID(ctx, festivalID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByFestivalID -> %w", err)
	}

	return comments, nil
}
