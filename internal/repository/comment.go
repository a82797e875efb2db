package repository

import (
	"context"
	"fmt"

	"github.com/festa-kr/festa-api/internal/domain"
	"github.com/festa-kr/festa-api/internal/repository/dao"
)

type CommentDAO interface {
	Insert(ctx context.Context, comment dao.Comment) (dao.Comment, error)
	FindByFestivalID(ctx context.Context, festivalID uint) ([]dao.Comment, error)
}

type CommentRepository struct {
	dao CommentDAO
}

func NewCommentRepository(dao CommentDAO) *CommentRepository {
	return &CommentRepository{
		dao: dao,
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	created, err := r.dao.Insert(ctx, dao.Comment{
		FestivalID: comment.FestivalID,
		Nickname:   comment.Nickname,
		Content:    comment.Content,
	})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CommentRepository) FindByFestivalID(ctx context.Context, festivalID uint) ([]domain.Comment, error) {
	found, err := r.dao.FindByFestivalID(ctx, festivalID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByFestivalID -> %w", err)
	}

	comments := make([]domain.Comment, len(found))
	for i, c := range found {
		comments[i] = r.daoToDomain(c)
	}

	return comments, nil
}

func (r *CommentRepository) daoToDomain(c dao.Comment) domain.Comment {
	return domain.Comment{
		ID:         c.ID,
		FestivalID: c.FestivalID,
		Nickname:   c.Nickname,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
	}
}
