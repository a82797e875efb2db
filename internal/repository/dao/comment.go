package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID         uint   `gorm:"primaryKey"`
	FestivalID uint   `gorm:"not null;index"`
	Nickname   string `gorm:"size:30;not null"`
	Content    string `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

type CommentDAO struct {
	db *gorm.DB
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{
		db: db,
	}
}

func (d *CommentDAO) Insert(ctx context.Context, comment Comment) (Comment, error) {
	result := d.db.WithContext(ctx).Create(&comment)
	if result.Error != nil {
		return Comment{}, result.Error
	}

	return comment, nil
}

func (d *CommentDAO) FindByFestivalID(ctx context.Context, festivalID uint) ([]Comment, error) {
	var comments []Comment
	result := d.db.WithContext(ctx).
		Where("festival_id = ?", festivalID).
		Order("created_at DESC").
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}

	return comments, nil
}
