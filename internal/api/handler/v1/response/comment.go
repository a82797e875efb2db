package response

import (
	"github.com/festa-kr/festa-api/internal/domain"
)

type CommentList struct {
	Comments []domain.Comment `json:"comments"`
}

func NewCommentList(comments []domain.Comment) CommentList {
	if comments == nil {
		comments = []domain.Comment{}
	}

	return CommentList{
		Comments: comments,
	}
}
