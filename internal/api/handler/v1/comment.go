package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/festa-kr/festa-api/internal/api/handler/v1/request"
	"github.com/festa-kr/festa-api/internal/api/handler/v1/response"
	"github.com/festa-kr/festa-api/internal/domain"
	"github.com/festa-kr/festa-api/internal/service"
)

type CommentService interface {
	AddComment(ctx context.Context, festivalID uint, nickname, content string) (domain.Comment, error)
	ListComments(ctx context.Context, festivalID uint) ([]domain.Comment, error)
}

type CommentHandler struct {
	svc CommentService
}

func NewCommentHandler(svc CommentService) *CommentHandler {
	return &CommentHandler{
		svc: svc,
	}
}

// HandleListComments godoc
// @Summary      List comments of a festival
// @Tags         comments
// @Produce      json
// @Param        festivalID   path      int  true  "festival ID"
// @Success      200   {object}  response.CommentList
// @Failure      400   {object}  response.Err
// @Failure      404   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /festivals/{festivalID}/comments [get]
func (h *CommentHandler) HandleListComments(ctx *gin.Context) {
	festivalID, ok := parseIDParam(ctx, "festivalID")
	if !ok {
		return
	}

	comments, err := h.svc.ListComments(ctx.Request.Context(), festivalID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListComments -> h.svc.ListComments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewCommentList(comments))
}

// HandleAddComment godoc
// @Summary      Add a comment to a festival
// @Tags         comments
// @Produce      json
// @Param        festivalID   path      int  true  "festival ID"
// @Param        request   body      request.AddCommentRequest true "request body"
// @Success      201   {object}  domain.Comment
// @Failure      400   {object}  response.Err
// @Failure      404   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /festivals/{festivalID}/comments [post]
func (h *CommentHandler) HandleAddComment(ctx *gin.Context) {
	festivalID, ok := parseIDParam(ctx, "festivalID")
	if !ok {
		return
	}

	var req request.AddCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	comment, err := h.svc.AddComment(ctx.Request.Context(), festivalID, req.Nickname, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFestivalNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrFestivalNotFound))
		case errors.Is(err, service.ErrCommentEmptyContent),
			errors.Is(err, service.ErrCommentTooLong),
			errors.Is(err, service.ErrCommentInvalidNickname):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleAddComment -> h.svc.AddComment -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, comment)
}
