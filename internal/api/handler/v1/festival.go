package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/festa-kr/festa-api/internal/api/handler/v1/request"
	"github.com/festa-kr/festa-api/internal/api/handler/v1/response"
	"github.com/festa-kr/festa-api/internal/domain"
	"github.com/festa-kr/festa-api/internal/service"
)

type FestivalService interface {
	ListFestivals(ctx context.Context, query string, page int) ([]domain.Festival, int64, error)
	GetFestival(ctx context.Context, id uint) (domain.Festival, error)
	CreateFestival(ctx context.Context, rec domain.ImportRecord) (domain.Festival, error)
	UpdateFestival(ctx context.Context, id uint, rec domain.ImportRecord) (domain.Festival, error)
	DeleteFestival(ctx context.Context, id uint) error
}

type FestivalHandler struct {
	svc     FestivalService
	userSvc UserGetter
}

func NewFestivalHandler(svc FestivalService, userSvc UserGetter) *FestivalHandler {
	return &FestivalHandler{
		svc:     svc,
		userSvc: userSvc,
	}
}

// HandleListFestivals godoc
// @Summary      List festivals
// @Tags         festivals
// @Produce      json
// @Param        q     query     string  false  "title search"
// @Param        page  query     int     false  "page number"
// @Success      200   {object}  response.FestivalList
// @Failure      500   {object}  response.Err
// @Router       /festivals [get]
func (h *FestivalHandler) HandleListFestivals(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	query := ctx.Query("q")

	fests, total, err := h.svc.ListFestivals(ctx.Request.Context(), query, page)
	if err != nil {
		err = fmt.Errorf("v1.HandleListFestivals -> h.svc.ListFestivals -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewFestivalList(fests, page, service.FestivalsPerPage, total))
}

// HandleGetFestival godoc
// @Summary      Get a festival by ID
// @Tags         festivals
// @Produce      json
// @Param        festivalID   path      int  true  "festival ID"
// @Success      200   {object}  response.FestivalDetail
// @Failure      400   {object}  response.Err
// @Failure      404   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /festivals/{festivalID} [get]
func (h *FestivalHandler) HandleGetFestival(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "festivalID")
	if !ok {
		return
	}

	fest, err := h.svc.GetFestival(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFestivalNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrFestivalNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetFestival -> h.svc.GetFestival -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewFestivalDetail(fest))
}

// HandleCreateFestival godoc
// @Summary      Create a festival (staff only)
// @Tags         festivals
// @Produce      json
// @Param        request   body      request.SaveFestivalRequest true "request body"
// @Success      201   {object}  response.FestivalDetail
// @Failure      400   {object}  response.Err
// @Failure      401   {object}  response.Err
// @Failure      403   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /festivals [post]
func (h *FestivalHandler) HandleCreateFestival(ctx *gin.Context) {
	if !h.requireStaff(ctx) {
		return
	}

	var req request.SaveFestivalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	fest, err := h.svc.CreateFestival(ctx.Request.Context(), req.ToRecord())
	if err != nil {
		if errors.Is(err, service.ErrEmptyIdentity) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrEmptyIdentity))

			return
		}

		err = fmt.Errorf("v1.HandleCreateFestival -> h.svc.CreateFestival -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.NewFestivalDetail(fest))
}

// HandleUpdateFestival godoc
// @Summary      Update a festival (staff only)
// @Tags         festivals
// @Produce      json
// @Param        festivalID   path      int  true  "festival ID"
// @Param        request   body      request.SaveFestivalRequest true "request body"
// @Success      200   {object}  response.FestivalDetail
// @Failure      400   {object}  response.Err
// @Failure      401   {object}  response.Err
// @Failure      403   {object}  response.Err
// @Failure      404   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /festivals/{festivalID} [put]
func (h *FestivalHandler) HandleUpdateFestival(ctx *gin.Context) {
	if !h.requireStaff(ctx) {
		return
	}

	id, ok := parseIDParam(ctx, "festivalID")
	if !ok {
		return
	}

	var req request.SaveFestivalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	fest, err := h.svc.UpdateFestival(ctx.Request.Context(), id, req.ToRecord())
	if err != nil {
		if errors.Is(err, service.ErrFestivalNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrFestivalNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateFestival -> h.svc.UpdateFestival -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewFestivalDetail(fest))
}

// HandleDeleteFestival godoc
// @Summary      Delete a festival (staff only)
// @Tags         festivals
// @Produce      json
// @Param        festivalID   path      int  true  "festival ID"
// @Success      204   "no content"
// @Failure      400   {object}  response.Err
// @Failure      401   {object}  response.Err
// @Failure      403   {object}  response.Err
// @Failure      404   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /festivals/{festivalID} [delete]
func (h *FestivalHandler) HandleDeleteFestival(ctx *gin.Context) {
	if !h.requireStaff(ctx) {
		return
	}

	id, ok := parseIDParam(ctx, "festivalID")
	if !ok {
		return
	}

	if err := h.svc.DeleteFestival(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrFestivalNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrFestivalNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteFestival -> h.svc.DeleteFestival -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *FestivalHandler) requireStaff(ctx *gin.Context) bool {
	user, err := getUserFromContext(ctx, h.userSvc)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized("user is not authenticated"))

		return false
	}

	if !user.IsStaff {
		response.RenderErr(ctx, response.ErrPermissionDenied("staff access required"))

		return false
	}

	return true
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid %v %q", name, raw)))

		return 0, false
	}

	return uint(id), true
}
