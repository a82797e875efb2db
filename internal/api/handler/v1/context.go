package v1

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/festa-kr/festa-api/internal/api/middleware"
	"github.com/festa-kr/festa-api/internal/domain"
)

var errNotAuthenticated = errors.New("user is not authenticated")

type UserGetter interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

// getUserFromContext loads the user whose ID the JWT middleware stored on
// the request context.
func getUserFromContext(ctx *gin.Context, svc UserGetter) (domain.User, error) {
	raw, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return domain.User{}, errNotAuthenticated
	}

	userID, ok := raw.(uint)
	if !ok {
		return domain.User{}, errNotAuthenticated
	}

	user, err := svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}
