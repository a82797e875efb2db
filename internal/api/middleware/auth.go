package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/festa-kr/festa-api/internal/api/handler/v1/response"
	"github.com/festa-kr/festa-api/internal/pkg/jwthelper"
)

// ContextKeyUserID is where the authenticated user's ID is stored on the
// gin context after the JWT check passes.
const ContextKeyUserID = "userID"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.RenderErr(ctx, response.ErrUnauthorized("missing Authorization header"))
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			response.RenderErr(ctx, response.ErrUnauthorized("invalid Authorization header"))
			return
		}

		claims, err := jwthelper.VerifyJWT(token, a.signingKey)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized("invalid token"))
			return
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Next()
	}
}
