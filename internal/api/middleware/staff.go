package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/mhrytsenko/theatre-booking-api/internal/api/handler/v1/response"
	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
)

type StaffUserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

// StaffOnly gates mutating catalog and scheduling endpoints. The staff flag
// is read from the store on every request rather than baked into the token,
// so revocation is immediate. Must run after VerifyJWT.
func StaffOnly(svc StaffUserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := ctx.GetUint(ContextKeyUserID)
		if userID == 0 {
			response.RenderErr(ctx, response.ErrUnauthorized("authentication required"))

			return
		}

		user, err := svc.GetUser(ctx.Request.Context(), userID)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized("authentication required"))

			return
		}

		if !user.IsStaff {
			response.RenderErr(ctx, response.ErrForbidden("staff access required"))

			return
		}

		ctx.Next()
	}
}
