package v1

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mhrytsenko/theatre-booking-api/internal/api/handler/v1/response"
)

// ContextKeyUserID must match the key the auth middleware sets.
const ContextKeyUserID = "userID"

func parseIDParam(ctx *gin.Context, name string) (uint, *response.Err) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %v (%v)", name, raw))
	}

	return uint(id), nil
}

// parseIDList splits a comma-separated query value into ids, silently
// skipping blanks and non-numeric entries the way the listing filters expect.
func parseIDList(raw string) []uint {
	if raw == "" {
		return nil
	}

	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil || id == 0 {
			continue
		}
		ids = append(ids, uint(id))
	}

	return ids
}

func userIDFromContext(ctx *gin.Context) (uint, *response.Err) {
	userID := ctx.GetUint(ContextKeyUserID)
	if userID == 0 {
		return 0, response.ErrUnauthorized("authentication required")
	}

	return userID, nil
}
