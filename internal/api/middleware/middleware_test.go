package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
	"github.com/mhrytsenko/theatre-booking-api/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

type fakeUserService struct {
	user domain.User
	err  error
}

func (f *fakeUserService) GetUser(_ context.Context, _ uint) (domain.User, error) {
	return f.user, f.err
}

func newProtectedRouter(svc StaffUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	group := router.Group("/", NewAuthenticator(testSigningKey).VerifyJWT())
	group.GET("/me", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"user_id": ctx.GetUint(ContextKeyUserID)})
	})

	staff := router.Group("/", NewAuthenticator(testSigningKey).VerifyJWT(), StaffOnly(svc))
	staff.POST("/staff-op", func(ctx *gin.Context) {
		ctx.Status(http.StatusNoContent)
	})

	return router
}

func bearerFor(t *testing.T, userID uint, userAgent string) string {
	t.Helper()

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), userID, userAgent)
	require.NoError(t, err)

	return "Bearer " + token
}

func TestVerifyJWT(t *testing.T) {
	router := newProtectedRouter(&fakeUserService{})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		resp := httptest.NewRecorder()

		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Token abc")
		resp := httptest.NewRecorder()

		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("token bound to a different user agent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", bearerFor(t, 7, "other-agent"))
		req.Header.Set("User-Agent", "test-agent")
		resp := httptest.NewRecorder()

		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", bearerFor(t, 7, "test-agent"))
		req.Header.Set("User-Agent", "test-agent")
		resp := httptest.NewRecorder()

		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"user_id":7`)
	})
}

func TestStaffOnly(t *testing.T) {
	send := func(router *gin.Engine) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/staff-op", nil)
		req.Header.Set("Authorization", bearerFor(t, 7, "test-agent"))
		req.Header.Set("User-Agent", "test-agent")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		return resp
	}

	t.Run("regular users are forbidden", func(t *testing.T) {
		router := newProtectedRouter(&fakeUserService{user: domain.User{ID: 7}})

		assert.Equal(t, http.StatusForbidden, send(router).Code)
	})

	t.Run("staff passes", func(t *testing.T) {
		router := newProtectedRouter(&fakeUserService{user: domain.User{ID: 7, IsStaff: true}})

		assert.Equal(t, http.StatusNoContent, send(router).Code)
	})

	t.Run("a deleted account is rejected", func(t *testing.T) {
		router := newProtectedRouter(&fakeUserService{err: errors.New("user not found")})

		assert.Equal(t, http.StatusUnauthorized, send(router).Code)
	})
}
