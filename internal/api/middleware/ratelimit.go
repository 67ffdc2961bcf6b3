package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/mhrytsenko/theatre-booking-api/internal/api/handler/v1/response"
)

// RateLimitPerIP throttles an endpoint per client IP with a token bucket.
// Used on the token endpoint to slow down credential guessing.
func RateLimitPerIP(requestsPerMinute int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		limiter, ok := limiters[ip]
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60), requestsPerMinute)
			limiters[ip] = limiter
		}

		return limiter
	}

	return func(ctx *gin.Context) {
		if !limiterFor(ctx.ClientIP()).Allow() {
			response.RenderErr(ctx, response.ErrTooManyRequests())

			return
		}

		ctx.Next()
	}
}
