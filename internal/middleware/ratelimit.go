package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"

	"github.com/eventra/backend/pkg/response"
)

// RateLimit returns a per-client-IP rate limiting middleware backed by Redis.
// Used on the auth endpoints to slow down credential stuffing. If the limiter
// itself fails (Redis down) the request is allowed through.
func RateLimit(rdb *redis.Client, perMinute int) gin.HandlerFunc {
	limiter := redis_rate.NewLimiter(rdb)
	return func(c *gin.Context) {
		key := "ratelimit:auth:" + c.ClientIP()
		res, err := limiter.Allow(c.Request.Context(), key, redis_rate.PerMinute(perMinute))
		if err != nil {
			c.Next()
			return
		}
		if res.Allowed == 0 {
			response.TooManyRequests(c, "too many requests, try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
