package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/civic-lens/api-go/config"
	"github.com/civic-lens/api-go/utils"

	"github.com/gin-gonic/gin"
)

// ReportRateLimiter caps report submissions per user per day using a
// Redis counter with a 24h TTL. A nil Redis client disables the limit.
// Must run after AuthMiddleware.
func ReportRateLimiter(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.RedisClient == nil {
			c.Next()
			return
		}

		user := utils.GetUser(c)
		if user == nil {
			utils.AbortWithError(c, http.StatusUnauthorized, utils.KindAuthentication, "Authentication required")
			return
		}

		ctx := config.Ctx
		userKey := fmt.Sprintf("report_limit:%d", user.UserID)

		count, err := config.RedisClient.Incr(ctx, userKey).Result()
		if err != nil {
			utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Rate limiter unavailable")
			return
		}

		// TTL starts on the first submission of the window.
		if count == 1 {
			if err := config.RedisClient.Expire(ctx, userKey, 24*time.Hour).Err(); err != nil {
				utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Rate limiter unavailable")
				return
			}
		}

		if count > int64(limit) {
			retryAfter, _ := config.RedisClient.TTL(ctx, userKey).Result()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": utils.ErrorBody{
					Kind:   utils.KindRateLimited,
					Detail: fmt.Sprintf("Daily report limit reached, retry in %.0fs", retryAfter.Seconds()),
				},
			})
			return
		}

		c.Next()
	}
}
