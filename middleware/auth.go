package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/civic-lens/api-go/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves a bearer token to a principal. Token
// issuance lives in the identity provider; this side only verifies the
// signature and lifts {user_id, role} into the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.AbortWithError(c, http.StatusUnauthorized, utils.KindAuthentication, "Authorization header is required")
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 {
			utils.AbortWithError(c, http.StatusUnauthorized, utils.KindAuthentication, "Invalid token format")
			return
		}

		token := bearerToken[1]
		claims := jwt.MapClaims{}
		parsedToken, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !parsedToken.Valid {
			utils.AbortWithError(c, http.StatusUnauthorized, utils.KindAuthentication, "Invalid or expired token")
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			utils.AbortWithError(c, http.StatusUnauthorized, utils.KindAuthentication, "Invalid token claims")
			return
		}
		role, ok := claims["role"].(string)
		if !ok {
			utils.AbortWithError(c, http.StatusUnauthorized, utils.KindAuthentication, "Invalid token claims")
			return
		}

		userClaims := &utils.UserClaims{
			UserID: uint(userID),
			Role:   role,
		}

		c.Set(string(utils.UserContextKey), userClaims)

		c.Next()
	}
}

// RequireAdmin gates admin-only routes. Must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := utils.GetUser(c)
		if user == nil {
			utils.AbortWithError(c, http.StatusUnauthorized, utils.KindAuthentication, "Authentication required")
			return
		}
		if !user.IsAdmin() {
			utils.AbortWithError(c, http.StatusForbidden, utils.KindAuthorization, "Admin access required")
			return
		}
		c.Next()
	}
}
