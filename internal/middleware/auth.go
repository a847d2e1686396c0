package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// Session roles. Each one travels in its own cookie, jwt_<role>.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RolePharma  = "pharma"
)

func CookieName(role string) string {
	return "jwt_" + role
}

// SessionAuth admits requests carrying a valid session cookie for role.
// A missing cookie is 401, a bad or expired token is 403.
func SessionAuth(cfg *config.Config, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName(role))
		if err != nil || tokenString == "" {
			httperr.Unauthorized(c, "unauthorized", "Unauthorized")
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {

			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			httperr.Forbidden(c, "invalid_token", "Invalid token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Forbidden(c, "invalid_token", "Invalid token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, subject(claims))
		c.Set(ContextUserRole, role)

		c.Next()
	}
}

// subject reads _id, falling back to sub.
func subject(claims jwt.MapClaims) string {
	if id, ok := claims["_id"].(string); ok {
		return id
	}
	sub, _ := claims.GetSubject()
	return sub
}

// Logout clears the role's session cookie.
func Logout(cfg *config.Config, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(CookieName(role), "", -1, "/", "", cfg.IsProduction(), true)
		c.JSON(200, gin.H{"success": true, "message": "Signout success!"})
	}
}
