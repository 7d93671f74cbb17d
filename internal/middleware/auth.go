// Package middleware provides HTTP middleware for the trade journal service.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/anchalw11/website/internal/models"
	"github.com/anchalw11/website/internal/repository"
	"github.com/anchalw11/website/internal/service"
	"github.com/gin-gonic/gin"
)

// userContextKey is where Authenticate stores the resolved user.
const userContextKey = "auth_user"

// SetUser stores a resolved user on the request context. Authenticate calls
// this; tests use it to inject an identity directly.
func SetUser(c *gin.Context, user *models.User) {
	c.Set(userContextKey, user)
}

// UserFromContext returns the user resolved by Authenticate, if any.
func UserFromContext(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// Authenticate validates the bearer token on the request and loads the
// referenced user into the request context. Failure modes are terminal:
//
//	missing/malformed/invalid/expired token -> 401
//	token valid but user gone               -> 404
//	store fault                             -> 500
func Authenticate(jwtService service.JWTService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			abortJSON(c, http.StatusUnauthorized, "Missing or invalid token")
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			abortJSON(c, http.StatusUnauthorized, "Missing or invalid token")
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				abortJSON(c, http.StatusNotFound, "User not found")
				return
			}
			abortJSON(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		SetUser(c, user)
		c.Next()
	}
}

// RequirePlan rejects authenticated requests whose user is not on the given
// plan tier. Must be chained after Authenticate.
func RequirePlan(plan models.PlanType) gin.HandlerFunc {
	msg := planLabel(plan) + " plan required for access"
	return func(c *gin.Context) {
		user, ok := UserFromContext(c)
		if !ok {
			abortJSON(c, http.StatusUnauthorized, "Missing or invalid token")
			return
		}
		if user.PlanType != plan {
			abortJSON(c, http.StatusForbidden, msg)
			return
		}
		c.Next()
	}
}

// RequireEnterprise gates a route to enterprise-tier accounts.
func RequireEnterprise() gin.HandlerFunc {
	return RequirePlan(models.PlanEnterprise)
}

func planLabel(plan models.PlanType) string {
	s := string(plan)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func abortJSON(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
