package middleware

import (
	"net/http"

	"travelapi/internal/domain/models"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// Authenticator resolves an Authorization header to a user.
type Authenticator interface {
	Authenticate(header string) (models.CurrentUser, error)
}

// RequireBearer rejects requests without a valid bearer token with 401 and
// stores the resolved user on the context otherwise.
func RequireBearer(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      err.Error(),
				"detail":     err.Error(),
				"code":       "unauthorized",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireBearer.
func CurrentUser(c *gin.Context) (models.CurrentUser, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return models.CurrentUser{}, false
	}
	user, ok := v.(models.CurrentUser)
	return user, ok
}
