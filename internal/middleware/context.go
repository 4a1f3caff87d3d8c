package middleware

import (
	"github.com/wegnite/saasTemplate/internal/models"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the user resolved by the Identity middleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
