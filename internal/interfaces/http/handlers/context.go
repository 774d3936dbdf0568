package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/localshop/storefront/internal/shared/constants"
)

// currentUserID returns the authenticated user ID, or "" for guests.
func currentUserID(c *gin.Context) string {
	v, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
