package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafeteria-yv/auth"
	"cafeteria-yv/models"
)

// GateMiddleware refuses admin mutations while the session gate is locked.
func GateMiddleware(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gate.Unlocked() {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Admin panel is locked. Sign in first",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
