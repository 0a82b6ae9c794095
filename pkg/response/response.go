package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the error payload for every failed request.
type ErrorBody struct {
	Detail any `json:"detail"`
}

// JSON writes a success payload as-is. Success bodies are
// operation-specific, so there is no envelope around them.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Error writes the error payload and stops the handler chain.
func Error(c *gin.Context, status int, detail any) {
	c.AbortWithStatusJSON(status, ErrorBody{Detail: detail})
}
