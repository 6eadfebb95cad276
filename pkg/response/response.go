package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Data      any               `json:"data,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
	CreatedAt time.Time         `json:"created_at,omitempty"`
}

func SendAPIResponse(c *gin.Context, code int, success bool, message string, data any) {
	resp := APIResponse{
		Success:   success,
		Message:   message,
		Data:      data,
		CreatedAt: time.Now(),
	}

	c.JSON(code, resp)
}

// SendValidationErrors reports per-field failure reasons in the same envelope.
func SendValidationErrors(c *gin.Context, code int, message string, fields map[string]string) {
	resp := APIResponse{
		Success:   false,
		Message:   message,
		Errors:    fields,
		CreatedAt: time.Now(),
	}

	c.JSON(code, resp)
}
