package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}

// FromDomain maps core errors onto transport status codes:
// ValidationError → 400, NotFoundError → 404, everything else → 500.
// Internal failures surface their raw message rather than being masked.
func FromDomain(c *gin.Context, err error) {
	switch {
	case IsValidation(err):
		BadRequest(c, err.Error(), "Invalid request.")
	case IsNotFound(err):
		NotFound(c, err.Error(), "Not found.")
	default:
		Internal(c, "internal_error", err.Error())
	}
}
