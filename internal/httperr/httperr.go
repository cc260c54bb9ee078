package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the single error shape the API speaks.
type HTTPError struct {
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Unavailable(c *gin.Context, message string) {
	Write(c, http.StatusServiceUnavailable, message)
}
