package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message is the error/message envelope used by the REST boundary.
// The web and mobile clients read the "message" field of non-2xx
// responses verbatim, so the shape must stay flat.
type Message struct {
	Message string `json:"message"`
}

// OK writes a 200 response with the given payload.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 response with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Error writes an arbitrary status with a human-readable message.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Message{Message: message})
}

// BadRequest writes a 400.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized writes a 401.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden writes a 403.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound writes a 404.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// TooManyRequests writes a 429.
func TooManyRequests(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, message)
}

// InternalError writes a 500 with a generic message.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Erreur serveur")
}
