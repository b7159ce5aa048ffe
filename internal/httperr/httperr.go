package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/house-hunting/internal/logger"
)

type body struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func Status(k Kind) int {
	switch k {
	case KindValidation, KindPrecondition:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Write aborts the request with a failure envelope.
func Write(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, body{Success: false, Error: message})
}

// Respond maps err to its status code and a caller-safe message.
// Internal causes are logged and only exposed in debug mode.
func Respond(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
	}

	msg := e.Message
	if e.Kind == KindInternal {
		logger.From(c).Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		if gin.IsDebugging() && e.Err != nil {
			msg = e.Err.Error()
		}
	}

	Write(c, Status(e.Kind), msg)
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Write(c, http.StatusForbidden, message)
}

func NotFoundRoute(c *gin.Context) {
	Write(c, http.StatusNotFound, "Route not found")
}
