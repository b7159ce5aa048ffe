package logger

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const ginKey = "logger"

// Into stores a request-scoped logger on the gin context.
func Into(c *gin.Context, l *zap.Logger) {
	c.Set(ginKey, l)
}

// From returns the request-scoped logger, falling back to the global one.
func From(c *gin.Context) *zap.Logger {
	if l, ok := c.Get(ginKey); ok {
		if zl, ok := l.(*zap.Logger); ok {
			return zl
		}
	}
	return zap.L()
}
