package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/house-hunting/internal/domain/account"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/logger"
	"github.com/BruksfildServices01/house-hunting/internal/models"
)

const ContextSession = "session"

const (
	MsgMissingHeader = "Missing or invalid authorization header"
	MsgInvalidToken  = "Invalid or expired token"
)

// Authenticate resolves the bearer token into a session. The role claim is
// trusted as issued; it is not re-read from the store per request.
// deny may be nil.
func Authenticate(tokens account.TokenIssuer, deny account.DenyList) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearer(c.GetHeader("Authorization"))
		if !ok {
			httperr.Unauthorized(c, MsgMissingHeader)
			return
		}

		sess, err := tokens.ParseAccessToken(raw)
		if err != nil {
			httperr.Unauthorized(c, MsgInvalidToken)
			return
		}

		if deny != nil && sess.TokenID != "" {
			revoked, err := deny.IsRevoked(c.Request.Context(), sess.TokenID)
			if err != nil {
				// fail open
				logger.From(c).Warn("deny-list lookup failed", zap.Error(err))
			} else if revoked {
				httperr.Unauthorized(c, MsgInvalidToken)
				return
			}
		}

		c.Set(ContextSession, sess)
		logger.Into(c, logger.From(c).With(zap.String("user_id", sess.UserID)))
		c.Next()
	}
}

func bearer(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	raw := strings.TrimSpace(header[len(prefix):])
	return raw, raw != ""
}

func SessionFrom(c *gin.Context) *account.Session {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil
	}
	s, _ := v.(*account.Session)
	return s
}

// IdentityFrom returns nil on unauthenticated requests.
func IdentityFrom(c *gin.Context) *account.Identity {
	if s := SessionFrom(c); s != nil {
		return &s.Identity
	}
	return nil
}

var roleMessages = map[string]string{
	models.RoleLandlord: "Only landlords can access this resource",
	models.RoleTenant:   "Only tenants can access this resource",
	models.RoleAdmin:    "Only admins can access this resource",
}

// RequireRole must run after Authenticate.
func RequireRole(role string) gin.HandlerFunc {
	msg, ok := roleMessages[role]
	if !ok {
		msg = "You do not have access to this resource"
	}
	return func(c *gin.Context) {
		id := IdentityFrom(c)
		if id == nil || !id.Is(role) {
			httperr.Forbidden(c, msg)
			return
		}
		c.Next()
	}
}
