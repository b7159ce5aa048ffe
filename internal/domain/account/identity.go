package account

import (
	"time"

	"github.com/BruksfildServices01/house-hunting/internal/models"
)

// Identity is what an access token asserts about its bearer.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

func (i Identity) Is(role string) bool {
	return i.Role == role
}

// Session is an authenticated request: the identity plus the token it
// came from.
type Session struct {
	Identity
	TokenID   string
	ExpiresAt time.Time
}

// SignupRoles are the roles that can be self-registered.
var SignupRoles = map[string]bool{
	models.RoleTenant:   true,
	models.RoleLandlord: true,
}

func ValidRole(role string) bool {
	switch role {
	case models.RoleTenant, models.RoleLandlord, models.RoleAdmin:
		return true
	}
	return false
}
