package account

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/house-hunting/internal/domain/account"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
)

// Logout is a no-op unless a deny-list is configured, in which case the
// presented access token is revoked until it would have expired anyway.
type Logout struct {
	deny domain.DenyList
	now  func() time.Time
}

func NewLogout(deny domain.DenyList) *Logout {
	return &Logout{deny: deny, now: time.Now}
}

func (uc *Logout) Execute(ctx context.Context, s *domain.Session) error {
	if uc.deny == nil || s == nil || s.TokenID == "" {
		return nil
	}

	ttl := s.ExpiresAt.Sub(uc.now())
	if ttl <= 0 {
		return nil
	}

	if err := uc.deny.Revoke(ctx, s.TokenID, ttl); err != nil {
		return httperr.Internal(err)
	}
	return nil
}
