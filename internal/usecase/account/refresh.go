package account

import (
	"context"
	"errors"
	"strings"

	domain "github.com/BruksfildServices01/house-hunting/internal/domain/account"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/store"
)

type Refresh struct {
	repo   domain.Repository
	tokens domain.TokenIssuer
}

func NewRefresh(repo domain.Repository, tokens domain.TokenIssuer) *Refresh {
	return &Refresh{repo: repo, tokens: tokens}
}

// Execute mints a new access token. The role always comes from the
// stored user, never from the refresh token. The refresh token itself is
// not rotated.
func (uc *Refresh) Execute(ctx context.Context, refreshToken string) (string, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return "", httperr.Validation(domain.MsgRefreshRequired)
	}

	claims, err := uc.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", httperr.Authentication(domain.MsgInvalidRefresh)
	}

	user, err := uc.repo.GetUserByID(ctx, claims.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return "", httperr.Authentication(domain.MsgInvalidRefresh)
	}
	if err != nil {
		return "", httperr.Internal(err)
	}

	access, err := uc.tokens.IssueAccessToken(domain.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return "", httperr.Internal(err)
	}
	return access, nil
}
