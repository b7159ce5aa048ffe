package account

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/house-hunting/internal/domain/account"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/store"
)

type GetCurrentUser struct {
	repo domain.Repository
}

func NewGetCurrentUser(repo domain.Repository) *GetCurrentUser {
	return &GetCurrentUser{repo: repo}
}

func (uc *GetCurrentUser) Execute(ctx context.Context, id *domain.Identity) (*domain.Profile, error) {
	if id == nil || id.UserID == "" {
		return nil, httperr.Authentication(domain.MsgNotAuthenticated)
	}

	user, err := uc.repo.GetUserByID(ctx, id.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, httperr.NotFound(domain.MsgUserNotFound)
	}
	if err != nil {
		return nil, httperr.Internal(err)
	}

	p := domain.ProfileOf(user)
	return &p, nil
}
