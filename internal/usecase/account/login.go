package account

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/house-hunting/internal/domain/account"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/store"
	"github.com/BruksfildServices01/house-hunting/internal/validators"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Login struct {
	repo   domain.Repository
	hasher domain.PasswordHasher
	tokens domain.TokenIssuer
}

func NewLogin(
	repo domain.Repository,
	hasher domain.PasswordHasher,
	tokens domain.TokenIssuer,
) *Login {
	return &Login{repo: repo, hasher: hasher, tokens: tokens}
}

func (uc *Login) Execute(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if validators.Blank(in.Email, in.Password) {
		return nil, httperr.Validation(domain.MsgMissingCredentials)
	}

	user, err := uc.repo.GetUserByEmail(ctx, validators.NormalizeEmail(in.Email))
	if errors.Is(err, store.ErrNotFound) {
		return nil, httperr.Authentication(domain.MsgInvalidCredentials)
	}
	if err != nil {
		return nil, httperr.Internal(err)
	}

	if err := uc.hasher.Compare(user.PasswordHash, in.Password); err != nil {
		return nil, httperr.Authentication(domain.MsgInvalidCredentials)
	}

	return issuePair(uc.tokens, user)
}
