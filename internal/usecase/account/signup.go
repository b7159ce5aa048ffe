package account

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/house-hunting/internal/domain/account"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/models"
	"github.com/BruksfildServices01/house-hunting/internal/store"
	"github.com/BruksfildServices01/house-hunting/internal/validators"
)

type SignupInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type AuthResult struct {
	User         domain.Profile `json:"user"`
	Token        string         `json:"token"`
	RefreshToken string         `json:"refreshToken"`
}

type Signup struct {
	repo   domain.Repository
	hasher domain.PasswordHasher
	tokens domain.TokenIssuer
}

func NewSignup(
	repo domain.Repository,
	hasher domain.PasswordHasher,
	tokens domain.TokenIssuer,
) *Signup {
	return &Signup{repo: repo, hasher: hasher, tokens: tokens}
}

// Execute creates an account with the given role and returns the
// advisory message to show alongside the new session.
func (uc *Signup) Execute(
	ctx context.Context,
	role string,
	in SignupInput,
) (*AuthResult, string, error) {

	// 1. Input
	if !domain.SignupRoles[role] {
		return nil, "", httperr.Validation(domain.MsgInvalidRole)
	}
	missing, err := validators.MissingFields(in)
	if err != nil {
		return nil, "", httperr.Internal(err)
	}
	if len(missing) > 0 {
		return nil, "", httperr.Validation(domain.MsgMissingSignupFields)
	}

	email := validators.NormalizeEmail(in.Email)
	if !validators.IsEmail(email) {
		return nil, "", httperr.Validation("Invalid email address")
	}

	// 2. Uniqueness
	exists, err := uc.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, "", httperr.Internal(err)
	}
	if exists {
		return nil, "", httperr.Conflict(domain.MsgEmailTaken)
	}

	// 3. Persist
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", httperr.Internal(err)
	}

	user := &models.User{
		Email:        email,
		Phone:        in.Phone,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
	}
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		// lost a race with a concurrent signup for the same email
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, "", httperr.Conflict(domain.MsgEmailTaken)
		}
		return nil, "", httperr.Internal(err)
	}

	// 4. Session
	res, err := issuePair(uc.tokens, user)
	if err != nil {
		return nil, "", err
	}

	msg := domain.MsgTenantCreated
	if role == models.RoleLandlord {
		msg = domain.MsgLandlordCreated
	}
	return res, msg, nil
}

func issuePair(tokens domain.TokenIssuer, u *models.User) (*AuthResult, error) {
	access, err := tokens.IssueAccessToken(domain.Identity{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
	})
	if err != nil {
		return nil, httperr.Internal(err)
	}

	refresh, err := tokens.IssueRefreshToken(u.ID, u.Email)
	if err != nil {
		return nil, httperr.Internal(err)
	}

	return &AuthResult{
		User:         domain.ProfileOf(u),
		Token:        access,
		RefreshToken: refresh,
	}, nil
}
