package account

import (
	"context"
	"time"

	"github.com/BruksfildServices01/house-hunting/internal/models"
)

// Repository returns store.ErrNotFound for missing rows and
// store.ErrDuplicateKey for unique violations.
type Repository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	GetLandlordProfileByUserID(ctx context.Context, userID string) (*models.LandlordProfile, error)
	CreateLandlordProfile(ctx context.Context, p *models.LandlordProfile) error
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// Refresh is what a verified refresh token asserts. It carries
// no role.
type Refresh struct {
	UserID string
	Email  string
}

type TokenIssuer interface {
	IssueAccessToken(id Identity) (string, error)
	IssueRefreshToken(userID, email string) (string, error)
	ParseAccessToken(raw string) (*Session, error)
	ParseRefreshToken(raw string) (*Refresh, error)
}

// DenyList records access tokens revoked before their natural expiry.
type DenyList interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
