package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/house-hunting/internal/domain/account"
)

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

type AccessClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Type  string `json:"typ"`
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Type  string `json:"typ"`
	jwt.RegisteredClaims
}

type Config struct {
	AccessSecret  string
	RefreshSecret string
	Issuer        string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// Issuer signs HS256 access and refresh tokens with separate secrets.
type Issuer struct {
	cfg Config
	now func() time.Time
}

func NewIssuer(cfg Config) *Issuer {
	return &Issuer{cfg: cfg, now: time.Now}
}

// WithClock replaces the issuing clock.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	cp := *i
	cp.now = now
	return &cp
}

func (i *Issuer) registered(subject string, ttl time.Duration) jwt.RegisteredClaims {
	now := i.now()
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		Issuer:    i.cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (i *Issuer) IssueAccessToken(id account.Identity) (string, error) {
	claims := AccessClaims{
		ID:               id.UserID,
		Email:            id.Email,
		Role:             id.Role,
		Type:             typeAccess,
		RegisteredClaims: i.registered(id.UserID, i.cfg.AccessTTL),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(i.cfg.AccessSecret))
}

func (i *Issuer) IssueRefreshToken(userID, email string) (string, error) {
	claims := RefreshClaims{
		ID:               userID,
		Email:            email,
		Type:             typeRefresh,
		RegisteredClaims: i.registered(userID, i.cfg.RefreshTTL),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(i.cfg.RefreshSecret))
}

func (i *Issuer) ParseAccessToken(raw string) (*account.Session, error) {
	claims := &AccessClaims{}
	if err := parse(raw, claims, i.cfg.AccessSecret); err != nil {
		return nil, err
	}
	if claims.Type != typeAccess || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	s := &account.Session{
		Identity: account.Identity{
			UserID: claims.ID,
			Email:  claims.Email,
			Role:   claims.Role,
		},
		TokenID: claims.RegisteredClaims.ID,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}

func (i *Issuer) ParseRefreshToken(raw string) (*account.Refresh, error) {
	claims := &RefreshClaims{}
	if err := parse(raw, claims, i.cfg.RefreshSecret); err != nil {
		return nil, err
	}
	if claims.Type != typeRefresh || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return &account.Refresh{UserID: claims.ID, Email: claims.Email}, nil
}

func parse(raw string, claims jwt.Claims, secret string) error {
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return errors.Join(ErrInvalidToken, err)
	}
	if !tok.Valid {
		return ErrInvalidToken
	}
	return nil
}

var _ account.TokenIssuer = (*Issuer)(nil)
