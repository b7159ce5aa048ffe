package account

import (
	"time"

	"github.com/BruksfildServices01/house-hunting/internal/models"
)

// Profile is the public projection of a user. It never carries
// credential fields.
type Profile struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Phone           string    `json:"phone"`
	Role            string    `json:"role"`
	IsVerified      bool      `json:"isVerified"`
	ProfilePhotoURL *string   `json:"profilePhotoUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func ProfileOf(u *models.User) Profile {
	return Profile{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Phone:           u.Phone,
		Role:            u.Role,
		IsVerified:      u.IsVerified,
		ProfilePhotoURL: u.ProfilePhotoURL,
		CreatedAt:       u.CreatedAt,
	}
}
