package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleTenant   = "TENANT"
	RoleLandlord = "LANDLORD"
	RoleAdmin    = "ADMIN"
)

type User struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`

	Email        string `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"size:32;not null" json:"phone"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FirstName    string `gorm:"size:100;not null" json:"firstName"`
	LastName     string `gorm:"size:100;not null" json:"lastName"`
	Role         string `gorm:"size:16;not null;index" json:"role"`

	IsVerified      bool    `gorm:"not null;default:false" json:"isVerified"`
	ProfilePhotoURL *string `gorm:"size:512" json:"profilePhotoUrl,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
