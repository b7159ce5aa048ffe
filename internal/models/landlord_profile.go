package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	VerificationPending  = "PENDING"
	VerificationApproved = "APPROVED"
	VerificationRejected = "REJECTED"
)

type LandlordProfile struct {
	ID     string `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID string `gorm:"type:varchar(36);uniqueIndex;not null" json:"userId"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	Bio        *string `gorm:"type:text" json:"bio,omitempty"`
	IDType     string  `gorm:"size:32" json:"idType"`
	IDNumber   string  `gorm:"size:64" json:"-"`
	IDPhotoURL *string `gorm:"size:512" json:"idPhotoUrl,omitempty"`

	VerificationStatus string     `gorm:"size:16;not null;default:'PENDING'" json:"verificationStatus"`
	VerificationDate   *time.Time `json:"verificationDate,omitempty"`

	AverageRating     float64 `gorm:"not null;default:0" json:"averageRating"`
	TotalReviews      int     `gorm:"not null;default:0" json:"totalReviews"`
	ResponseTimeHours *int    `json:"responseTimeHours,omitempty"`
	IsActive          bool    `gorm:"not null;default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *LandlordProfile) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
