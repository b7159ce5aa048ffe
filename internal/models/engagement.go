package models

import (
	"time"

	"gorm.io/gorm"
)

// Review, Comment and Favorite are owned by features not served by this
// API yet. The tables exist so listing management can report counts.

type Review struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	HouseID          string  `gorm:"type:varchar(36);index;not null" json:"houseId"`
	TenantID         string  `gorm:"type:varchar(36);index;not null" json:"tenantId"`
	Rating           int     `gorm:"not null" json:"rating"`
	Title            *string `gorm:"size:200" json:"title,omitempty"`
	ReviewText       string  `gorm:"type:text" json:"reviewText"`
	ModerationStatus string  `gorm:"size:16;not null;default:'PENDING'" json:"moderationStatus"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Comment struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	HouseID          string `gorm:"type:varchar(36);index;not null" json:"houseId"`
	UserID           string `gorm:"type:varchar(36);index;not null" json:"userId"`
	CommentText      string `gorm:"type:text;not null" json:"commentText"`
	ModerationStatus string `gorm:"size:16;not null;default:'PENDING'" json:"moderationStatus"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Favorite struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TenantID string `gorm:"type:varchar(36);uniqueIndex:idx_favorite_tenant_house;not null" json:"tenantId"`
	HouseID  string `gorm:"type:varchar(36);uniqueIndex:idx_favorite_tenant_house;index;not null" json:"houseId"`

	CreatedAt time.Time `json:"createdAt"`
}
