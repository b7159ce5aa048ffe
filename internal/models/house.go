package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	HouseAvailable   = "AVAILABLE"
	HouseOccupied    = "OCCUPIED"
	HouseMaintenance = "MAINTENANCE"
	HouseDelisted    = "DELISTED"
)

type House struct {
	ID         string           `gorm:"type:varchar(36);primaryKey" json:"id"`
	LandlordID string           `gorm:"type:varchar(36);index;not null" json:"landlordId"`
	Landlord   *LandlordProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"landlord,omitempty"`

	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	HouseType   string `gorm:"size:16;not null" json:"houseType"`
	Bedrooms    int    `gorm:"not null" json:"bedrooms"`
	Bathrooms   int    `gorm:"not null" json:"bathrooms"`
	Sqft        *int   `json:"sqft,omitempty"`

	MonthlyRent       float64  `gorm:"not null;index" json:"monthlyRent"`
	Deposit           float64  `gorm:"not null" json:"deposit"`
	WaterCharge       *float64 `json:"waterCharge,omitempty"`
	ElectricityCharge *float64 `json:"electricityCharge,omitempty"`
	ParkingCharge     *float64 `json:"parkingCharge,omitempty"`

	Address   string  `gorm:"size:255;not null" json:"address"`
	City      string  `gorm:"size:100;not null;index" json:"city"`
	Estate    string  `gorm:"size:100;not null;index" json:"estate"`
	Street    string  `gorm:"size:150;not null" json:"street"`
	Latitude  float64 `gorm:"not null" json:"latitude"`
	Longitude float64 `gorm:"not null" json:"longitude"`

	AvailabilityDate time.Time `gorm:"not null" json:"availabilityDate"`
	Status           string    `gorm:"size:16;not null;default:'AVAILABLE';index" json:"status"`

	ViewCount     int     `gorm:"not null;default:0" json:"viewCount"`
	FavoriteCount int     `gorm:"not null;default:0" json:"favoriteCount"`
	AverageRating float64 `gorm:"not null;default:0" json:"averageRating"`
	TotalReviews  int     `gorm:"not null;default:0" json:"totalReviews"`

	Photos    []HousePhoto   `gorm:"constraint:OnDelete:CASCADE;" json:"photos,omitempty"`
	Amenities []HouseAmenity `gorm:"constraint:OnDelete:CASCADE;" json:"amenities,omitempty"`
	Rules     []HouseRule    `gorm:"constraint:OnDelete:CASCADE;" json:"rules,omitempty"`

	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

func (h *House) BeforeCreate(*gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

type HouseAmenity struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	HouseID string `gorm:"type:varchar(36);index;not null" json:"houseId"`
	Amenity string `gorm:"size:32;not null" json:"amenity"`
}

type HouseRule struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	HouseID string `gorm:"type:varchar(36);index;not null" json:"houseId"`
	Rule    string `gorm:"size:255;not null" json:"rule"`
}

type HousePhoto struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	HouseID      string    `gorm:"type:varchar(36);index;not null" json:"houseId"`
	PhotoURL     string    `gorm:"size:512;not null" json:"photoUrl"`
	StorageKey   string    `gorm:"size:255" json:"-"`
	Caption      *string   `gorm:"size:255" json:"caption,omitempty"`
	DisplayOrder int       `gorm:"not null;default:0" json:"displayOrder"`
	IsPrimary    bool      `gorm:"not null;default:false" json:"isPrimary"`
	UploadedAt   time.Time `gorm:"autoCreateTime" json:"uploadedAt"`
}
