package house

import (
	"context"

	"github.com/BruksfildServices01/house-hunting/internal/models"
)

// Query selects a page of listings. Soft-deleted rows are always
// excluded.
type Query struct {
	Status     string
	LandlordID string
	Filters
	Offset int
	Limit  int
}

// Counts are the engagement rows attached to a listing.
type Counts struct {
	Reviews   int64 `json:"reviews"`
	Comments  int64 `json:"comments"`
	Favorites int64 `json:"favorites"`
}

// Repository returns store.ErrNotFound for missing or soft-deleted rows
// unless the method says otherwise.
type Repository interface {
	GetLandlordProfileByUserID(ctx context.Context, userID string) (*models.LandlordProfile, error)
	GetLandlordProfileByID(ctx context.Context, id string) (*models.LandlordProfile, error)

	// ListHouses returns the page with its landlord summary, primary
	// photo and amenities, newest first, together with the total.
	ListHouses(ctx context.Context, q Query) ([]models.House, int64, error)
	CountEngagement(ctx context.Context, houseIDs []string) (map[string]Counts, error)

	// GetHouse loads the full detail view.
	GetHouse(ctx context.Context, id string) (*models.House, error)
	// GetHouseIncludingDeleted is the owner management view.
	GetHouseIncludingDeleted(ctx context.Context, id string) (*models.House, error)
	// GetHouseOwner loads the listing with its landlord profile only.
	GetHouseOwner(ctx context.Context, id string) (*models.House, error)

	// CreateHouse persists the listing with its amenities and rules atomically.
	CreateHouse(ctx context.Context, h *models.House) error
	// SaveHouse writes scalar columns only.
	SaveHouse(ctx context.Context, h *models.House) error
	SoftDeleteHouse(ctx context.Context, id string) error
	UpdateHouseStatus(ctx context.Context, id, status string) error
	IncrementViewCount(ctx context.Context, id string) error

	// AddPhotos appends photos after the listing's existing ones. Display
	// order and the primary flag are assigned atomically: the first new
	// photo becomes primary only when the listing has none.
	AddPhotos(ctx context.Context, houseID string, photos []models.HousePhoto) error
}

type PhotoStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (url string, err error)
	Delete(ctx context.Context, keys ...string) error
}
