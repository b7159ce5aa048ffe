package repository

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/house-hunting/internal/domain/house"
	"github.com/BruksfildServices01/house-hunting/internal/models"
	"github.com/BruksfildServices01/house-hunting/internal/store"
)

// editable are the columns an owner may change through SaveHouse.
var editable = []string{
	"title", "description", "house_type", "bedrooms", "bathrooms", "sqft",
	"monthly_rent", "deposit", "water_charge", "electricity_charge", "parking_charge",
	"address", "city", "estate", "street", "latitude", "longitude",
	"availability_date", "updated_at",
}

type HouseGormRepository struct {
	db *gorm.DB
}

func NewHouseGormRepository(db *gorm.DB) *HouseGormRepository {
	return &HouseGormRepository{db: db}
}

// --------------------------------------------------
// Landlord profiles
// --------------------------------------------------

func (r *HouseGormRepository) GetLandlordProfileByUserID(ctx context.Context, userID string) (*models.LandlordProfile, error) {
	return landlordProfileBy(ctx, r.db, "user_id = ?", userID)
}

func (r *HouseGormRepository) GetLandlordProfileByID(ctx context.Context, id string) (*models.LandlordProfile, error) {
	return landlordProfileBy(ctx, r.db, "id = ?", id)
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *HouseGormRepository) filtered(ctx context.Context, q domain.Query) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&models.House{})

	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.LandlordID != "" {
		tx = tx.Where("landlord_id = ?", q.LandlordID)
	}
	if q.City != "" {
		tx = tx.Where("city = ?", q.City)
	}
	if q.Estate != "" {
		tx = tx.Where("estate = ?", q.Estate)
	}
	if q.MinRent != nil {
		tx = tx.Where("monthly_rent >= ?", *q.MinRent)
	}
	if q.MaxRent != nil {
		tx = tx.Where("monthly_rent <= ?", *q.MaxRent)
	}
	return tx
}

func (r *HouseGormRepository) ListHouses(ctx context.Context, q domain.Query) ([]models.House, int64, error) {
	var (
		houses []models.House
		total  int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.filtered(gctx, q).Count(&total).Error
	})

	g.Go(func() error {
		tx := r.filtered(gctx, q).
			Preload("Landlord").
			Preload("Landlord.User", func(db *gorm.DB) *gorm.DB {
				return db.Select("id", "first_name", "last_name", "profile_photo_url")
			}).
			Preload("Photos", "is_primary = ?", true).
			Preload("Amenities").
			Order("created_at DESC").
			Offset(q.Offset)
		if q.Limit > 0 {
			tx = tx.Limit(q.Limit)
		}
		return tx.Find(&houses).Error
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return houses, total, nil
}

func (r *HouseGormRepository) CountEngagement(ctx context.Context, houseIDs []string) (map[string]domain.Counts, error) {
	out := make(map[string]domain.Counts, len(houseIDs))
	if len(houseIDs) == 0 {
		return out, nil
	}

	type row struct {
		HouseID string
		N       int64
	}
	count := func(model any) ([]row, error) {
		var rows []row
		err := r.db.WithContext(ctx).
			Model(model).
			Select("house_id, COUNT(*) AS n").
			Where("house_id IN ?", houseIDs).
			Group("house_id").
			Scan(&rows).Error
		return rows, err
	}

	reviews, err := count(&models.Review{})
	if err != nil {
		return nil, err
	}
	comments, err := count(&models.Comment{})
	if err != nil {
		return nil, err
	}
	favorites, err := count(&models.Favorite{})
	if err != nil {
		return nil, err
	}

	for _, rw := range reviews {
		c := out[rw.HouseID]
		c.Reviews = rw.N
		out[rw.HouseID] = c
	}
	for _, rw := range comments {
		c := out[rw.HouseID]
		c.Comments = rw.N
		out[rw.HouseID] = c
	}
	for _, rw := range favorites {
		c := out[rw.HouseID]
		c.Favorites = rw.N
		out[rw.HouseID] = c
	}
	return out, nil
}

func (r *HouseGormRepository) detail(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Landlord").
		Preload("Landlord.User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "first_name", "last_name", "email", "phone", "profile_photo_url")
		}).
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Amenities").
		Preload("Rules")
}

func (r *HouseGormRepository) GetHouse(ctx context.Context, id string) (*models.House, error) {
	var h models.House
	if err := r.detail(r.db.WithContext(ctx)).Where("id = ?", id).First(&h).Error; err != nil {
		return nil, translate(err)
	}
	return &h, nil
}

func (r *HouseGormRepository) GetHouseIncludingDeleted(ctx context.Context, id string) (*models.House, error) {
	var h models.House
	if err := r.detail(r.db.WithContext(ctx).Unscoped()).Where("id = ?", id).First(&h).Error; err != nil {
		return nil, translate(err)
	}
	return &h, nil
}

func (r *HouseGormRepository) GetHouseOwner(ctx context.Context, id string) (*models.House, error) {
	var h models.House
	if err := r.db.WithContext(ctx).Preload("Landlord").Where("id = ?", id).First(&h).Error; err != nil {
		return nil, translate(err)
	}
	return &h, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *HouseGormRepository) CreateHouse(ctx context.Context, h *models.House) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Landlord", "Photos").Create(h).Error
	})
}

func (r *HouseGormRepository) SaveHouse(ctx context.Context, h *models.House) error {
	res := r.db.WithContext(ctx).
		Model(h).
		Select(editable).
		Omit(clause.Associations).
		Updates(h)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *HouseGormRepository) SoftDeleteHouse(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.House{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *HouseGormRepository) UpdateHouseStatus(ctx context.Context, id, status string) error {
	return r.updateColumn(ctx, id, "status", status)
}

// IncrementViewCount bumps the counter in SQL so concurrent views add up.
func (r *HouseGormRepository) IncrementViewCount(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&models.House{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *HouseGormRepository) updateColumn(ctx context.Context, id, column string, value any) error {
	res := r.db.WithContext(ctx).
		Model(&models.House{}).
		Where("id = ?", id).
		Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Photos
// --------------------------------------------------

func (r *HouseGormRepository) AddPhotos(ctx context.Context, houseID string, photos []models.HousePhoto) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// row lock serializes concurrent uploads to the same listing
		var owner models.House
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", houseID).
			Take(&owner).Error
		if err != nil {
			return translate(err)
		}

		var stats struct {
			N         int64
			Primaries int64
		}
		err = tx.Model(&models.HousePhoto{}).
			Select("COUNT(*) AS n, COUNT(*) FILTER (WHERE is_primary) AS primaries").
			Where("house_id = ?", houseID).
			Scan(&stats).Error
		if err != nil {
			return err
		}

		for i := range photos {
			photos[i].HouseID = houseID
			photos[i].DisplayOrder = int(stats.N) + i
			photos[i].IsPrimary = stats.Primaries == 0 && i == 0
		}
		return tx.Create(&photos).Error
	})
}

var _ domain.Repository = (*HouseGormRepository)(nil)
