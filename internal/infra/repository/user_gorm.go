package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/house-hunting/internal/domain/account"
	"github.com/BruksfildServices01/house-hunting/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

// EmailExists also sees soft-deleted users; an email is never reused.
func (r *UserGormRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Unscoped().
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *UserGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	return translate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *UserGormRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserGormRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// --------------------------------------------------
// Landlord profiles
// --------------------------------------------------

func (r *UserGormRepository) GetLandlordProfileByUserID(ctx context.Context, userID string) (*models.LandlordProfile, error) {
	return landlordProfileBy(ctx, r.db, "user_id = ?", userID)
}

func (r *UserGormRepository) CreateLandlordProfile(ctx context.Context, p *models.LandlordProfile) error {
	return translate(r.db.WithContext(ctx).Omit("User").Create(p).Error)
}

func landlordProfileBy(ctx context.Context, db *gorm.DB, cond string, arg any) (*models.LandlordProfile, error) {
	var p models.LandlordProfile
	if err := db.WithContext(ctx).Where(cond, arg).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

var _ account.Repository = (*UserGormRepository)(nil)
