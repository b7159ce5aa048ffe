package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/house-hunting/internal/audit"
	"github.com/BruksfildServices01/house-hunting/internal/models"
	"github.com/BruksfildServices01/house-hunting/internal/pagination"
)

type AuditGormRepository struct {
	db *gorm.DB
}

func NewAuditGormRepository(db *gorm.DB) *AuditGormRepository {
	return &AuditGormRepository{db: db}
}

func (r *AuditGormRepository) WriteAuditLog(ctx context.Context, e *models.AuditLog) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AuditGormRepository) ListAuditLogs(
	ctx context.Context,
	actorID string,
	action string,
	p pagination.Params,
) ([]models.AuditLog, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("actor_id = ?", actorID)

	if action != "" {
		q = q.Where("action = ?", action)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(p.PageSize).
		Offset(p.Offset()).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

var _ audit.Store = (*AuditGormRepository)(nil)
