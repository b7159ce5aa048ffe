package house

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/house-hunting/internal/domain/account"
	domain "github.com/BruksfildServices01/house-hunting/internal/domain/house"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/jobs"
	"github.com/BruksfildServices01/house-hunting/internal/models"
	"github.com/BruksfildServices01/house-hunting/internal/store"
)

type GetHouse struct {
	repo  domain.Repository
	queue jobs.Submitter
	log   *zap.Logger
}

func NewGetHouse(repo domain.Repository, queue jobs.Submitter, log *zap.Logger) *GetHouse {
	return &GetHouse{repo: repo, queue: queue, log: log}
}

// Execute loads the public detail view. Soft-deleted listings are not
// public. The view counter is bumped on the background queue; its
// outcome never reaches the caller.
func (uc *GetHouse) Execute(ctx context.Context, id string) (*models.House, error) {
	h, err := uc.repo.GetHouse(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, httperr.NotFound(domain.MsgHouseNotFound)
	}
	if err != nil {
		return nil, httperr.Internal(err)
	}

	houseID := h.ID
	if !uc.queue.Submit(jobs.Job{
		Name: "house.view_count",
		Run: func(ctx context.Context) error {
			return uc.repo.IncrementViewCount(ctx, houseID)
		},
	}) {
		uc.log.Debug("view count not recorded", zap.String("house_id", houseID))
	}

	return h, nil
}

type GetOwnHouse struct {
	repo domain.Repository
}

func NewGetOwnHouse(repo domain.Repository) *GetOwnHouse {
	return &GetOwnHouse{repo: repo}
}

// Execute is the owner management view; it includes soft-deleted
// listings and does not count as a view.
func (uc *GetOwnHouse) Execute(ctx context.Context, id account.Identity, houseID string) (*models.House, error) {
	if !id.Is(models.RoleLandlord) {
		return nil, httperr.Authorization(account.MsgLandlordsOnly)
	}

	h, err := uc.repo.GetHouseIncludingDeleted(ctx, houseID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, httperr.NotFound(domain.MsgHouseNotFound)
	}
	if err != nil {
		return nil, httperr.Internal(err)
	}

	if h.Landlord == nil || h.Landlord.UserID != id.UserID {
		return nil, httperr.Authorization(domain.MsgNotOwner)
	}
	return h, nil
}
