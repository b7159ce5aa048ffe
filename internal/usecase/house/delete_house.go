package house

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/house-hunting/internal/audit"
	"github.com/BruksfildServices01/house-hunting/internal/domain/account"
	domain "github.com/BruksfildServices01/house-hunting/internal/domain/house"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/store"
)

type DeleteHouse struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewDeleteHouse(repo domain.Repository, sink audit.Sink) *DeleteHouse {
	return &DeleteHouse{repo: repo, audit: sink}
}

// Execute soft-deletes the listing; its status is left as it was.
func (uc *DeleteHouse) Execute(ctx context.Context, id account.Identity, houseID string) error {
	h, err := ownedHouse(ctx, uc.repo, id, houseID)
	if err != nil {
		return err
	}

	if err := uc.repo.SoftDeleteHouse(ctx, h.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return httperr.NotFound(domain.MsgHouseNotFound)
		}
		return httperr.Internal(err)
	}

	uc.audit.Record(audit.Event{
		ActorID:  id.UserID,
		Action:   "house_deleted",
		Entity:   "house",
		EntityID: h.ID,
	})
	return nil
}
