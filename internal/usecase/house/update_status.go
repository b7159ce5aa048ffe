package house

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/house-hunting/internal/audit"
	"github.com/BruksfildServices01/house-hunting/internal/domain/account"
	domain "github.com/BruksfildServices01/house-hunting/internal/domain/house"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/models"
	"github.com/BruksfildServices01/house-hunting/internal/store"
)

type UpdateHouseStatus struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewUpdateHouseStatus(repo domain.Repository, sink audit.Sink) *UpdateHouseStatus {
	return &UpdateHouseStatus{repo: repo, audit: sink}
}

// Execute moves the listing to any of the four statuses.
func (uc *UpdateHouseStatus) Execute(
	ctx context.Context,
	id account.Identity,
	houseID string,
	status string,
) (*models.House, error) {

	h, err := ownedHouse(ctx, uc.repo, id, houseID)
	if err != nil {
		return nil, err
	}

	status = strings.ToUpper(strings.TrimSpace(status))
	if !domain.ValidStatus(status) {
		return nil, httperr.Validation(domain.MsgInvalidStatus)
	}

	previous := h.Status
	if err := uc.repo.UpdateHouseStatus(ctx, h.ID, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, httperr.NotFound(domain.MsgHouseNotFound)
		}
		return nil, httperr.Internal(err)
	}
	h.Status = status

	uc.audit.Record(audit.Event{
		ActorID:  id.UserID,
		Action:   "house_status_changed",
		Entity:   "house",
		EntityID: h.ID,
		Metadata: map[string]string{"from": previous, "to": status},
	})

	h.Landlord = nil
	return h, nil
}
