package house

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/house-hunting/internal/domain/account"
	domain "github.com/BruksfildServices01/house-hunting/internal/domain/house"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/models"
	"github.com/BruksfildServices01/house-hunting/internal/store"
)

// ownedHouse resolves a listing and checks that id's user owns it.
// Missing listings fail before ownership is looked at.
func ownedHouse(
	ctx context.Context,
	repo domain.Repository,
	id account.Identity,
	houseID string,
) (*models.House, error) {

	h, err := repo.GetHouseOwner(ctx, houseID)
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

// landlordProfile resolves the acting landlord's profile; a missing one
// fails with a precondition error carrying msg.
func landlordProfile(
	ctx context.Context,
	repo domain.Repository,
	id account.Identity,
	msg string,
) (*models.LandlordProfile, error) {

	p, err := repo.GetLandlordProfileByUserID(ctx, id.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, httperr.Precondition(msg)
	}
	if err != nil {
		return nil, httperr.Internal(err)
	}
	return p, nil
}
