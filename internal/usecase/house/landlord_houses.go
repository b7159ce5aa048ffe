package house

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/house-hunting/internal/domain/account"
	domain "github.com/BruksfildServices01/house-hunting/internal/domain/house"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/models"
	"github.com/BruksfildServices01/house-hunting/internal/pagination"
	"github.com/BruksfildServices01/house-hunting/internal/store"
)

// OwnedHouse is a listing as its landlord sees it in management views.
type OwnedHouse struct {
	models.House
	Count domain.Counts `json:"_count"`
}

type ListLandlordHouses struct {
	repo domain.Repository
}

func NewListLandlordHouses(repo domain.Repository) *ListLandlordHouses {
	return &ListLandlordHouses{repo: repo}
}

// ByLandlord is the public listing of one landlord profile.
func (uc *ListLandlordHouses) ByLandlord(
	ctx context.Context,
	landlordID string,
	p pagination.Params,
) (pagination.Result[models.House], error) {

	if _, err := uc.repo.GetLandlordProfileByID(ctx, landlordID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return pagination.Result[models.House]{}, httperr.NotFound(domain.MsgLandlordNotFound)
		}
		return pagination.Result[models.House]{}, httperr.Internal(err)
	}

	items, total, err := uc.repo.ListHouses(ctx, domain.Query{
		LandlordID: landlordID,
		Offset:     p.Offset(),
		Limit:      p.PageSize,
	})
	if err != nil {
		return pagination.Result[models.House]{}, httperr.Internal(err)
	}
	return pagination.NewResult(items, p, total), nil
}

// Mine lists the caller's own listings with engagement counts.
func (uc *ListLandlordHouses) Mine(
	ctx context.Context,
	id account.Identity,
	p pagination.Params,
) (pagination.Result[OwnedHouse], error) {

	if !id.Is(models.RoleLandlord) {
		return pagination.Result[OwnedHouse]{}, httperr.Authorization(account.MsgLandlordsOnly)
	}

	profile, err := landlordProfile(ctx, uc.repo, id, domain.MsgProfileNotFound)
	if err != nil {
		return pagination.Result[OwnedHouse]{}, err
	}

	items, total, err := uc.repo.ListHouses(ctx, domain.Query{
		LandlordID: profile.ID,
		Offset:     p.Offset(),
		Limit:      p.PageSize,
	})
	if err != nil {
		return pagination.Result[OwnedHouse]{}, httperr.Internal(err)
	}

	ids := make([]string, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	counts, err := uc.repo.CountEngagement(ctx, ids)
	if err != nil {
		return pagination.Result[OwnedHouse]{}, httperr.Internal(err)
	}

	owned := make([]OwnedHouse, len(items))
	for i, h := range items {
		h.Landlord = nil
		owned[i] = OwnedHouse{House: h, Count: counts[h.ID]}
	}
	return pagination.NewResult(owned, p, total), nil
}
