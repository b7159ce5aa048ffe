package house

import (
	"context"

	domain "github.com/BruksfildServices01/house-hunting/internal/domain/house"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/models"
	"github.com/BruksfildServices01/house-hunting/internal/pagination"
)

type ListHouses struct {
	repo domain.Repository
}

func NewListHouses(repo domain.Repository) *ListHouses {
	return &ListHouses{repo: repo}
}

// Execute returns available, non-deleted listings newest first.
func (uc *ListHouses) Execute(
	ctx context.Context,
	p pagination.Params,
	f domain.Filters,
) (pagination.Result[models.House], error) {

	if f.MinRent != nil && f.MaxRent != nil && *f.MinRent > *f.MaxRent {
		return pagination.NewResult[models.House](nil, p, 0), nil
	}

	items, total, err := uc.repo.ListHouses(ctx, domain.Query{
		Status:  models.HouseAvailable,
		Filters: f,
		Offset:  p.Offset(),
		Limit:   p.PageSize,
	})
	if err != nil {
		return pagination.Result[models.House]{}, httperr.Internal(err)
	}

	return pagination.NewResult(items, p, total), nil
}
