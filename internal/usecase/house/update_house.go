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

type UpdateHouse struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewUpdateHouse(repo domain.Repository, sink audit.Sink) *UpdateHouse {
	return &UpdateHouse{repo: repo, audit: sink}
}

// Execute applies the fields present in the payload. Ownership is
// checked before the payload is looked at.
func (uc *UpdateHouse) Execute(
	ctx context.Context,
	id account.Identity,
	houseID string,
	in domain.UpdateInput,
) (*models.House, error) {

	h, err := ownedHouse(ctx, uc.repo, id, houseID)
	if err != nil {
		return nil, err
	}

	changed, err := applyUpdate(h, in)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.SaveHouse(ctx, h); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, httperr.NotFound(domain.MsgHouseNotFound)
		}
		return nil, httperr.Internal(err)
	}

	uc.audit.Record(audit.Event{
		ActorID:  id.UserID,
		Action:   "house_updated",
		Entity:   "house",
		EntityID: h.ID,
		Metadata: map[string]any{"fields": changed},
	})

	h.Landlord = nil
	return h, nil
}

func applyUpdate(h *models.House, in domain.UpdateInput) ([]string, error) {
	c := coercer{}
	var changed []string

	str := func(field string, src *string, dst *string) {
		if src == nil {
			return
		}
		v := strings.TrimSpace(*src)
		if v == "" {
			c.fail(field)
			return
		}
		*dst = v
		changed = append(changed, field)
	}
	num := func(field string, src *domain.Text, dst *float64) {
		if src != nil {
			*dst = c.float(field, *src)
			changed = append(changed, field)
		}
	}
	whole := func(field string, src *domain.Text, dst *int) {
		if src != nil {
			*dst = c.int(field, *src)
			changed = append(changed, field)
		}
	}
	optNum := func(field string, src *domain.Text, dst **float64) {
		if src != nil {
			*dst = c.optFloat(field, *src)
			changed = append(changed, field)
		}
	}

	str("title", in.Title, &h.Title)
	str("description", in.Description, &h.Description)
	str("address", in.Address, &h.Address)
	str("city", in.City, &h.City)
	str("estate", in.Estate, &h.Estate)
	str("street", in.Street, &h.Street)

	if in.HouseType != nil {
		t := strings.ToLower(strings.TrimSpace(*in.HouseType))
		if !domain.ValidHouseType(t) {
			return nil, httperr.Validation(domain.MsgInvalidHouseType)
		}
		h.HouseType = t
		changed = append(changed, "houseType")
	}

	whole("bedrooms", in.Bedrooms, &h.Bedrooms)
	whole("bathrooms", in.Bathrooms, &h.Bathrooms)
	if in.Sqft != nil {
		h.Sqft = c.optInt("sqft", *in.Sqft)
		changed = append(changed, "sqft")
	}

	num("monthlyRent", in.MonthlyRent, &h.MonthlyRent)
	num("deposit", in.Deposit, &h.Deposit)
	num("latitude", in.Latitude, &h.Latitude)
	num("longitude", in.Longitude, &h.Longitude)
	optNum("waterCharge", in.WaterCharge, &h.WaterCharge)
	optNum("electricityCharge", in.ElectricityCharge, &h.ElectricityCharge)
	optNum("parkingCharge", in.ParkingCharge, &h.ParkingCharge)

	if in.AvailabilityDate != nil {
		h.AvailabilityDate = c.date("availabilityDate", *in.AvailabilityDate)
		changed = append(changed, "availabilityDate")
	}

	if err := c.err(); err != nil {
		return nil, err
	}
	if err := checkRanges(h); err != nil {
		return nil, err
	}
	return changed, nil
}
