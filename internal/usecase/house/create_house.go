package house

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/house-hunting/internal/audit"
	"github.com/BruksfildServices01/house-hunting/internal/domain/account"
	domain "github.com/BruksfildServices01/house-hunting/internal/domain/house"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/models"
	"github.com/BruksfildServices01/house-hunting/internal/validators"
)

type CreateHouse struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreateHouse(repo domain.Repository, sink audit.Sink) *CreateHouse {
	return &CreateHouse{repo: repo, audit: sink}
}

func (uc *CreateHouse) Execute(
	ctx context.Context,
	id account.Identity,
	in domain.CreateInput,
) (*models.House, error) {

	// 1. Role
	if !id.Is(models.RoleLandlord) {
		return nil, httperr.Authorization(domain.MsgLandlordsOnly)
	}

	// 2. Required fields
	missing, err := validators.MissingFields(in)
	if err != nil {
		return nil, httperr.Internal(err)
	}
	if len(missing) > 0 {
		return nil, httperr.Validation(domain.MsgMissingFields + ": " + strings.Join(missing, ", "))
	}

	h, err := buildHouse(in)
	if err != nil {
		return nil, err
	}

	// 3. Landlord profile
	profile, err := landlordProfile(ctx, uc.repo, id, domain.MsgProfileRequired)
	if err != nil {
		return nil, err
	}
	h.LandlordID = profile.ID

	// 4. Persist with children
	if err := uc.repo.CreateHouse(ctx, h); err != nil {
		return nil, httperr.Internal(err)
	}

	uc.audit.Record(audit.Event{
		ActorID:  id.UserID,
		Action:   "house_created",
		Entity:   "house",
		EntityID: h.ID,
		Metadata: map[string]any{"title": h.Title, "city": h.City},
	})

	return h, nil
}

func buildHouse(in domain.CreateInput) (*models.House, error) {
	c := coercer{}

	h := &models.House{
		Title:             strings.TrimSpace(in.Title),
		Description:       strings.TrimSpace(in.Description),
		HouseType:         strings.ToLower(strings.TrimSpace(in.HouseType)),
		Bedrooms:          c.int("bedrooms", in.Bedrooms),
		Bathrooms:         c.int("bathrooms", in.Bathrooms),
		Sqft:              c.optInt("sqft", in.Sqft),
		MonthlyRent:       c.float("monthlyRent", in.MonthlyRent),
		Deposit:           c.float("deposit", in.Deposit),
		WaterCharge:       c.optFloat("waterCharge", in.WaterCharge),
		ElectricityCharge: c.optFloat("electricityCharge", in.ElectricityCharge),
		ParkingCharge:     c.optFloat("parkingCharge", in.ParkingCharge),
		Address:           strings.TrimSpace(in.Address),
		City:              strings.TrimSpace(in.City),
		Estate:            strings.TrimSpace(in.Estate),
		Street:            strings.TrimSpace(in.Street),
		Latitude:          c.float("latitude", in.Latitude),
		Longitude:         c.float("longitude", in.Longitude),
		AvailabilityDate:  c.date("availabilityDate", in.AvailabilityDate),
		Status:            models.HouseAvailable,
	}
	if err := c.err(); err != nil {
		return nil, err
	}

	if !domain.ValidHouseType(h.HouseType) {
		return nil, httperr.Validation(domain.MsgInvalidHouseType)
	}
	if err := checkRanges(h); err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	for _, a := range in.Amenities {
		a = strings.ToLower(strings.TrimSpace(a))
		if !domain.ValidAmenity(a) {
			return nil, httperr.Validation(domain.MsgInvalidAmenity + ": " + a)
		}
		if seen[a] {
			continue
		}
		seen[a] = true
		h.Amenities = append(h.Amenities, models.HouseAmenity{Amenity: a})
	}

	for _, r := range in.Rules {
		if r = strings.TrimSpace(r); r != "" {
			h.Rules = append(h.Rules, models.HouseRule{Rule: r})
		}
	}

	return h, nil
}

func checkRanges(h *models.House) error {
	switch {
	case h.Bedrooms < 0 || h.Bathrooms < 0:
		return httperr.Validation("Room counts cannot be negative")
	case h.MonthlyRent < 0 || h.Deposit < 0:
		return httperr.Validation("Rent and deposit cannot be negative")
	case h.Latitude < -90 || h.Latitude > 90 || h.Longitude < -180 || h.Longitude > 180:
		return httperr.Validation("Coordinates are out of range")
	}
	return nil
}
