package account

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/house-hunting/internal/audit"
	domain "github.com/BruksfildServices01/house-hunting/internal/domain/account"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/models"
	"github.com/BruksfildServices01/house-hunting/internal/store"
)

type LandlordProfileInput struct {
	Bio        string `json:"bio"`
	IDType     string `json:"idType"`
	IDNumber   string `json:"idNumber"`
	IDPhotoURL string `json:"idPhotoUrl"`
}

type CreateLandlordProfile struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreateLandlordProfile(repo domain.Repository, sink audit.Sink) *CreateLandlordProfile {
	return &CreateLandlordProfile{repo: repo, audit: sink}
}

func (uc *CreateLandlordProfile) Execute(
	ctx context.Context,
	id domain.Identity,
	in LandlordProfileInput,
) (*models.LandlordProfile, error) {

	if !id.Is(models.RoleLandlord) {
		return nil, httperr.Authorization(domain.MsgLandlordsOnly)
	}
	if strings.TrimSpace(in.IDType) == "" || strings.TrimSpace(in.IDNumber) == "" {
		return nil, httperr.Validation(domain.MsgMissingProfileFields)
	}

	_, err := uc.repo.GetLandlordProfileByUserID(ctx, id.UserID)
	switch {
	case err == nil:
		return nil, httperr.Conflict(domain.MsgProfileExists)
	case !errors.Is(err, store.ErrNotFound):
		return nil, httperr.Internal(err)
	}

	p := &models.LandlordProfile{
		UserID:             id.UserID,
		IDType:             strings.TrimSpace(in.IDType),
		IDNumber:           strings.TrimSpace(in.IDNumber),
		VerificationStatus: models.VerificationPending,
		IsActive:           true,
	}
	if bio := strings.TrimSpace(in.Bio); bio != "" {
		p.Bio = &bio
	}
	if url := strings.TrimSpace(in.IDPhotoURL); url != "" {
		p.IDPhotoURL = &url
	}

	if err := uc.repo.CreateLandlordProfile(ctx, p); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, httperr.Conflict(domain.MsgProfileExists)
		}
		return nil, httperr.Internal(err)
	}

	uc.audit.Record(audit.Event{
		ActorID:  id.UserID,
		Action:   "landlord_profile_created",
		Entity:   "landlord_profile",
		EntityID: p.ID,
	})

	return p, nil
}

type GetLandlordProfile struct {
	repo domain.Repository
}

func NewGetLandlordProfile(repo domain.Repository) *GetLandlordProfile {
	return &GetLandlordProfile{repo: repo}
}

func (uc *GetLandlordProfile) Execute(ctx context.Context, id domain.Identity) (*models.LandlordProfile, error) {
	if !id.Is(models.RoleLandlord) {
		return nil, httperr.Authorization(domain.MsgLandlordsOnly)
	}

	p, err := uc.repo.GetLandlordProfileByUserID(ctx, id.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, httperr.NotFound(domain.MsgProfileNotFound)
	}
	if err != nil {
		return nil, httperr.Internal(err)
	}
	return p, nil
}
