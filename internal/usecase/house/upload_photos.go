package house

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/house-hunting/internal/audit"
	"github.com/BruksfildServices01/house-hunting/internal/domain/account"
	domain "github.com/BruksfildServices01/house-hunting/internal/domain/house"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/imaging"
	"github.com/BruksfildServices01/house-hunting/internal/models"
	"github.com/BruksfildServices01/house-hunting/internal/store"
)

type Transcoder interface {
	Transcode(data []byte) ([]byte, error)
}

type PhotoLimits struct {
	MaxFiles int
	MaxBytes int64
}

type UploadPhotos struct {
	repo    domain.Repository
	storage domain.PhotoStore
	codec   Transcoder
	limits  PhotoLimits
	audit   audit.Sink
	log     *zap.Logger
}

// NewUploadPhotos accepts a nil storage; uploads then fail as unavailable.
func NewUploadPhotos(
	repo domain.Repository,
	storage domain.PhotoStore,
	codec Transcoder,
	limits PhotoLimits,
	sink audit.Sink,
	log *zap.Logger,
) *UploadPhotos {
	return &UploadPhotos{
		repo:    repo,
		storage: storage,
		codec:   codec,
		limits:  limits,
		audit:   sink,
		log:     log,
	}
}

// Execute transcodes and stores the photos, then appends them after the
// listing's existing ones. Objects already stored are removed again when
// a later upload or the insert fails.
func (uc *UploadPhotos) Execute(
	ctx context.Context,
	id account.Identity,
	houseID string,
	uploads []domain.PhotoUpload,
) ([]models.HousePhoto, error) {

	h, err := ownedHouse(ctx, uc.repo, id, houseID)
	if err != nil {
		return nil, err
	}
	if uc.storage == nil {
		return nil, httperr.Unavailable(domain.MsgStorageDisabled)
	}

	switch {
	case len(uploads) == 0:
		return nil, httperr.Validation(domain.MsgNoPhotos)
	case uc.limits.MaxFiles > 0 && len(uploads) > uc.limits.MaxFiles:
		return nil, httperr.Validation(domain.MsgTooManyPhotos)
	}

	encoded := make([][]byte, len(uploads))
	for i, up := range uploads {
		if uc.limits.MaxBytes > 0 && int64(len(up.Data)) > uc.limits.MaxBytes {
			return nil, httperr.Validation(domain.MsgPhotoTooLarge)
		}
		data, err := uc.codec.Transcode(up.Data)
		if errors.Is(err, imaging.ErrUnsupported) {
			return nil, httperr.Validation(fmt.Sprintf("%s: %s", domain.MsgUnsupportedPhoto, up.Filename))
		}
		if err != nil {
			return nil, httperr.Internal(err)
		}
		encoded[i] = data
	}

	photos := make([]models.HousePhoto, 0, len(uploads))
	for i, up := range uploads {
		key := fmt.Sprintf("houses/%s/%s.webp", h.ID, uuid.NewString())
		url, err := uc.storage.Put(ctx, key, imaging.ContentType, encoded[i])
		if err != nil {
			uc.discard(ctx, photos)
			return nil, httperr.Internal(err)
		}

		p := models.HousePhoto{
			HouseID:    h.ID,
			PhotoURL:   url,
			StorageKey: key,
		}
		if c := strings.TrimSpace(up.Caption); c != "" {
			p.Caption = &c
		}
		photos = append(photos, p)
	}

	if err := uc.repo.AddPhotos(ctx, h.ID, photos); err != nil {
		uc.discard(ctx, photos)
		if errors.Is(err, store.ErrNotFound) {
			return nil, httperr.NotFound(domain.MsgHouseNotFound)
		}
		return nil, httperr.Internal(err)
	}

	uc.audit.Record(audit.Event{
		ActorID:  id.UserID,
		Action:   "house_photos_uploaded",
		Entity:   "house",
		EntityID: h.ID,
		Metadata: map[string]int{"count": len(photos)},
	})

	return photos, nil
}

// discard removes stored objects that never made it into the listing.
func (uc *UploadPhotos) discard(ctx context.Context, photos []models.HousePhoto) {
	if len(photos) == 0 {
		return
	}
	keys := make([]string, len(photos))
	for i, p := range photos {
		keys[i] = p.StorageKey
	}
	if err := uc.storage.Delete(context.WithoutCancel(ctx), keys...); err != nil {
		uc.log.Warn("orphaned photo objects", zap.Strings("keys", keys), zap.Error(err))
	}
}
