// Package memory is a process-local store used for local runs without
// Postgres and as the repository double in tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/house-hunting/internal/audit"
	"github.com/BruksfildServices01/house-hunting/internal/domain/account"
	"github.com/BruksfildServices01/house-hunting/internal/domain/house"
	"github.com/BruksfildServices01/house-hunting/internal/models"
	"github.com/BruksfildServices01/house-hunting/internal/pagination"
	"github.com/BruksfildServices01/house-hunting/internal/store"
)

type houseRow struct {
	house models.House
	seq   int64
}

type Store struct {
	mu sync.RWMutex

	now func() time.Time
	seq int64

	users     map[string]models.User
	emails    map[string]string
	profiles  map[string]models.LandlordProfile
	byUser    map[string]string
	houses    map[string]*houseRow
	counts    map[string]house.Counts
	auditLogs []models.AuditLog
	photoID   uint
	childID   uint
}

func NewStore() *Store {
	return &Store{
		now:      time.Now,
		users:    make(map[string]models.User),
		emails:   make(map[string]string),
		profiles: make(map[string]models.LandlordProfile),
		byUser:   make(map[string]string),
		houses:   make(map[string]*houseRow),
		counts:   make(map[string]house.Counts),
	}
}

func alive(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	if err := alive(ctx); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.emails[email]
	return ok, nil
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	if err := alive(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.emails[u.Email]; ok {
		return store.ErrDuplicateKey
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := s.now()
	u.CreatedAt, u.UpdatedAt = now, now

	s.users[u.ID] = *u
	s.emails[u.Email] = u.ID
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return s.userLocked(id)
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userLocked(id)
}

func (s *Store) userLocked(id string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok || u.DeletedAt.Valid {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

// SoftDeleteUser marks a user deleted; it stays reserved by email.
func (s *Store) SoftDeleteUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		u.DeletedAt = gorm.DeletedAt{Time: s.now(), Valid: true}
		s.users[id] = u
	}
}

// SetUserRole changes a role in place.
func (s *Store) SetUserRole(id, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		u.Role = role
		s.users[id] = u
	}
}

// --------------------------------------------------
// Landlord profiles
// --------------------------------------------------

func (s *Store) CreateLandlordProfile(ctx context.Context, p *models.LandlordProfile) error {
	if err := alive(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byUser[p.UserID]; ok {
		return store.ErrDuplicateKey
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := s.now()
	p.CreatedAt, p.UpdatedAt = now, now

	cp := *p
	cp.User = nil
	s.profiles[p.ID] = cp
	s.byUser[p.UserID] = p.ID
	return nil
}

func (s *Store) GetLandlordProfileByUserID(ctx context.Context, userID string) (*models.LandlordProfile, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUser[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	p := s.profiles[id]
	return &p, nil
}

func (s *Store) GetLandlordProfileByID(ctx context.Context, id string) (*models.LandlordProfile, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

// --------------------------------------------------
// Houses
// --------------------------------------------------

func (s *Store) CreateHouse(ctx context.Context, h *models.House) error {
	if err := alive(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[h.LandlordID]; !ok {
		return store.ErrNotFound
	}
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if h.Status == "" {
		h.Status = models.HouseAvailable
	}
	now := s.now()
	h.CreatedAt, h.UpdatedAt = now, now

	for i := range h.Amenities {
		s.childID++
		h.Amenities[i].ID = s.childID
		h.Amenities[i].HouseID = h.ID
	}
	for i := range h.Rules {
		s.childID++
		h.Rules[i].ID = s.childID
		h.Rules[i].HouseID = h.ID
	}

	s.seq++
	cp := cloneHouse(*h)
	cp.Landlord = nil
	s.houses[h.ID] = &houseRow{house: cp, seq: s.seq}
	return nil
}

func (s *Store) ListHouses(ctx context.Context, q house.Query) ([]models.House, int64, error) {
	if err := alive(ctx); err != nil {
		return nil, 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []*houseRow
	for _, r := range s.houses {
		if matches(r.house, q) {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i].house.CreatedAt, rows[j].house.CreatedAt
		if !a.Equal(b) {
			return a.After(b)
		}
		return rows[i].seq > rows[j].seq
	})

	total := int64(len(rows))
	if q.Offset < 0 || q.Offset >= len(rows) {
		return []models.House{}, total, nil
	}
	end := len(rows)
	if q.Limit > 0 && q.Limit < end-q.Offset {
		end = q.Offset + q.Limit
	}

	out := make([]models.House, 0, end-q.Offset)
	for _, r := range rows[q.Offset:end] {
		h := cloneHouse(r.house)
		h.Rules = nil
		h.Photos = primaryOnly(h.Photos)
		h.Landlord = s.landlordSummaryLocked(h.LandlordID, false)
		out = append(out, h)
	}
	return out, total, nil
}

func matches(h models.House, q house.Query) bool {
	if h.DeletedAt.Valid {
		return false
	}
	if q.Status != "" && h.Status != q.Status {
		return false
	}
	if q.LandlordID != "" && h.LandlordID != q.LandlordID {
		return false
	}
	if q.City != "" && h.City != q.City {
		return false
	}
	if q.Estate != "" && h.Estate != q.Estate {
		return false
	}
	if q.MinRent != nil && h.MonthlyRent < *q.MinRent {
		return false
	}
	if q.MaxRent != nil && h.MonthlyRent > *q.MaxRent {
		return false
	}
	return true
}

func primaryOnly(photos []models.HousePhoto) []models.HousePhoto {
	for _, p := range photos {
		if p.IsPrimary {
			return []models.HousePhoto{p}
		}
	}
	return nil
}

func (s *Store) landlordSummaryLocked(profileID string, withContact bool) *models.LandlordProfile {
	p, ok := s.profiles[profileID]
	if !ok {
		return nil
	}
	if u, ok := s.users[p.UserID]; ok {
		summary := models.User{
			ID:              u.ID,
			FirstName:       u.FirstName,
			LastName:        u.LastName,
			ProfilePhotoURL: u.ProfilePhotoURL,
		}
		if withContact {
			summary.Email = u.Email
			summary.Phone = u.Phone
		}
		p.User = &summary
	}
	return &p
}

func (s *Store) CountEngagement(ctx context.Context, houseIDs []string) (map[string]house.Counts, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]house.Counts, len(houseIDs))
	for _, id := range houseIDs {
		out[id] = s.counts[id]
	}
	return out, nil
}

// SetEngagement overrides the engagement counts of a listing.
func (s *Store) SetEngagement(houseID string, c house.Counts) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[houseID] = c
}

func (s *Store) GetHouse(ctx context.Context, id string) (*models.House, error) {
	return s.getHouse(ctx, id, false)
}

func (s *Store) GetHouseIncludingDeleted(ctx context.Context, id string) (*models.House, error) {
	return s.getHouse(ctx, id, true)
}

func (s *Store) getHouse(ctx context.Context, id string, withDeleted bool) (*models.House, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.houses[id]
	if !ok || (r.house.DeletedAt.Valid && !withDeleted) {
		return nil, store.ErrNotFound
	}
	h := cloneHouse(r.house)
	sort.SliceStable(h.Photos, func(i, j int) bool {
		return h.Photos[i].DisplayOrder < h.Photos[j].DisplayOrder
	})
	h.Landlord = s.landlordSummaryLocked(h.LandlordID, true)
	return &h, nil
}

func (s *Store) GetHouseOwner(ctx context.Context, id string) (*models.House, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.houses[id]
	if !ok || r.house.DeletedAt.Valid {
		return nil, store.ErrNotFound
	}
	h := r.house
	h.Photos, h.Amenities, h.Rules = nil, nil, nil
	if p, ok := s.profiles[h.LandlordID]; ok {
		h.Landlord = &p
	}
	return &h, nil
}

func (s *Store) SaveHouse(ctx context.Context, h *models.House) error {
	if err := alive(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.houses[h.ID]
	if !ok || r.house.DeletedAt.Valid {
		return store.ErrNotFound
	}

	next := *h
	next.Landlord = nil
	next.Photos = r.house.Photos
	next.Amenities = r.house.Amenities
	next.Rules = r.house.Rules
	next.CreatedAt = r.house.CreatedAt
	next.DeletedAt = r.house.DeletedAt
	next.ViewCount = r.house.ViewCount
	next.UpdatedAt = s.now()
	r.house = next
	h.UpdatedAt = next.UpdatedAt
	return nil
}

func (s *Store) SoftDeleteHouse(ctx context.Context, id string) error {
	return s.mutate(ctx, id, func(h *models.House) {
		h.DeletedAt = gorm.DeletedAt{Time: s.now(), Valid: true}
	})
}

func (s *Store) UpdateHouseStatus(ctx context.Context, id, status string) error {
	return s.mutate(ctx, id, func(h *models.House) {
		h.Status = status
		h.UpdatedAt = s.now()
	})
}

func (s *Store) IncrementViewCount(ctx context.Context, id string) error {
	return s.mutate(ctx, id, func(h *models.House) {
		h.ViewCount++
	})
}

func (s *Store) mutate(ctx context.Context, id string, fn func(h *models.House)) error {
	if err := alive(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.houses[id]
	if !ok || r.house.DeletedAt.Valid {
		return store.ErrNotFound
	}
	fn(&r.house)
	return nil
}

func (s *Store) AddPhotos(ctx context.Context, houseID string, photos []models.HousePhoto) error {
	if err := alive(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.houses[houseID]
	if !ok || r.house.DeletedAt.Valid {
		return store.ErrNotFound
	}
	count, hasPrimary := len(r.house.Photos), false
	for _, p := range r.house.Photos {
		hasPrimary = hasPrimary || p.IsPrimary
	}
	for i := range photos {
		s.photoID++
		photos[i].ID = s.photoID
		photos[i].HouseID = houseID
		photos[i].DisplayOrder = count + i
		photos[i].IsPrimary = !hasPrimary && i == 0
		photos[i].UploadedAt = s.now()
		r.house.Photos = append(r.house.Photos, photos[i])
	}
	return nil
}

func cloneHouse(h models.House) models.House {
	h.Photos = append([]models.HousePhoto(nil), h.Photos...)
	h.Amenities = append([]models.HouseAmenity(nil), h.Amenities...)
	h.Rules = append([]models.HouseRule(nil), h.Rules...)
	return h
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (s *Store) WriteAuditLog(ctx context.Context, e *models.AuditLog) error {
	if err := alive(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.childID++
	e.ID = s.childID
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	s.auditLogs = append(s.auditLogs, *e)
	return nil
}

func (s *Store) ListAuditLogs(ctx context.Context, actorID, action string, p pagination.Params) ([]models.AuditLog, int64, error) {
	if err := alive(ctx); err != nil {
		return nil, 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.AuditLog
	for i := len(s.auditLogs) - 1; i >= 0; i-- {
		e := s.auditLogs[i]
		if e.ActorID == actorID && (action == "" || e.Action == action) {
			out = append(out, e)
		}
	}

	total := int64(len(out))
	off := p.Offset()
	if off < 0 || off >= len(out) {
		return []models.AuditLog{}, total, nil
	}
	end := len(out)
	if p.PageSize < end-off {
		end = off + p.PageSize
	}
	return out[off:end], total, nil
}

var (
	_ account.Repository = (*Store)(nil)
	_ house.Repository   = (*Store)(nil)
	_ audit.Store        = (*Store)(nil)
)
