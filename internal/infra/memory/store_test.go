package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/house-hunting/internal/domain/house"
	"github.com/BruksfildServices01/house-hunting/internal/models"
	"github.com/BruksfildServices01/house-hunting/internal/pagination"
	"github.com/BruksfildServices01/house-hunting/internal/store"
)

func seedLandlord(t *testing.T, s *Store, email string) *models.LandlordProfile {
	t.Helper()
	ctx := context.Background()

	u := &models.User{Email: email, FirstName: "Lee", LastName: "Lord", Phone: "+1", Role: models.RoleLandlord}
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatal(err)
	}
	p := &models.LandlordProfile{UserID: u.ID, IDType: "PASSPORT", IDNumber: "1"}
	if err := s.CreateLandlordProfile(ctx, p); err != nil {
		t.Fatal(err)
	}
	return p
}

func seedHouse(t *testing.T, s *Store, landlordID, city string, rent float64) *models.House {
	t.Helper()
	h := &models.House{
		LandlordID:  landlordID,
		Title:       city + " flat",
		City:        city,
		Estate:      "Central",
		MonthlyRent: rent,
		Amenities:   []models.HouseAmenity{{Amenity: "wifi"}},
		Rules:       []models.HouseRule{{Rule: "No pets"}},
	}
	if err := s.CreateHouse(context.Background(), h); err != nil {
		t.Fatal(err)
	}
	return h
}

func TestUsers(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	u := &models.User{Email: "a@x.com", Role: models.RoleTenant}
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatal(err)
	}
	if u.ID == "" || u.CreatedAt.IsZero() {
		t.Fatal("id and timestamps must be assigned")
	}
	if err := s.CreateUser(ctx, &models.User{Email: "a@x.com"}); !errors.Is(err, store.ErrDuplicateKey) {
		t.Fatalf("expected duplicate key, got %v", err)
	}

	got, err := s.GetUserByEmail(ctx, "a@x.com")
	if err != nil || got.ID != u.ID {
		t.Fatalf("lookup by email: %v %v", got, err)
	}

	s.SoftDeleteUser(u.ID)
	if _, err := s.GetUserByID(ctx, u.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("deleted user still visible: %v", err)
	}
	if exists, _ := s.EmailExists(ctx, "a@x.com"); !exists {
		t.Fatal("email of a deleted user stays reserved")
	}
}

func TestLandlordProfileIsUniquePerUser(t *testing.T) {
	s := NewStore()
	p := seedLandlord(t, s, "l@x.com")

	err := s.CreateLandlordProfile(context.Background(), &models.LandlordProfile{UserID: p.UserID})
	if !errors.Is(err, store.ErrDuplicateKey) {
		t.Fatalf("expected duplicate key, got %v", err)
	}
}

func TestListHouses(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	frozen := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return frozen }

	p := seedLandlord(t, s, "l@x.com")
	a := seedHouse(t, s, p.ID, "Nairobi", 10000)
	b := seedHouse(t, s, p.ID, "Nairobi", 30000)
	c := seedHouse(t, s, p.ID, "Mombasa", 20000)

	// equal timestamps fall back to insertion order, newest first
	items, total, err := s.ListHouses(ctx, house.Query{Limit: 10})
	if err != nil || total != 3 {
		t.Fatalf("total = %d err = %v", total, err)
	}
	if items[0].ID != c.ID || items[2].ID != a.ID {
		t.Fatalf("unexpected order %s %s %s", items[0].ID, items[1].ID, items[2].ID)
	}
	if items[0].Rules != nil || items[0].Landlord == nil || items[0].Landlord.User.Email != "" {
		t.Fatal("list items carry only the landlord summary and no rules")
	}

	floor := 15000.0
	items, total, _ = s.ListHouses(ctx, house.Query{Filters: house.Filters{City: "Nairobi", MinRent: &floor}, Limit: 10})
	if total != 1 || items[0].ID != b.ID {
		t.Fatalf("filter mismatch: %d", total)
	}

	items, total, _ = s.ListHouses(ctx, house.Query{Offset: 2, Limit: 2})
	if total != 3 || len(items) != 1 {
		t.Fatalf("second page = %d items of %d", len(items), total)
	}

	items, _, _ = s.ListHouses(ctx, house.Query{Offset: 10, Limit: 2})
	if items == nil || len(items) != 0 {
		t.Fatal("out of range page must be an empty slice")
	}

	for _, off := range []int{-40, pagination.Parse("9223372036854775807", "20").Offset()} {
		items, _, err = s.ListHouses(ctx, house.Query{Offset: off, Limit: 20})
		if err != nil || items == nil || len(items) != 0 {
			t.Fatalf("offset %d: %d items, err %v", off, len(items), err)
		}
	}

	_ = s.SoftDeleteHouse(ctx, a.ID)
	_ = s.UpdateHouseStatus(ctx, b.ID, models.HouseOccupied)
	_, total, _ = s.ListHouses(ctx, house.Query{Status: models.HouseAvailable, Limit: 10})
	if total != 1 {
		t.Fatalf("available and not deleted = %d", total)
	}
}

func TestHouseDetailAndDeletion(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	p := seedLandlord(t, s, "l@x.com")
	h := seedHouse(t, s, p.ID, "Nairobi", 1)

	if err := s.AddPhotos(ctx, h.ID, []models.HousePhoto{{PhotoURL: "a"}}); err != nil {
		t.Fatal(err)
	}
	more := []models.HousePhoto{{PhotoURL: "b", IsPrimary: true}, {PhotoURL: "c"}}
	if err := s.AddPhotos(ctx, h.ID, more); err != nil {
		t.Fatal(err)
	}
	if more[0].IsPrimary || more[0].DisplayOrder != 1 || more[1].DisplayOrder != 2 {
		t.Fatalf("appended photos %+v", more)
	}

	got, err := s.GetHouse(ctx, h.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Photos[0].PhotoURL != "a" || len(got.Rules) != 1 || got.Landlord.User.Email != "l@x.com" {
		t.Fatalf("unexpected detail %+v", got)
	}

	if len(got.Photos) != 3 || !got.Photos[0].IsPrimary {
		t.Fatalf("photos = %+v", got.Photos)
	}

	_ = s.IncrementViewCount(ctx, h.ID)
	_ = s.IncrementViewCount(ctx, h.ID)

	if err := s.SoftDeleteHouse(ctx, h.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetHouse(ctx, h.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("deleted house visible: %v", err)
	}
	kept, err := s.GetHouseIncludingDeleted(ctx, h.ID)
	if err != nil || !kept.DeletedAt.Valid || kept.ViewCount != 2 {
		t.Fatalf("owner view: %+v %v", kept, err)
	}
	if err := s.IncrementViewCount(ctx, h.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("mutating a deleted house: %v", err)
	}
}

func TestSaveHouseKeepsChildren(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	p := seedLandlord(t, s, "l@x.com")
	h := seedHouse(t, s, p.ID, "Nairobi", 1)

	edit, _ := s.GetHouseOwner(ctx, h.ID)
	edit.Title = "Renamed"
	if err := s.SaveHouse(ctx, edit); err != nil {
		t.Fatal(err)
	}

	got, _ := s.GetHouse(ctx, h.ID)
	if got.Title != "Renamed" || len(got.Amenities) != 1 || len(got.Rules) != 1 {
		t.Fatalf("children lost on save: %+v", got)
	}
}

func TestAuditLogs(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	for _, a := range []string{"login", "house_created", "house_created"} {
		_ = s.WriteAuditLog(ctx, &models.AuditLog{ActorID: "u1", Action: a})
	}
	_ = s.WriteAuditLog(ctx, &models.AuditLog{ActorID: "u2", Action: "login"})

	logs, total, _ := s.ListAuditLogs(ctx, "u1", "", pagination.Normalize(1, 2))
	if total != 3 || len(logs) != 2 || logs[0].Action != "house_created" {
		t.Fatalf("unexpected page %+v (%d)", logs, total)
	}

	_, total, _ = s.ListAuditLogs(ctx, "u1", "house_created", pagination.Normalize(1, 10))
	if total != 2 {
		t.Fatalf("filtered total = %d", total)
	}

	logs, total, err := s.ListAuditLogs(ctx, "u1", "", pagination.Parse("9223372036854775807", "20"))
	if err != nil || total != 3 || logs == nil || len(logs) != 0 {
		t.Fatalf("huge page: %d logs of %d, err %v", len(logs), total, err)
	}
}

func TestCancelledContext(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.GetUserByID(ctx, "x"); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}
