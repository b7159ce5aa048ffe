package house

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/house-hunting/internal/audit"
	"github.com/BruksfildServices01/house-hunting/internal/domain/account"
	domain "github.com/BruksfildServices01/house-hunting/internal/domain/house"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/imaging"
	"github.com/BruksfildServices01/house-hunting/internal/infra/memory"
	"github.com/BruksfildServices01/house-hunting/internal/jobs"
	"github.com/BruksfildServices01/house-hunting/internal/models"
	"github.com/BruksfildServices01/house-hunting/internal/pagination"
)

type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *recordingSink) Record(ev audit.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.events))
	for i, e := range s.events {
		out[i] = e.Action
	}
	return out
}

type world struct {
	store *memory.Store
	sink  *recordingSink
	owner account.Identity
	other account.Identity
}

func newWorld(t *testing.T) *world {
	t.Helper()
	ctx := context.Background()
	st := memory.NewStore()

	mk := func(email, role string) account.Identity {
		u := &models.User{Email: email, Role: role, FirstName: "F", LastName: "L", Phone: "1", PasswordHash: "h"}
		if err := st.CreateUser(ctx, u); err != nil {
			t.Fatal(err)
		}
		return account.Identity{UserID: u.ID, Email: email, Role: role}
	}

	w := &world{
		store: st,
		sink:  &recordingSink{},
		owner: mk("owner@x.com", models.RoleLandlord),
		other: mk("other@x.com", models.RoleLandlord),
	}
	for _, id := range []account.Identity{w.owner, w.other} {
		if err := st.CreateLandlordProfile(ctx, &models.LandlordProfile{UserID: id.UserID, IDType: "id", IDNumber: "1"}); err != nil {
			t.Fatal(err)
		}
	}
	return w
}

func validInput() domain.CreateInput {
	return domain.CreateInput{
		Title:            "Sunny 2BR",
		Description:      "Close to the market",
		HouseType:        "2br",
		Bedrooms:         "2",
		Bathrooms:        "1",
		MonthlyRent:      "25000",
		Deposit:          "25000",
		Address:          "12 Riverside",
		City:             "Nairobi",
		Estate:           "Kilimani",
		Street:           "Riverside Dr",
		Latitude:         "-1.29",
		Longitude:        "36.78",
		AvailabilityDate: "2026-11-01",
		WaterCharge:      "500",
		Amenities:        []string{"wifi", "parking", "wifi"},
		Rules:            []string{"No smoking", "  "},
	}
}

func (w *world) create(t *testing.T, id account.Identity, edit func(*domain.CreateInput)) *models.House {
	t.Helper()
	in := validInput()
	if edit != nil {
		edit(&in)
	}
	h, err := NewCreateHouse(w.store, w.sink).Execute(context.Background(), id, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return h
}

func TestCreateHouse(t *testing.T) {
	w := newWorld(t)

	h := w.create(t, w.owner, nil)

	if h.Status != models.HouseAvailable || h.MonthlyRent != 25000 || h.Bedrooms != 2 {
		t.Fatalf("unexpected house %+v", h)
	}
	if h.WaterCharge == nil || *h.WaterCharge != 500 || h.ParkingCharge != nil {
		t.Fatal("optional charges not coerced")
	}
	if len(h.Amenities) != 2 || len(h.Rules) != 1 {
		t.Fatalf("children = %d amenities, %d rules", len(h.Amenities), len(h.Rules))
	}
	if got := h.AvailabilityDate.Format("2006-01-02"); got != "2026-11-01" {
		t.Fatalf("availability = %s", got)
	}
	if a := w.sink.actions(); len(a) != 1 || a[0] != "house_created" {
		t.Fatalf("audit = %v", a)
	}
}

func TestCreateHouseFailures(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	uc := NewCreateHouse(w.store, w.sink)

	tenant := account.Identity{UserID: "t", Role: models.RoleTenant}
	if _, err := uc.Execute(ctx, tenant, validInput()); !httperr.Is(err, httperr.KindAuthorization) {
		t.Fatalf("tenant: expected authorization error, got %v", err)
	}

	tests := []struct {
		name string
		edit func(*domain.CreateInput)
	}{
		{"missing title", func(in *domain.CreateInput) { in.Title = "" }},
		{"missing latitude", func(in *domain.CreateInput) { in.Latitude = "" }},
		{"missing date", func(in *domain.CreateInput) { in.AvailabilityDate = "" }},
		{"non numeric rent", func(in *domain.CreateInput) { in.MonthlyRent = "a lot" }},
		{"bad date", func(in *domain.CreateInput) { in.AvailabilityDate = "next week" }},
		{"bad type", func(in *domain.CreateInput) { in.HouseType = "castle" }},
		{"bad amenity", func(in *domain.CreateInput) { in.Amenities = []string{"moat"} }},
		{"bad coordinates", func(in *domain.CreateInput) { in.Latitude = "95" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.edit(&in)
			if _, err := uc.Execute(ctx, w.owner, in); !httperr.Is(err, httperr.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateHouseRequiresLandlordProfile(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	u := &models.User{Email: "new@x.com", Role: models.RoleLandlord}
	_ = w.store.CreateUser(ctx, u)
	id := account.Identity{UserID: u.ID, Role: models.RoleLandlord}

	_, err := NewCreateHouse(w.store, w.sink).Execute(ctx, id, validInput())
	if !httperr.Is(err, httperr.KindPrecondition) {
		t.Fatalf("expected precondition error, got %v", err)
	}

	_, total, _ := w.store.ListHouses(ctx, domain.Query{})
	if total != 0 {
		t.Fatal("house must not be created")
	}
}

func TestListHousesPagination(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		w.create(t, w.owner, func(in *domain.CreateInput) { in.Title = fmt.Sprintf("House %d", i) })
	}
	uc := NewListHouses(w.store)

	tests := []struct {
		page, size int
		wantItems  int
		wantPages  int
	}{
		{1, 3, 3, 3},
		{3, 3, 1, 3},
		{4, 3, 0, 3},
		{1, 100, 7, 1},
		{1, 1, 1, 7},
	}
	for _, tt := range tests {
		res, err := uc.Execute(ctx, pagination.Normalize(tt.page, tt.size), domain.Filters{})
		if err != nil {
			t.Fatal(err)
		}
		if len(res.Data) != tt.wantItems || res.TotalPages != tt.wantPages || res.Total != 7 {
			t.Errorf("page %d size %d: got %d items, %d pages, total %d",
				tt.page, tt.size, len(res.Data), res.TotalPages, res.Total)
		}
		if res.Data == nil {
			t.Errorf("page %d: data must be an empty array, not null", tt.page)
		}
	}

	res, _ := uc.Execute(ctx, pagination.Normalize(1, 2), domain.Filters{})
	if res.Data[0].Title != "House 6" {
		t.Fatalf("expected newest first, got %q", res.Data[0].Title)
	}
}

func TestListHousesHugePageIsEmpty(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	w.create(t, w.owner, nil)

	for _, raw := range []string{"9223372036854775807", "4611686018427387905", "99999999999999999999"} {
		res, err := NewListHouses(w.store).Execute(ctx, pagination.Parse(raw, "20"), domain.Filters{})
		if err != nil {
			t.Fatalf("page=%s: %v", raw, err)
		}
		if res.Data == nil || len(res.Data) != 0 {
			t.Fatalf("page=%s: got %d items, want an empty array", raw, len(res.Data))
		}
		if res.Total != 1 || res.TotalPages != 1 {
			t.Fatalf("page=%s: total %d pages %d", raw, res.Total, res.TotalPages)
		}
	}
}

func TestListHousesFilters(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	w.create(t, w.owner, func(in *domain.CreateInput) { in.City = "Nairobi"; in.MonthlyRent = "10000" })
	w.create(t, w.owner, func(in *domain.CreateInput) { in.City = "Nairobi"; in.MonthlyRent = "30000" })
	w.create(t, w.owner, func(in *domain.CreateInput) { in.City = "Mombasa"; in.MonthlyRent = "20000" })
	occupied := w.create(t, w.owner, func(in *domain.CreateInput) { in.City = "Nairobi" })
	deleted := w.create(t, w.owner, func(in *domain.CreateInput) { in.City = "Nairobi" })

	_, _ = NewUpdateHouseStatus(w.store, w.sink).Execute(ctx, w.owner, occupied.ID, models.HouseOccupied)
	_ = NewDeleteHouse(w.store, w.sink).Execute(ctx, w.owner, deleted.ID)

	f := func(v float64) *float64 { return &v }
	uc := NewListHouses(w.store)

	tests := []struct {
		name    string
		filters domain.Filters
		want    int64
	}{
		{"all available", domain.Filters{}, 3},
		{"city", domain.Filters{City: "Nairobi"}, 2},
		{"inclusive range", domain.Filters{MinRent: f(10000), MaxRent: f(20000)}, 2},
		{"min only", domain.Filters{MinRent: f(25000)}, 1},
		{"inverted range", domain.Filters{MinRent: f(30000), MaxRent: f(10000)}, 0},
	}
	for _, tt := range tests {
		res, err := uc.Execute(ctx, pagination.Normalize(1, 20), tt.filters)
		if err != nil {
			t.Fatal(err)
		}
		if res.Total != tt.want {
			t.Errorf("%s: total = %d, want %d", tt.name, res.Total, tt.want)
		}
	}
}

func TestGetHouseCountsViewInBackground(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	h := w.create(t, w.owner, nil)

	q := jobs.NewQueue(zap.NewNop(), jobs.Options{Size: 8, Workers: 1})
	uc := NewGetHouse(w.store, q, zap.NewNop())

	got, err := uc.Execute(ctx, h.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Landlord == nil || got.Landlord.User == nil || got.Landlord.User.Email != "owner@x.com" {
		t.Fatal("detail view must carry the landlord contact")
	}

	_ = q.Close(ctx)
	after, _ := w.store.GetHouse(ctx, h.ID)
	if after.ViewCount != 1 {
		t.Fatalf("view count = %d", after.ViewCount)
	}

	if _, err := uc.Execute(ctx, "missing"); !httperr.Is(err, httperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

type closedQueue struct{}

func (closedQueue) Submit(jobs.Job) bool { return false }

func TestGetHouseIgnoresCounterFailure(t *testing.T) {
	w := newWorld(t)
	h := w.create(t, w.owner, nil)

	if _, err := NewGetHouse(w.store, closedQueue{}, zap.NewNop()).Execute(context.Background(), h.ID); err != nil {
		t.Fatalf("read path must not fail because of the counter: %v", err)
	}
}

func TestOwnershipIsEnforced(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	h := w.create(t, w.owner, nil)

	rent := domain.Text("not a number")
	tenant := account.Identity{UserID: "tenant", Role: models.RoleTenant}

	for _, intruder := range []account.Identity{w.other, tenant} {
		_, err := NewUpdateHouse(w.store, w.sink).Execute(ctx, intruder, h.ID, domain.UpdateInput{MonthlyRent: &rent})
		if !httperr.Is(err, httperr.KindAuthorization) {
			t.Fatalf("update: expected authorization error, got %v", err)
		}
		if err := NewDeleteHouse(w.store, w.sink).Execute(ctx, intruder, h.ID); !httperr.Is(err, httperr.KindAuthorization) {
			t.Fatalf("delete: expected authorization error, got %v", err)
		}
		_, err = NewUpdateHouseStatus(w.store, w.sink).Execute(ctx, intruder, h.ID, "bogus")
		if !httperr.Is(err, httperr.KindAuthorization) {
			t.Fatalf("status: expected authorization error, got %v", err)
		}
	}

	_, err := NewUpdateHouse(w.store, w.sink).Execute(ctx, w.owner, "missing", domain.UpdateInput{})
	if !httperr.Is(err, httperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateHouseCoercesAndIgnoresChildren(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	h := w.create(t, w.owner, nil)

	title := "Renovated 2BR"
	rent := domain.Text("27500.50")
	beds := domain.Text("3")
	date := domain.Text("2027-01-15T00:00:00Z")
	water := domain.Text("")

	got, err := NewUpdateHouse(w.store, w.sink).Execute(ctx, w.owner, h.ID, domain.UpdateInput{
		Title:            &title,
		MonthlyRent:      &rent,
		Bedrooms:         &beds,
		AvailabilityDate: &date,
		WaterCharge:      &water,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != title || got.MonthlyRent != 27500.50 || got.Bedrooms != 3 || got.WaterCharge != nil {
		t.Fatalf("unexpected update %+v", got)
	}
	if !got.AvailabilityDate.Equal(time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date = %v", got.AvailabilityDate)
	}

	stored, _ := w.store.GetHouse(ctx, h.ID)
	if len(stored.Amenities) != 2 || len(stored.Rules) != 1 {
		t.Fatal("child collections must be untouched")
	}

	bad := domain.Text("cheap")
	_, err = NewUpdateHouse(w.store, w.sink).Execute(ctx, w.owner, h.ID, domain.UpdateInput{Deposit: &bad})
	if !httperr.Is(err, httperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	h := w.create(t, w.owner, nil)
	uc := NewUpdateHouseStatus(w.store, w.sink)

	for _, s := range []string{models.HouseDelisted, models.HouseMaintenance, "available", models.HouseOccupied} {
		got, err := uc.Execute(ctx, w.owner, h.ID, s)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		if got.Status == "" {
			t.Fatal("status missing in response")
		}
	}

	if _, err := uc.Execute(ctx, w.owner, h.ID, "SOLD"); !httperr.Is(err, httperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSoftDelete(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	h := w.create(t, w.owner, nil)

	if err := NewDeleteHouse(w.store, w.sink).Execute(ctx, w.owner, h.ID); err != nil {
		t.Fatal(err)
	}

	res, _ := NewListHouses(w.store).Execute(ctx, pagination.Normalize(1, 20), domain.Filters{})
	if res.Total != 0 {
		t.Fatal("deleted listing still listed")
	}

	q := jobs.NewQueue(zap.NewNop(), jobs.Options{})
	defer q.Close(ctx)
	if _, err := NewGetHouse(w.store, q, zap.NewNop()).Execute(ctx, h.ID); !httperr.Is(err, httperr.KindNotFound) {
		t.Fatalf("public fetch: expected not found, got %v", err)
	}

	own, err := NewGetOwnHouse(w.store).Execute(ctx, w.owner, h.ID)
	if err != nil {
		t.Fatalf("owner fetch: %v", err)
	}
	if !own.DeletedAt.Valid || own.Status != models.HouseAvailable {
		t.Fatalf("expected deleted listing with untouched status, got %+v", own)
	}

	if _, err := NewGetOwnHouse(w.store).Execute(ctx, w.other, h.ID); !httperr.Is(err, httperr.KindAuthorization) {
		t.Fatalf("expected authorization error, got %v", err)
	}

	if err := NewDeleteHouse(w.store, w.sink).Execute(ctx, w.owner, h.ID); !httperr.Is(err, httperr.KindNotFound) {
		t.Fatalf("second delete: expected not found, got %v", err)
	}
}

func TestLandlordListings(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	mine := w.create(t, w.owner, nil)
	w.create(t, w.owner, nil)
	w.create(t, w.other, nil)
	w.store.SetEngagement(mine.ID, domain.Counts{Reviews: 2, Comments: 5, Favorites: 9})

	uc := NewListLandlordHouses(w.store)

	res, err := uc.Mine(ctx, w.owner, pagination.Normalize(1, 20))
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 2 {
		t.Fatalf("total = %d", res.Total)
	}
	var found bool
	for _, h := range res.Data {
		if h.ID == mine.ID {
			found = true
			if h.Count.Favorites != 9 || h.Count.Comments != 5 || h.Count.Reviews != 2 {
				t.Fatalf("counts = %+v", h.Count)
			}
		}
	}
	if !found {
		t.Fatal("own listing missing")
	}

	profile, _ := w.store.GetLandlordProfileByUserID(ctx, w.other.UserID)
	pub, err := uc.ByLandlord(ctx, profile.ID, pagination.Normalize(1, 20))
	if err != nil || pub.Total != 1 {
		t.Fatalf("public listing: %v %+v", err, pub)
	}

	if _, err := uc.ByLandlord(ctx, "nobody", pagination.Normalize(1, 20)); !httperr.Is(err, httperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	tenant := account.Identity{UserID: "t", Role: models.RoleTenant}
	if _, err := uc.Mine(ctx, tenant, pagination.Normalize(1, 20)); !httperr.Is(err, httperr.KindAuthorization) {
		t.Fatalf("expected authorization error, got %v", err)
	}

	u := &models.User{Email: "fresh@x.com", Role: models.RoleLandlord}
	_ = w.store.CreateUser(ctx, u)
	fresh := account.Identity{UserID: u.ID, Role: models.RoleLandlord}
	if _, err := uc.Mine(ctx, fresh, pagination.Normalize(1, 20)); !httperr.Is(err, httperr.KindPrecondition) {
		t.Fatalf("expected precondition error, got %v", err)
	}
}

type fakeStorage struct {
	mu      sync.Mutex
	keys    []string
	deleted []string
	err     error
	failAt  int
}

func (s *fakeStorage) Put(_ context.Context, key, contentType string, _ []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil && len(s.keys) >= s.failAt {
		return "", s.err
	}
	if contentType != imaging.ContentType {
		return "", fmt.Errorf("unexpected content type %s", contentType)
	}
	s.keys = append(s.keys, key)
	return "https://cdn.example/" + key, nil
}

func (s *fakeStorage) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, keys...)
	return nil
}

type fakeCodec struct{}

func (fakeCodec) Transcode(data []byte) ([]byte, error) {
	if string(data) == "bad" {
		return nil, imaging.ErrUnsupported
	}
	return data, nil
}

func TestUploadPhotos(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	h := w.create(t, w.owner, nil)

	storage := &fakeStorage{}
	uc := NewUploadPhotos(w.store, storage, fakeCodec{}, PhotoLimits{MaxFiles: 3, MaxBytes: 10}, w.sink, zap.NewNop())

	first, err := uc.Execute(ctx, w.owner, h.ID, []domain.PhotoUpload{
		{Filename: "a.jpg", Data: []byte("a"), Caption: "Front"},
		{Filename: "b.jpg", Data: []byte("b")},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !first[0].IsPrimary || first[1].IsPrimary || first[1].DisplayOrder != 1 {
		t.Fatalf("unexpected photos %+v", first)
	}

	second, err := uc.Execute(ctx, w.owner, h.ID, []domain.PhotoUpload{{Filename: "c.png", Data: []byte("c")}})
	if err != nil {
		t.Fatal(err)
	}
	if second[0].IsPrimary || second[0].DisplayOrder != 2 {
		t.Fatalf("unexpected photo %+v", second[0])
	}

	detail, _ := w.store.GetHouse(ctx, h.ID)
	if len(detail.Photos) != 3 || len(storage.keys) != 3 {
		t.Fatalf("photos = %d, stored = %d", len(detail.Photos), len(storage.keys))
	}

	tests := []struct {
		name    string
		uploads []domain.PhotoUpload
	}{
		{"none", nil},
		{"too many", make([]domain.PhotoUpload, 4)},
		{"too large", []domain.PhotoUpload{{Data: []byte("0123456789ab")}}},
		{"unsupported", []domain.PhotoUpload{{Filename: "x.gif", Data: []byte("bad")}}},
	}
	for _, tt := range tests {
		if _, err := uc.Execute(ctx, w.owner, h.ID, tt.uploads); !httperr.Is(err, httperr.KindValidation) {
			t.Errorf("%s: expected validation error, got %v", tt.name, err)
		}
	}

	if _, err := uc.Execute(ctx, w.other, h.ID, nil); !httperr.Is(err, httperr.KindAuthorization) {
		t.Fatalf("expected authorization error, got %v", err)
	}

	disabled := NewUploadPhotos(w.store, nil, fakeCodec{}, PhotoLimits{}, w.sink, zap.NewNop())
	if _, err := disabled.Execute(ctx, w.owner, h.ID, []domain.PhotoUpload{{Data: []byte("a")}}); !httperr.Is(err, httperr.KindUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}

	failing := NewUploadPhotos(w.store, &fakeStorage{err: errors.New("s3 down")}, fakeCodec{}, PhotoLimits{}, w.sink, zap.NewNop())
	if _, err := failing.Execute(ctx, w.owner, h.ID, []domain.PhotoUpload{{Data: []byte("a")}}); !httperr.Is(err, httperr.KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

type failingPhotoRepo struct {
	domain.Repository
}

func (failingPhotoRepo) AddPhotos(context.Context, string, []models.HousePhoto) error {
	return errors.New("insert failed")
}

func TestUploadPhotosRemovesStoredObjectsOnFailure(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	h := w.create(t, w.owner, nil)
	uploads := []domain.PhotoUpload{{Data: []byte("a")}, {Data: []byte("b")}, {Data: []byte("c")}}

	partial := &fakeStorage{err: errors.New("s3 down"), failAt: 2}
	uc := NewUploadPhotos(w.store, partial, fakeCodec{}, PhotoLimits{}, w.sink, zap.NewNop())
	if _, err := uc.Execute(ctx, w.owner, h.ID, uploads); !httperr.Is(err, httperr.KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if len(partial.keys) != 2 || fmt.Sprint(partial.deleted) != fmt.Sprint(partial.keys) {
		t.Fatalf("stored %v, deleted %v", partial.keys, partial.deleted)
	}

	storage := &fakeStorage{}
	uc = NewUploadPhotos(failingPhotoRepo{w.store}, storage, fakeCodec{}, PhotoLimits{}, w.sink, zap.NewNop())
	if _, err := uc.Execute(ctx, w.owner, h.ID, uploads); !httperr.Is(err, httperr.KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if len(storage.keys) != 3 || fmt.Sprint(storage.deleted) != fmt.Sprint(storage.keys) {
		t.Fatalf("stored %v, deleted %v", storage.keys, storage.deleted)
	}

	detail, _ := w.store.GetHouse(ctx, h.ID)
	if len(detail.Photos) != 0 {
		t.Fatalf("photos = %d", len(detail.Photos))
	}
}

func TestConcurrentUploadsKeepOnePrimary(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	h := w.create(t, w.owner, nil)
	uc := NewUploadPhotos(w.store, &fakeStorage{}, fakeCodec{}, PhotoLimits{}, w.sink, zap.NewNop())

	const uploads = 8
	var wg sync.WaitGroup
	errs := make(chan error, uploads)
	for i := 0; i < uploads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(ctx, w.owner, h.ID, []domain.PhotoUpload{{Data: []byte("a")}, {Data: []byte("b")}})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatal(err)
		}
	}

	detail, _ := w.store.GetHouse(ctx, h.ID)
	if len(detail.Photos) != 2*uploads {
		t.Fatalf("photos = %d", len(detail.Photos))
	}
	primaries := 0
	orders := map[int]bool{}
	for _, p := range detail.Photos {
		if p.IsPrimary {
			primaries++
		}
		orders[p.DisplayOrder] = true
	}
	if primaries != 1 || len(orders) != 2*uploads {
		t.Fatalf("primaries = %d, distinct orders = %d", primaries, len(orders))
	}
}
