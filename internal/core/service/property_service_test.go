package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bookingin/booking-api/internal/core/domain"
	"github.com/bookingin/booking-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubPropertyRepo struct {
	byID      map[string]*domain.Property
	createErr error
	ratingErr error
}

func newStubPropertyRepo() *stubPropertyRepo {
	return &stubPropertyRepo{byID: make(map[string]*domain.Property)}
}

func (r *stubPropertyRepo) Create(_ context.Context, p *domain.Property) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPropertyRepo) FindByID(_ context.Context, id string) (*domain.Property, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPropertyRepo) List(_ context.Context) ([]*domain.Property, error) {
	out := make([]*domain.Property, 0, len(r.byID))
	for _, p := range r.byID {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubPropertyRepo) Update(_ context.Context, p *domain.Property) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrPropertyNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPropertyRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrPropertyNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubPropertyRepo) UpdateRating(_ context.Context, id string, rating float64) error {
	if r.ratingErr != nil {
		return r.ratingErr
	}
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrPropertyNotFound
	}
	p.Rating = rating
	return nil
}

type stubRoomRepo struct {
	byID map[string]*domain.Room
}

func newStubRoomRepo() *stubRoomRepo {
	return &stubRoomRepo{byID: make(map[string]*domain.Room)}
}

func (r *stubRoomRepo) Create(_ context.Context, room *domain.Room) error {
	clone := *room
	r.byID[room.ID] = &clone
	return nil
}

// FindByID mirrors the real query: the room must belong to the property.
func (r *stubRoomRepo) FindByID(_ context.Context, propertyID, roomID string) (*domain.Room, error) {
	room, ok := r.byID[roomID]
	if !ok || room.PropertyID != propertyID {
		return nil, domain.ErrRoomNotFound
	}
	clone := *room
	return &clone, nil
}

func (r *stubRoomRepo) ListByProperty(_ context.Context, propertyID string) ([]*domain.Room, error) {
	var out []*domain.Room
	for _, room := range r.byID {
		if room.PropertyID == propertyID {
			clone := *room
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubRoomRepo) Update(_ context.Context, room *domain.Room) error {
	clone := *room
	r.byID[room.ID] = &clone
	return nil
}

func (r *stubRoomRepo) Delete(_ context.Context, propertyID, roomID string) error {
	room, ok := r.byID[roomID]
	if !ok || room.PropertyID != propertyID {
		return domain.ErrRoomNotFound
	}
	delete(r.byID, roomID)
	return nil
}

type stubReviewRepo struct {
	reviews []*domain.Review
	avgErr  error
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) error {
	clone := *review
	r.reviews = append(r.reviews, &clone)
	return nil
}

func (r *stubReviewRepo) ListByProperty(_ context.Context, propertyID string) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, rv := range r.reviews {
		if rv.PropertyID == propertyID {
			clone := *rv
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) AverageRating(_ context.Context, propertyID string) (float64, error) {
	if r.avgErr != nil {
		return 0, r.avgErr
	}
	var sum, n int
	for _, rv := range r.reviews {
		if rv.PropertyID == propertyID {
			sum += rv.Rating
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return float64(sum) / float64(n), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func hotelInput() ports.PropertyInput {
	return ports.PropertyInput{
		Name:          "Hotel Santika",
		Type:          "hotel",
		City:          "Bandung",
		Address:       "Jl. Sumatera 52",
		Description:   "near the city centre",
		CheapestPrice: 450000,
	}
}

func seedProperty(t *testing.T, repo *stubPropertyRepo) *domain.Property {
	t.Helper()
	p, err := NewPropertyService(repo, discardLogger).Create(context.Background(), hotelInput())
	if err != nil {
		t.Fatalf("seed property: %v", err)
	}
	return p
}

// ---------------------------------------------------------------------------
// PropertyService
// ---------------------------------------------------------------------------

func TestPropertyService_Create_Success(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, discardLogger)

	p, err := svc.Create(context.Background(), hotelInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == "" {
		t.Error("expected generated id")
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("timestamps must be set")
	}
	if _, ok := repo.byID[p.ID]; !ok {
		t.Error("property not stored")
	}
}

func TestPropertyService_Create_RepoError(t *testing.T) {
	repo := newStubPropertyRepo()
	repo.createErr = errors.New("db unavailable")
	svc := NewPropertyService(repo, discardLogger)

	if _, err := svc.Create(context.Background(), hotelInput()); err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}

func TestPropertyService_Update_KeepsRating(t *testing.T) {
	repo := newStubPropertyRepo()
	p := seedProperty(t, repo)
	repo.byID[p.ID].Rating = 4.5
	svc := NewPropertyService(repo, discardLogger)

	in := hotelInput()
	in.Name = "Hotel Santika Premiere"
	in.Featured = true

	updated, err := svc.Update(context.Background(), p.ID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Hotel Santika Premiere" || !updated.Featured {
		t.Errorf("fields not replaced: %+v", updated)
	}
	if updated.Rating != 4.5 {
		t.Errorf("rating must be preserved, got %v", updated.Rating)
	}
	if !updated.CreatedAt.Equal(p.CreatedAt) {
		t.Error("created_at must be preserved")
	}
}

func TestPropertyService_Update_NotFound(t *testing.T) {
	svc := NewPropertyService(newStubPropertyRepo(), discardLogger)

	if _, err := svc.Update(context.Background(), "missing", hotelInput()); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// RoomService
// ---------------------------------------------------------------------------

func TestRoomService_Create_RequiresProperty(t *testing.T) {
	svc := NewRoomService(newStubPropertyRepo(), newStubRoomRepo(), discardLogger)

	_, err := svc.Create(context.Background(), "missing", ports.RoomInput{Title: "Deluxe", Price: 1, MaxPeople: 2})
	if !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestRoomService_CreateAndUpdate(t *testing.T) {
	props := newStubPropertyRepo()
	p := seedProperty(t, props)
	rooms := newStubRoomRepo()
	svc := NewRoomService(props, rooms, discardLogger)

	room, err := svc.Create(context.Background(), p.ID, ports.RoomInput{Title: "Deluxe", Price: 500000, MaxPeople: 2})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if room.PropertyID != p.ID {
		t.Errorf("room not linked to property: %q", room.PropertyID)
	}

	updated, err := svc.Update(context.Background(), p.ID, room.ID, ports.RoomInput{Title: "Suite", Price: 900000, MaxPeople: 4})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Suite" || updated.MaxPeople != 4 {
		t.Errorf("room not updated: %+v", updated)
	}

	list, err := svc.List(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 room, got %d", len(list))
	}
}

func TestRoomService_Update_RoomOfOtherProperty(t *testing.T) {
	props := newStubPropertyRepo()
	a := seedProperty(t, props)
	b := seedProperty(t, props)
	rooms := newStubRoomRepo()
	svc := NewRoomService(props, rooms, discardLogger)

	room, _ := svc.Create(context.Background(), a.ID, ports.RoomInput{Title: "Deluxe", Price: 1, MaxPeople: 1})

	_, err := svc.Update(context.Background(), b.ID, room.ID, ports.RoomInput{Title: "x", Price: 1, MaxPeople: 1})
	if !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// ReviewService
// ---------------------------------------------------------------------------

func TestReviewService_Create_RecomputesRating(t *testing.T) {
	props := newStubPropertyRepo()
	p := seedProperty(t, props)
	reviews := &stubReviewRepo{}
	svc := NewReviewService(props, reviews, discardLogger)

	for _, rating := range []int{5, 4, 4} {
		if _, err := svc.Create(context.Background(), ports.ReviewInput{
			PropertyID: p.ID,
			UserID:     "u1",
			Rating:     rating,
			Comment:    "nice",
		}); err != nil {
			t.Fatalf("create review: %v", err)
		}
	}

	if got := props.byID[p.ID].Rating; got != 4.3 {
		t.Errorf("expected rating 4.3, got %v", got)
	}
	if len(reviews.reviews) != 3 {
		t.Errorf("expected 3 reviews, got %d", len(reviews.reviews))
	}
}

func TestReviewService_Create_PropertyNotFound(t *testing.T) {
	svc := NewReviewService(newStubPropertyRepo(), &stubReviewRepo{}, discardLogger)

	_, err := svc.Create(context.Background(), ports.ReviewInput{PropertyID: "missing", UserID: "u1", Rating: 5})
	if !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestReviewService_Create_RatingFailureIsNonFatal(t *testing.T) {
	props := newStubPropertyRepo()
	p := seedProperty(t, props)
	props.ratingErr = errors.New("db unavailable")
	reviews := &stubReviewRepo{}
	svc := NewReviewService(props, reviews, discardLogger)

	review, err := svc.Create(context.Background(), ports.ReviewInput{PropertyID: p.ID, UserID: "u1", Rating: 3})
	if err != nil {
		t.Fatalf("expected rating failure to be non-fatal, got: %v", err)
	}
	if review.UserID != "u1" {
		t.Errorf("unexpected review: %+v", review)
	}
}
