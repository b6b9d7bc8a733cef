package api

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bookingin/booking-api/internal/core/domain"
)

// memStore is an in-memory implementation of every repository port.
type memStore struct {
	mu         sync.Mutex
	users      map[string]domain.User
	properties map[string]domain.Property
	rooms      map[string]domain.Room
	reviews    map[string]domain.Review
	revoked    map[string]time.Time
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[string]domain.User{},
		properties: map[string]domain.Property{},
		rooms:      map[string]domain.Room{},
		reviews:    map[string]domain.Review{},
		revoked:    map[string]time.Time{},
	}
}

type memUsers struct{ *memStore }
type memProperties struct{ *memStore }
type memRooms struct{ *memStore }
type memReviews struct{ *memStore }

func (s memUsers) Create(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	s.users[u.ID] = *u
	return nil
}

func (s memUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (s memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s memUsers) CountByEmail(_ context.Context, email string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, u := range s.users {
		if u.Email == email {
			n++
		}
	}
	return n, nil
}

func (s memUsers) List(_ context.Context) ([]*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s memUsers) Update(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	s.users[u.ID] = *u
	return nil
}

func (s memUsers) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s memProperties) Create(_ context.Context, p *domain.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties[p.ID] = *p
	return nil
}

func (s memProperties) FindByID(_ context.Context, id string) (*domain.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.properties[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return &p, nil
}

func (s memProperties) List(_ context.Context) ([]*domain.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Property, 0, len(s.properties))
	for _, p := range s.properties {
		out = append(out, &p)
	}
	return out, nil
}

func (s memProperties) Update(_ context.Context, p *domain.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.properties[p.ID]; !ok {
		return domain.ErrPropertyNotFound
	}
	s.properties[p.ID] = *p
	return nil
}

func (s memProperties) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.properties[id]; !ok {
		return domain.ErrPropertyNotFound
	}
	delete(s.properties, id)
	for rid, r := range s.rooms {
		if r.PropertyID == id {
			delete(s.rooms, rid)
		}
	}
	for rid, r := range s.reviews {
		if r.PropertyID == id {
			delete(s.reviews, rid)
		}
	}
	return nil
}

func (s memProperties) UpdateRating(_ context.Context, id string, rating float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.properties[id]
	if !ok {
		return domain.ErrPropertyNotFound
	}
	p.Rating = rating
	s.properties[id] = p
	return nil
}

func (s memRooms) Create(_ context.Context, r *domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[r.ID] = *r
	return nil
}

func (s memRooms) FindByID(_ context.Context, propertyID, roomID string) (*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[roomID]
	if !ok || r.PropertyID != propertyID {
		return nil, domain.ErrRoomNotFound
	}
	return &r, nil
}

func (s memRooms) ListByProperty(_ context.Context, propertyID string) ([]*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*domain.Room{}
	for _, r := range s.rooms {
		if r.PropertyID == propertyID {
			out = append(out, &r)
		}
	}
	return out, nil
}

func (s memRooms) Update(_ context.Context, r *domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.rooms[r.ID]
	if !ok || existing.PropertyID != r.PropertyID {
		return domain.ErrRoomNotFound
	}
	s.rooms[r.ID] = *r
	return nil
}

func (s memRooms) Delete(_ context.Context, propertyID, roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.rooms[roomID]
	if !ok || existing.PropertyID != propertyID {
		return domain.ErrRoomNotFound
	}
	delete(s.rooms, roomID)
	return nil
}

func (s memReviews) Create(_ context.Context, r *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews[r.ID] = *r
	return nil
}

func (s memReviews) ListByProperty(_ context.Context, propertyID string) ([]*domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*domain.Review{}
	for _, r := range s.reviews {
		if r.PropertyID == propertyID {
			out = append(out, &r)
		}
	}
	return out, nil
}

func (s memReviews) AverageRating(_ context.Context, propertyID string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum, n int
	for _, r := range s.reviews {
		if r.PropertyID == propertyID {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return float64(sum) / float64(n), nil
}

func (s *memStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[tokenID] = time.Now().Add(ttl)
	return nil
}

func (s *memStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.revoked[tokenID]
	return ok, nil
}
