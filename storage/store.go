package storage

import (
	"context"
	"sync"
	"time"

	"golang.org/x/exp/slices"

	"github.com/AchilleKettyetta/bstay/models"
)

// Store holds every collection in memory and keeps the adapter in sync: each
// mutation persists the touched collection before it returns. Reads hand out
// copies, never internal slices.
type Store struct {
	mu           sync.RWMutex
	kv           *Adapter
	users        []models.User
	properties   []models.Property
	reservations []models.Reservation
	session      *models.User
}

func NewStore(kv *Adapter) *Store {
	return &Store{kv: kv}
}

// Initialize loads all four collections. Properties fall back to the seed
// set, users and reservations to empty, the session to anonymous.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = []models.User{}
	s.kv.Load(ctx, KeyUsers, &s.users)

	s.properties = DefaultProperties()
	s.kv.Load(ctx, KeyProperties, &s.properties)

	s.reservations = []models.Reservation{}
	s.kv.Load(ctx, KeyReservations, &s.reservations)

	s.session = nil
	var current *models.User
	s.kv.Load(ctx, KeyCurrentUser, &current)
	if current != nil {
		// A restored session must still point at a known user.
		idx := slices.IndexFunc(s.users, func(u models.User) bool { return u.ID == current.ID })
		if idx >= 0 {
			user := s.users[idx]
			s.session = &user
		}
	}
}

// Register creates a new account. Emails are unique, compared exactly as
// stored.
func (s *Store) Register(ctx context.Context, name, email, phone, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.ContainsFunc(s.users, func(u models.User) bool { return u.Email == email }) {
		return nil, ErrEmailTaken
	}

	user := models.User{
		ID:       NextID(),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: password,
		JoinDate: time.Now(),
	}
	s.users = append(s.users, user)
	s.kv.Save(ctx, KeyUsers, s.users)
	return &user, nil
}

// Authenticate matches email and password exactly and opens a session for
// the matched user.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.users, func(u models.User) bool {
		return u.Email == email && u.Password == password
	})
	if idx < 0 {
		return nil, ErrInvalidCredentials
	}

	user := s.users[idx]
	s.session = &user
	s.kv.Save(ctx, KeyCurrentUser, s.session)
	return &user, nil
}

// Logout clears the session. It never fails.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	s.kv.Save(ctx, KeyCurrentUser, nil)
}

// CurrentUser returns a copy of the session user, or nil when anonymous.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	user := *s.session
	return &user
}

// ListProperties returns properties in insertion order. A non-empty location
// restricts the result to exact matches on the city key.
func (s *Store) ListProperties(location string) []models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Property, 0, len(s.properties))
	for _, p := range s.properties {
		if location == "" || p.Location == location {
			out = append(out, p)
		}
	}
	return out
}

// Locations returns the distinct city keys in first-seen order.
func (s *Store) Locations() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []string{}
	for _, p := range s.properties {
		if !slices.Contains(out, p.Location) {
			out = append(out, p.Location)
		}
	}
	return out
}

func (s *Store) GetProperty(id int64) (models.Property, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := slices.IndexFunc(s.properties, func(p models.Property) bool { return p.ID == id })
	if idx < 0 {
		return models.Property{}, false
	}
	return s.properties[idx], true
}

// ListReservationsForUser returns the user's reservations in insertion order.
func (s *Store) ListReservationsForUser(userID int64) []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Reservation{}
	for _, r := range s.reservations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

// AddReservation appends a reservation built by the booking engine and
// persists the collection.
func (s *Store) AddReservation(ctx context.Context, r models.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = append(s.reservations, r)
	s.kv.Save(ctx, KeyReservations, s.reservations)
}

// SaveAll re-saves every collection. It is idempotent and safe to call at
// any point, including before any mutation happened; used as the teardown
// safety net.
func (s *Store) SaveAll(ctx context.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.kv.Save(ctx, KeyUsers, s.users)
	s.kv.Save(ctx, KeyProperties, s.properties)
	s.kv.Save(ctx, KeyReservations, s.reservations)
	s.kv.Save(ctx, KeyCurrentUser, s.session)
}
