package memory

import (
	"context"

	"github.com/hhubb22/kea-conf-generate/core/idstore"
	"github.com/ppacher/webthings-mqtt-gateway/pkg/mutex"
)

// Store implements the idstore.Store interface but does not provide
// any persistence at all as every allocation is only kept in memory
type Store struct {
	l      *mutex.Mutex // context.Context aware mutex to protect all fields below
	ids    map[string]uint64
	lastID uint64
}

// New returns a new memory store
func New() *Store {
	return makeStore()
}

func makeStore() *Store {
	return &Store{
		l:   mutex.New(),
		ids: make(map[string]uint64),
	}
}

// Get implements idstore.Store
func (s *Store) Get(ctx context.Context, cidr string) (uint64, bool, error) {
	if !s.l.TryLock(ctx) {
		return 0, false, ctx.Err()
	}
	defer s.l.Unlock()

	id, ok := s.ids[cidr]

	return id, ok, nil
}

// Allocate implements idstore.Store
func (s *Store) Allocate(ctx context.Context, cidr string) (uint64, error) {
	if !s.l.TryLock(ctx) {
		return 0, ctx.Err()
	}
	defer s.l.Unlock()

	if id, ok := s.ids[cidr]; ok {
		return id, nil
	}

	s.lastID++
	s.ids[cidr] = s.lastID

	return s.lastID, nil
}

// List implements idstore.Store
func (s *Store) List(ctx context.Context) (map[string]uint64, error) {
	if !s.l.TryLock(ctx) {
		return nil, ctx.Err()
	}
	defer s.l.Unlock()

	ids := make(map[string]uint64, len(s.ids))
	for cidr, id := range s.ids {
		ids[cidr] = id
	}

	return ids, nil
}

// Close implements idstore.Store
func (s *Store) Close() error {
	return nil
}

// compile time check
var _ idstore.Store = &Store{}
