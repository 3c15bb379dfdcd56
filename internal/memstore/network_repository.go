// Package memstore holds registry state in process memory.
package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Flarenzy/hostreg/internal/domain"
	"github.com/google/uuid"
)

type NetworkRepository struct {
	mu     sync.RWMutex
	byID   map[domain.NetworkID]domain.NetworkEntry
	byName map[string]domain.NetworkID

	now   func() time.Time
	newID func() domain.NetworkID
}

type Option func(*NetworkRepository)

func WithClock(now func() time.Time) Option {
	return func(r *NetworkRepository) {
		r.now = now
	}
}

func WithIDGenerator(newID func() domain.NetworkID) Option {
	return func(r *NetworkRepository) {
		r.newID = newID
	}
}

func NewNetworkRepository(opts ...Option) *NetworkRepository {
	r := &NetworkRepository{
		byID:   make(map[domain.NetworkID]domain.NetworkEntry),
		byName: make(map[string]domain.NetworkID),
		now:    time.Now,
		newID: func() domain.NetworkID {
			return domain.NetworkID(uuid.NewString())
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *NetworkRepository) List(_ context.Context) ([]domain.NetworkEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.NetworkEntry, 0, len(r.byID))
	for _, entry := range r.byID {
		out = append(out, entry)
	}
	return out, nil
}

func (r *NetworkRepository) FindByID(_ context.Context, id domain.NetworkID) (domain.NetworkEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byID[id]
	if !ok {
		return domain.NetworkEntry{}, domain.ErrNetworkNotFound
	}
	return entry, nil
}

func (r *NetworkRepository) FindByName(_ context.Context, name string) (domain.NetworkEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[name]
	if !ok {
		return domain.NetworkEntry{}, domain.ErrNetworkNotFound
	}
	return r.byID[id], nil
}

func (r *NetworkRepository) Create(ctx context.Context, input domain.CreateNetworkRecord) (domain.NetworkEntry, error) {
	if err := ctx.Err(); err != nil {
		return domain.NetworkEntry{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[input.Name]; taken {
		return domain.NetworkEntry{}, fmt.Errorf("%w: network %q already exists", domain.ErrConflict, input.Name)
	}

	entry := domain.NetworkEntry{
		ID:        r.newID(),
		Name:      input.Name,
		CreatedAt: r.now().UTC(),
		Network:   domain.NewNetwork(domain.WithFamily(input.Family)),
	}
	if _, taken := r.byID[entry.ID]; taken {
		return domain.NetworkEntry{}, fmt.Errorf("%w: network id %s already exists", domain.ErrConflict, entry.ID)
	}

	r.byID[entry.ID] = entry
	r.byName[entry.Name] = entry.ID
	return entry, nil
}

func (r *NetworkRepository) Delete(_ context.Context, id domain.NetworkID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.byID[id]
	if !ok {
		return false, nil
	}
	delete(r.byID, id)
	delete(r.byName, entry.Name)
	return true, nil
}
