package catalog

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// Loader fetches the full product collection from the backing store.
type Loader func(ctx context.Context) ([]models.Product, error)

// Store holds the in-memory catalog snapshot mirrored from the database.
// Refreshes are wholesale: every reload replaces the entire snapshot and
// every subscriber receives the new full collection, the same way the
// storefront consumed realtime collection snapshots.
type Store struct {
	loader Loader

	mu       sync.RWMutex
	products []models.Product
	subs     map[int]chan []models.Product
	nextSub  int
}

func NewStore(loader Loader) *Store {
	return &Store{
		loader: loader,
		subs:   make(map[int]chan []models.Product),
	}
}

// Snapshot returns a copy of the current catalog in arrival order.
func (s *Store) Snapshot() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]models.Product, len(s.products))
	copy(snapshot, s.products)
	return snapshot
}

// Replace swaps in a new full snapshot and fans it out to subscribers.
// Slow subscribers are skipped rather than blocked; they catch up on the
// next refresh.
func (s *Store) Replace(products []models.Product) {
	snapshot := make([]models.Product, len(products))
	copy(snapshot, products)

	s.mu.Lock()
	s.products = snapshot
	for _, ch := range s.subs {
		select {
		case ch <- snapshot:
		default:
		}
	}
	s.mu.Unlock()
}

// Subscribe registers for full-snapshot deliveries. The returned cancel
// func must be called when the subscriber goes away.
func (s *Store) Subscribe() (<-chan []models.Product, func()) {
	ch := make(chan []models.Product, 1)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
	return ch, cancel
}

// Refresh reloads the snapshot from the backing store.
func (s *Store) Refresh(ctx context.Context) error {
	products, err := s.loader(ctx)
	if err != nil {
		return err
	}
	s.Replace(products)
	return nil
}

// Run keeps the snapshot fresh until ctx is cancelled: a periodic ticker
// plus an invalidation channel (remote writes) each trigger a full
// reload. Reload failures are logged and the stale snapshot stays up.
func (s *Store) Run(ctx context.Context, interval time.Duration, invalidations <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case _, ok := <-invalidations:
			if !ok {
				return
			}
		}

		if err := s.Refresh(ctx); err != nil {
			log.Printf("[catalog] refresh failed, keeping stale snapshot: %v", err)
		}
	}
}
