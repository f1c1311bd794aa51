package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

func TestStore_SnapshotIsolation(t *testing.T) {
	s := NewStore(nil)
	s.Replace(makeCatalog(3))

	snap := s.Snapshot()
	require.Len(t, snap, 3)

	// Mutating the returned snapshot must not touch the store.
	snap[0].Name = "tampered"
	assert.Equal(t, "p00", s.Snapshot()[0].Name)
}

func TestStore_Subscribe(t *testing.T) {
	s := NewStore(nil)
	ch, cancel := s.Subscribe()
	defer cancel()

	s.Replace(makeCatalog(2))

	select {
	case snap := <-ch:
		assert.Len(t, snap, 2)
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive snapshot")
	}
}

func TestStore_SubscribeCancel(t *testing.T) {
	s := NewStore(nil)
	_, cancel := s.Subscribe()
	cancel()

	// Must not panic or block with no live subscribers.
	s.Replace(makeCatalog(1))
	assert.Len(t, s.Snapshot(), 1)
}

func TestStore_Refresh(t *testing.T) {
	t.Run("loader result replaces the snapshot wholesale", func(t *testing.T) {
		calls := 0
		s := NewStore(func(ctx context.Context) ([]models.Product, error) {
			calls++
			return makeCatalog(calls), nil
		})

		require.NoError(t, s.Refresh(context.Background()))
		assert.Len(t, s.Snapshot(), 1)

		require.NoError(t, s.Refresh(context.Background()))
		assert.Len(t, s.Snapshot(), 2)
	})

	t.Run("loader failure keeps the stale snapshot", func(t *testing.T) {
		fail := false
		s := NewStore(func(ctx context.Context) ([]models.Product, error) {
			if fail {
				return nil, errors.New("connection reset")
			}
			return makeCatalog(4), nil
		})

		require.NoError(t, s.Refresh(context.Background()))
		fail = true
		require.Error(t, s.Refresh(context.Background()))
		assert.Len(t, s.Snapshot(), 4)
	})
}

func TestStore_RunInvalidation(t *testing.T) {
	loaded := make(chan struct{}, 8)
	s := NewStore(func(ctx context.Context) ([]models.Product, error) {
		loaded <- struct{}{}
		return makeCatalog(1), nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	invalidations := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Hour, invalidations)
		close(done)
	}()

	invalidations <- struct{}{}
	select {
	case <-loaded:
	case <-time.After(time.Second):
		t.Fatal("invalidation did not trigger a reload")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on context cancel")
	}
}
