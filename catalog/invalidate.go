package catalog

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// InvalidationChannel is the Redis pub/sub channel carrying catalog
// invalidation messages. Admin product writes publish here; every
// instance's Store reloads on receipt, so remote mutations reach all
// subscribers like a realtime collection listener would.
const InvalidationChannel = "catalog:invalidate"

// PublishInvalidation signals all instances to reload their snapshot.
// Failures are logged, not returned: the periodic refresh covers missed
// invalidations.
func PublishInvalidation(ctx context.Context, rdb *redis.Client, reason string) {
	if err := rdb.Publish(ctx, InvalidationChannel, reason).Err(); err != nil {
		log.Printf("[catalog] failed to publish invalidation (%s): %v", reason, err)
	}
}

// ListenInvalidations subscribes to the invalidation channel and bridges
// messages onto a plain struct channel for Store.Run. The returned
// channel closes when ctx is cancelled.
func ListenInvalidations(ctx context.Context, rdb *redis.Client) <-chan struct{} {
	sub := rdb.Subscribe(ctx, InvalidationChannel)
	out := make(chan struct{}, 1)

	go func() {
		defer close(out)
		defer sub.Close()

		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				log.Printf("[catalog] invalidation received: %s", msg.Payload)
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()

	return out
}
