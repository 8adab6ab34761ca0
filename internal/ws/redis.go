package ws

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Rishikesh183/auction-tracker/internal/feed"
)

var rdbClient *redis.Client

// lastAnimatedTTL bounds how long a viewer's dedup marker survives; a viewer
// returning a day later can see the banner again without harm.
const lastAnimatedTTL = 24 * time.Hour

func SetRedisClient(r *redis.Client) {
	rdbClient = r
}

// StartFeedSubscriber wires the change feed into the viewer hub
func StartFeedSubscriber(ctx context.Context, hub *Hub) {
	if rdbClient == nil {
		log.Println("[WS] Redis client not set; feed subscriber not started")
		return
	}

	feed.Subscribe(ctx, rdbClient, hub.Broadcast)
}

func lastAnimatedKey(viewerID string) string {
	return fmt.Sprintf("lastseen:%s", viewerID)
}

// loadLastAnimated fetches the viewer's last animated player id ("" if none)
func loadLastAnimated(ctx context.Context, viewerID string) string {
	if rdbClient == nil {
		return ""
	}
	val, err := rdbClient.Get(ctx, lastAnimatedKey(viewerID)).Result()
	if err != nil {
		return ""
	}
	return val
}

// saveLastAnimated persists the dedup marker after a transition is delivered
func saveLastAnimated(ctx context.Context, viewerID, playerID string) {
	if rdbClient == nil {
		return
	}
	if err := rdbClient.Set(ctx, lastAnimatedKey(viewerID), playerID, lastAnimatedTTL).Err(); err != nil {
		log.Printf("[WS] failed to persist last animated id for viewer %s: %v", viewerID, err)
	}
}
