package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Tables carried on the change feed
const (
	TableCurrentPlayer  = "current_player"
	TableBiddingHistory = "bidding_history"
	TableTeams          = "teams"
)

// Change types
const (
	ChangeInsert = "INSERT"
	ChangeUpdate = "UPDATE"
	ChangeDelete = "DELETE"
)

// Event is one row change. Delivery is at-least-once; ordering holds per row
// (the gateway publishes after each commit) but not across tables, so
// consumers must treat each table's stream independently.
type Event struct {
	Table string          `json:"table"`
	Type  string          `json:"type"`
	Row   json.RawMessage `json:"row"`
	TS    time.Time       `json:"ts"`
}

// ChannelFor returns the Redis pub/sub channel for a table's stream
func ChannelFor(table string) string {
	return "feed:" + table
}

// Channels lists every feed channel a viewer subscribes to
func Channels() []string {
	return []string{
		ChannelFor(TableCurrentPlayer),
		ChannelFor(TableBiddingHistory),
		ChannelFor(TableTeams),
	}
}

// NewEvent builds an event envelope around a row struct
func NewEvent(table, changeType string, row interface{}) (Event, error) {
	data, err := json.Marshal(row)
	if err != nil {
		return Event{}, fmt.Errorf("failed to encode %s row: %w", table, err)
	}
	return Event{Table: table, Type: changeType, Row: data, TS: time.Now().UTC()}, nil
}

// Publisher emits change events over Redis pub/sub
type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// Publish sends one row change on the table's channel. Publish runs after the
// row is committed; a publish failure is logged and swallowed so a flaky feed
// never fails a write that already happened (viewers catch up on reload).
func (p *Publisher) Publish(ctx context.Context, table, changeType string, row interface{}) {
	if p == nil || p.rdb == nil {
		return
	}

	ev, err := NewEvent(table, changeType, row)
	if err != nil {
		log.Printf("[FEED] %v", err)
		return
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[FEED] failed to encode event for %s: %v", table, err)
		return
	}

	if err := p.rdb.Publish(ctx, ChannelFor(table), payload).Err(); err != nil {
		log.Printf("[FEED] publish to %s failed: %v", ChannelFor(table), err)
	}
}

// Subscribe consumes all feed channels and invokes handler for each decoded
// event until ctx is cancelled. Invalid payloads are logged and skipped.
func Subscribe(ctx context.Context, rdb *redis.Client, handler func(Event)) {
	pubsub := rdb.Subscribe(ctx, Channels()...)
	ch := pubsub.Channel()

	go func() {
		defer pubsub.Close()
		log.Printf("[FEED] subscriber started (channels=%v)", Channels())

		for {
			select {
			case <-ctx.Done():
				log.Printf("[FEED] subscriber stopped")
				return
			case msg, ok := <-ch:
				if !ok {
					log.Printf("[FEED] subscription channel closed")
					return
				}
				var ev Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					log.Printf("[FEED] invalid event payload on %s: %v", msg.Channel, err)
					continue
				}
				handler(ev)
			}
		}
	}()
}
