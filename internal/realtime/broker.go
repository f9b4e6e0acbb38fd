package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"runtime/debug"
	"strings"

	"github.com/redis/go-redis/v9"
)

const channelPrefix = "changes:"

// ChannelFor derives the Redis pub/sub channel name for a table.
func ChannelFor(table string) string {
	return channelPrefix + table
}

// Broker publishes change events and routes them to hub subscribers.
// With Redis configured, events travel through pub/sub so every instance
// sees changes committed by any of them; without Redis the broker
// dispatches to the local hub directly.
type Broker struct {
	rdb *redis.Client
	hub *Hub
}

// NewBroker creates a Broker. rdb may be nil for single-instance or test use.
func NewBroker(rdb *redis.Client) *Broker {
	return &Broker{rdb: rdb, hub: NewHub()}
}

// SubscribeToTable registers handler for all insert/update/delete events on
// the table and returns a handle whose Unsubscribe releases the channel.
func (b *Broker) SubscribeToTable(table string, handler Handler) *Subscription {
	return b.hub.Subscribe(table, handler)
}

// Publish emits a change event for the event's table.
func (b *Broker) Publish(ctx context.Context, ev Event) error {
	if b.rdb == nil {
		b.hub.Dispatch(ev)
		return nil
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}
	return b.rdb.Publish(ctx, ChannelFor(ev.Table), payload).Err()
}

// StartWiring subscribes to the changes:* pattern and forwards incoming
// events to the local hub. No-op without Redis (Publish already dispatches
// locally in that mode).
func (b *Broker) StartWiring(ctx context.Context) error {
	if b.rdb == nil {
		return nil
	}
	sub := b.rdb.PSubscribe(ctx, channelPrefix+"*")
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				b.handleMessage(msg.Channel, msg.Payload)
			}
		}
	}()

	return nil
}

func (b *Broker) handleMessage(channel, payload string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC in change subscriber: %v\n%s", r, debug.Stack())
		}
	}()

	if !strings.HasPrefix(channel, channelPrefix) {
		log.Printf("invalid change channel: %s", channel)
		return
	}

	var ev Event
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		log.Printf("invalid change payload on %s: %v", channel, err)
		return
	}
	if ev.Table == "" {
		ev.Table = strings.TrimPrefix(channel, channelPrefix)
	}
	b.hub.Dispatch(ev)
}

// Shutdown drops all subscriptions.
func (b *Broker) Shutdown(context.Context) error {
	b.hub.Clear()
	return nil
}

// Hub exposes the underlying hub, mainly for metrics and tests.
func (b *Broker) Hub() *Hub {
	return b.hub
}
