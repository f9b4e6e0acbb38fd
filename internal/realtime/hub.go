// Package realtime delivers row-level change events to table subscribers.
package realtime

import "sync"

// Change event kinds.
const (
	EventInsert = "INSERT"
	EventUpdate = "UPDATE"
	EventDelete = "DELETE"
)

// Event is a single committed change on a table.
type Event struct {
	Table  string `json:"table"`
	Type   string `json:"type"`
	Record any    `json:"record,omitempty"`
}

// Handler receives change events for a subscribed table.
type Handler func(Event)

// Subscription is a live registration of one handler against one table.
// Unsubscribe is idempotent and safe to call from any goroutine.
type Subscription struct {
	hub     *Hub
	table   string
	handler Handler
	once    sync.Once
}

// Unsubscribe detaches the handler. Further events produce no invocations.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.hub.remove(s.table, s)
	})
}

// Hub maps table name -> set of active subscriptions and fans events out.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*Subscription]struct{}
}

// NewHub creates an empty subscription hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*Subscription]struct{})}
}

// Subscribe registers handler for all event kinds on the given table.
func (h *Hub) Subscribe(table string, handler Handler) *Subscription {
	sub := &Subscription{hub: h, table: table, handler: handler}

	h.mu.Lock()
	defer h.mu.Unlock()
	m, ok := h.subs[table]
	if !ok {
		m = make(map[*Subscription]struct{})
		h.subs[table] = m
	}
	m[sub] = struct{}{}
	return sub
}

func (h *Hub) remove(table string, sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if m, ok := h.subs[table]; ok {
		delete(m, sub)
		if len(m) == 0 {
			delete(h.subs, table)
		}
	}
}

// Dispatch invokes every handler subscribed to the event's table.
func (h *Hub) Dispatch(ev Event) {
	h.mu.RLock()
	handlers := make([]Handler, 0, len(h.subs[ev.Table]))
	for sub := range h.subs[ev.Table] {
		handlers = append(handlers, sub.handler)
	}
	h.mu.RUnlock()

	// Handlers run outside the lock so a handler may unsubscribe itself.
	for _, fn := range handlers {
		fn(ev)
	}
}

// SubscriberCount reports the number of active subscriptions for a table.
func (h *Hub) SubscriberCount(table string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[table])
}

// Clear drops every subscription. Used on shutdown.
func (h *Hub) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs = make(map[string]map[*Subscription]struct{})
}
