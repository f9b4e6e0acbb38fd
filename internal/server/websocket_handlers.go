package server

import (
	"encoding/json"
	"log/slog"

	"aurafolio/internal/middleware"
	"aurafolio/internal/realtime"
	"aurafolio/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func (s *Server) setupWebsocketRoutes(app *fiber.App) {
	// Upgrade gate: reject non-websocket requests and unknown tables before
	// the connection is hijacked.
	app.Use("/api/ws/:table", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		if !storage.KnownTable(c.Params("table")) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "unknown table",
			})
		}
		return c.Next()
	})

	app.Get("/api/ws/:table", middleware.AuthRequired, s.WebSocketChangesHandler())
}

// WebSocketChangesHandler streams change events for a single table to the
// connected client. Slow clients drop events instead of blocking the hub.
func (s *Server) WebSocketChangesHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		table := conn.Params("table")
		log := middleware.Logger

		middleware.ActiveSubscriptions.Inc()
		defer middleware.ActiveSubscriptions.Dec()

		events := make(chan realtime.Event, 64)
		sub := s.broker.SubscribeToTable(table, func(ev realtime.Event) {
			select {
			case events <- ev:
			default:
				log.Warn("dropping change event for slow subscriber",
					slog.String("table", table))
			}
		})
		defer sub.Unsubscribe()

		// Reader goroutine: we never expect client messages, but reading is
		// required to notice the peer closing.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		log.Info("change subscription opened", slog.String("table", table))
		defer log.Info("change subscription closed", slog.String("table", table))

		for {
			select {
			case <-done:
				return
			case ev := <-events:
				payload, err := json.Marshal(ev)
				if err != nil {
					continue
				}
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					return
				}
			}
		}
	})
}
