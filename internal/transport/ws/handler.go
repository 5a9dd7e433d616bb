// Package ws pushes task progress events to connected clients over
// WebSocket. Each connection subscribes to one user's event stream; a
// dropped or silent connection is detected by the ping/pong keepalive and
// cleaned up without affecting other subscribers.
package ws

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/service/tasks"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// subscriber is the per-user event fan-out the handler registers with.
type subscriber interface {
	Subscribe(userID string) *tasks.Subscription
	Unsubscribe(sub *tasks.Subscription)
}

// Handler serves GET /ws/progress/{user_id}.
type Handler struct {
	broker   subscriber
	upgrader websocket.Upgrader
	log      *slog.Logger
}

// NewHandler creates a Handler. Origin checks are delegated to the CORS
// layer in front of the mux.
func NewHandler(broker subscriber, logger *slog.Logger) *Handler {
	return &Handler{
		broker: broker,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		log: logger.With("handler", "ws"),
	}
}

// Progress upgrades the connection and streams the user's task events until
// the client disconnects or the keepalive expires.
func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	if userID == "" {
		http.Error(w, "missing user id", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		h.log.Warn("websocket upgrade failed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		return
	}

	sub := h.broker.Subscribe(userID)
	h.log.Info("subscriber connected", slog.String("user_id", userID))

	go h.readLoop(conn, sub)
	h.writeLoop(conn, sub, userID)
}

// readLoop discards client frames but keeps the connection's control frame
// processing alive. A read error means the client is gone; unsubscribing
// closes the event channel, which ends the write loop.
func (h *Handler) readLoop(conn *websocket.Conn, sub *tasks.Subscription) {
	defer h.broker.Unsubscribe(sub)

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writeLoop serializes all writes on the connection: task events as JSON
// text frames and periodic pings.
func (h *Handler) writeLoop(conn *websocket.Conn, sub *tasks.Subscription, userID string) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		h.broker.Unsubscribe(sub)
		conn.Close() //nolint:errcheck
		h.log.Info("subscriber disconnected", slog.String("user_id", userID))
	}()

	for {
		select {
		case event, ok := <-sub.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, //nolint:errcheck
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
