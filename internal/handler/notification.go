package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/efreitasn/auctionhouse/internal/notify"
)

const (
	subscriptionBuffer = 32
	writeWait          = 10 * time.Second
	pongWait           = 60 * time.Second
	pingPeriod         = pongWait * 9 / 10
)

// NotificationHandler streams notifications for one address over a websocket.
type NotificationHandler struct {
	hub      *notify.Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(hub *notify.Hub, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Stream handles GET /notifications/ws?address=...
//
// Every event the engine addresses to the given address while the socket is
// open is written as one JSON text message. Events sent while no client is
// connected are not replayed.
func (h *NotificationHandler) Stream(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if address == "" {
		WriteError(w, http.StatusBadRequest, "validation_error", "address query parameter is required")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	sub := h.hub.Subscribe(address, subscriptionBuffer)
	defer h.hub.Unsubscribe(sub)

	h.logger.Debug("notification stream opened", slog.String("address", address))

	// The client never sends anything useful; reading only surfaces the
	// close frame and keeps pong handling alive.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-sub.C():
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			h.logger.Debug("notification stream closed", slog.String("address", address))
			return
		case <-r.Context().Done():
			return
		}
	}
}
