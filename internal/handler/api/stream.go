package api

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	resdto "ride-together/internal/handler/dto/response"
	"ride-together/internal/handler/httperr"
	"ride-together/internal/handler/middleware"
	"ride-together/internal/pkg/config"
	"ride-together/internal/usecase/queries"
	"ride-together/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	streamBuffer = 32
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = pongWait * 9 / 10
)

// StreamHandler pushes committed booking changes to the caller over a
// WebSocket, the live counterpart of the pending and confirmed lists.
type StreamHandler struct {
	q        queries.BookingQueries
	upgrader websocket.Upgrader
}

func NewStreamHandler(q queries.BookingQueries, cfg config.Config) *StreamHandler {
	allowed := cfg.CORS.AllowOrigins
	return &StreamHandler{
		q: q,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowed, origin)
			},
		},
	}
}

// @Summary Booking change stream
// @Description WebSocket feed of booking changes concerning the caller. Optional status filter (pending, accepted, declined).
// @Tags bookings
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Success 101 "Switching Protocols"
// @Router /api/bookings/stream [get]
func (h *StreamHandler) Stream(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	status := c.Query("status")
	switch status {
	case "", "pending", "accepted", "declined":
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Unknown status filter", nil)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		slog.Warn("websocket upgrade failed", "user_id", userID.String(), "error", err.Error())
		return
	}
	defer conn.Close()

	events := make(chan shared.ChangeEvent, streamBuffer)
	unsubscribe := h.q.Watch(userID, status, func(ev shared.ChangeEvent) {
		select {
		case events <- ev:
		default:
			slog.Warn("change stream buffer full, dropping event",
				"user_id", userID.String(),
				"event_id", ev.ID.String())
		}
	})
	defer unsubscribe()

	closed := make(chan struct{})
	go readUntilClosed(conn, closed)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	if err := writeFrame(conn, gin.H{"kind": "connected"}); err != nil {
		return
	}
	for {
		select {
		case ev := <-events:
			if err := writeFrame(conn, resdto.FromChangeEvent(ev)); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}

// readUntilClosed drains client frames so pongs and close frames are
// processed. Clients are not expected to send anything else.
func readUntilClosed(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeFrame(conn *websocket.Conn, v any) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}
