package handler

import (
	"net/http"

	gorilla "github.com/gorilla/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"taruvae/internal/infrastructure/websocket"
	"taruvae/pkg/logger"
)

type WebSocketHandler struct {
	manager  *websocket.Manager
	upgrader gorilla.Upgrader
}

func NewWebSocketHandler(manager *websocket.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		manager: manager,
		upgrader: gorilla.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleConnection upgrades the request and serves subscription commands
// until the client disconnects.
func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("ws: upgrade failed: %v", err)
		return err
	}

	client := websocket.NewClient(uuid.New().String(), conn)
	h.manager.Register <- client

	go client.WritePump()
	client.ReadPump(c.Request().Context(), h.manager)

	return nil
}
