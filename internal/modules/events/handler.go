package events

import (
	"log"
	"net/http"

	"connecthub/internal/pkg/jwt"
	"connecthub/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// TODO: restrict origins once the client hosts are fixed
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	hub        *Hub
	jwtService *jwt.Service
}

func NewHandler(hub *Hub, jwtService *jwt.Service) *Handler {
	return &Handler{hub: hub, jwtService: jwtService}
}

func (h *Handler) RegisterRoutes(v *gin.RouterGroup) {
	v.GET("/events/ws", h.Subscribe)
}

// Subscribe upgrades the connection and keeps it registered until the
// client disconnects. Auth rides in the token query parameter because the
// browser WebSocket API cannot set headers.
func (h *Handler) Subscribe(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "Token is required")
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("events: websocket upgrade failed user_id=%d err=%v", claims.UserID, err)
		return
	}

	h.hub.Register(claims.UserID, conn)
	log.Printf("events: subscribed user_id=%d online=%d", claims.UserID, h.hub.OnlineCount())

	defer func() {
		h.hub.Unregister(claims.UserID)
		log.Printf("events: unsubscribed user_id=%d", claims.UserID)
	}()

	// drain control frames; clients never send data on this socket
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
