package handlers

import (
	"net/http"
	"time"

	"github.com/funnelbot/leadintake/internal/application"
	"github.com/funnelbot/leadintake/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamFunnel pushes a live funnel snapshot every few seconds until the
// client goes away.
func StreamFunnel(c *gin.Context, analytics *application.AnalyticsService) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(3 * time.Second)
	defer ticker.Stop()

	for {
		stats, err := analytics.Funnel()
		if err != nil {
			_ = conn.WriteMessage(websocket.TextMessage, []byte("funnel error: "+err.Error()))
			return
		}
		if err := conn.WriteJSON(stats); err != nil {
			return
		}
		<-ticker.C
	}
}
