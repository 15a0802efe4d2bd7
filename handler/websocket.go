package handler

import (
	"net/http"

	"Crux/config"
	"Crux/pkg/jwt"
	"Crux/socket"
	"Crux/types"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSHandler struct {
	Config *config.Config
	Hub    *socket.Hub
}

func (h *WSHandler) RegisterRouter(r gin.IRouter) {
	r.GET("/ws", h.HandleWS)
}

// HandleWS 建立实时连接。浏览器的 WebSocket 不能带自定义头，token 走 query
func (h *WSHandler) HandleWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.Status(http.StatusUnauthorized)
		return
	}
	claims, err := jwt.ParseToken([]byte(h.Config.Jwt.Secret), "access", token)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := socket.NewClient(h.Hub, conn, claims.UserID)
	// 自己的通知话题连上就订阅，不用客户端显式 join
	h.Hub.Subscribe(client, types.UserTopic(claims.UserID))

	client.ReadLoop()
}
