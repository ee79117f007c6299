package controllers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/VindiceCode/plantprince/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsWriteWait caps how long one broadcast write may block.
const wsWriteWait = 2 * time.Second

var (
	wsClients = make(map[*websocket.Conn]bool)
	wsMu      sync.Mutex
)

// HandleWebSocket upgrades the connection and keeps it registered for
// activity broadcasts until the client goes away.
func HandleWebSocket(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	defer func() {
		wsMu.Lock()
		delete(wsClients, conn)
		wsMu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// BroadcastActivity sends a recommendation event to every connected
// client, dropping clients whose writes fail or time out.
func BroadcastActivity(event models.ActivityEvent) {
	msg, _ := json.Marshal(event)

	wsMu.Lock()
	defer wsMu.Unlock()
	for conn := range wsClients {
		conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			delete(wsClients, conn)
			conn.Close()
		}
	}
}
