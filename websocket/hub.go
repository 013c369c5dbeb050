package websocket

import (
	"context"

	"go.uber.org/zap"
)

// Hub 維護所有活躍的 WebSocket 客戶端，按 session 分組並廣播在線人數
type Hub struct {
	clientsBySession map[string]map[*Client]bool
	register         chan *Client
	unregister       chan *Client
	done             chan struct{}
	log              *zap.Logger
}

// NewHub 創建並返回一個新的 Hub 實例
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clientsBySession: make(map[string]map[*Client]bool),
		register:         make(chan *Client),
		unregister:       make(chan *Client),
		done:             make(chan struct{}),
		log:              logger.Named("hub"),
	}
}

// Run 啟動 Hub 的運行迴圈。ctx 結束時關閉所有連線
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for _, clients := range h.clientsBySession {
				for client := range clients {
					client.close()
				}
			}
			h.clientsBySession = make(map[string]map[*Client]bool)
			return
		case client := <-h.register:
			key := client.sessionKey()
			if _, ok := h.clientsBySession[key]; !ok {
				h.clientsBySession[key] = make(map[*Client]bool)
			}
			h.clientsBySession[key][client] = true
			h.log.Debug("client registered",
				zap.String("clientId", client.id),
				zap.String("session", key),
				zap.Int("clients", len(h.clientsBySession[key])))
			h.broadcastPresence(client)
		case client := <-h.unregister:
			key := client.sessionKey()
			clients, ok := h.clientsBySession[key]
			if !ok || !clients[client] {
				continue
			}
			delete(clients, client)
			if len(clients) == 0 {
				delete(h.clientsBySession, key) // 如果 session 沒有客戶端了，就刪除
			}
			h.log.Debug("client unregistered",
				zap.String("clientId", client.id),
				zap.String("session", key),
				zap.Int("clients", len(clients)))
			h.broadcastPresence(client)
		}
	}
}

// Register blocks until the hub accepted the client or stopped.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// broadcastPresence 廣播 session 內的在線人數
func (h *Hub) broadcastPresence(from *Client) {
	clients := h.clientsBySession[from.sessionKey()]
	frame := Frame{Type: FramePresence, Data: Presence{SessionID: from.sessionID.Hex(), Count: len(clients)}}
	for client := range clients {
		client.enqueue(frame)
	}
}
