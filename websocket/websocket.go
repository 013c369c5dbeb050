package websocket

import (
	"context"
	"net/http"
	"slices"
	"sync"
	"time"

	"icebreaker/backend/icebreaker"
	"icebreaker/backend/models"
	"icebreaker/backend/utils"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	// 將訊息寫入到遠端對等點的最長時間
	writeWait = 10 * time.Second

	// 允許從遠端對等點讀取下一個 pong 訊息的最長時間。
	pongWait = 60 * time.Second

	// 發送 ping 訊息給遠端對等點的週期。
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096
)

// Server upgrades /ws requests into session views.
type Server struct {
	hub      *Hub
	engine   *icebreaker.Engine
	secret   string
	upgrader websocket.Upgrader
	log      *zap.Logger
	conns    sync.WaitGroup
}

// NewServer builds the websocket endpoint. An empty origins list, or one
// containing "*", accepts every origin.
func NewServer(hub *Hub, engine *icebreaker.Engine, secret string, origins []string, logger *zap.Logger) *Server {
	return &Server{
		hub:    hub,
		engine: engine,
		secret: secret,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || len(origins) == 0 || slices.Contains(origins, "*") || slices.Contains(origins, origin)
			},
		},
		log: logger.Named("ws"),
	}
}

// HandleConnections 處理 WebSocket 連線請求
// GET /ws?channelId=&sessionId=&mode=history
func (s *Server) HandleConnections(w http.ResponseWriter, r *http.Request) {
	who, err := utils.GetIdentityFromContext(r.Context())
	if err != nil {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	channelID, err := utils.ParseObjectID("channelId", query.Get("channelId"))
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	sessionID, err := utils.ParseObjectID("sessionId", query.Get("sessionId"))
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("failed to upgrade to websocket", zap.Error(err))
		return
	}
	s.conns.Add(1)
	defer s.conns.Done()

	id := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())
	client := &Client{
		id:        id,
		hub:       s.hub,
		conn:      conn,
		send:      make(chan Frame, sendBuffer),
		engine:    s.engine,
		secret:    s.secret,
		channelID: channelID,
		sessionID: sessionID,
		history:   query.Get("mode") == "history",
		identity:  who,
		ctx:       ctx,
		cancel:    cancel,
		log: s.log.With(
			zap.String("clientId", id),
			zap.String("channelId", channelID.Hex()),
			zap.String("sessionId", sessionID.Hex()),
			zap.String("userId", who.UserID.Hex())),
	}
	if !s.hub.Register(client) {
		client.close()
		return
	}

	go client.writePump()
	client.start()
	client.readPump() // readPump 會在連線關閉時自動取消註冊
}

func writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = jsonEncode(w, models.ErrorResponse{Message: message})
}

// Wait blocks until every connection handler returned. Cancel the hub
// first so open connections are closed.
func (s *Server) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.conns.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
