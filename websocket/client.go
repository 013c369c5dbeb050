package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"icebreaker/backend/icebreaker"
	"icebreaker/backend/models"
	"icebreaker/backend/utils"

	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const sendBuffer = 256

// Client 代表一個連到某個 session 畫面的 WebSocket 客戶端
type Client struct {
	id        string
	hub       *Hub
	conn      *websocket.Conn // WebSocket 連線物件，透過它來讀寫訊息
	send      chan Frame      // 用於發送訊息的緩衝通道
	engine    *icebreaker.Engine
	secret    string
	channelID primitive.ObjectID
	sessionID primitive.ObjectID
	history   bool
	log       *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once

	// Owned by the readPump goroutine.
	identity models.Identity
	run      *run
}

// run is one orchestrator plus the session observation feeding it.
type run struct {
	ctx    context.Context
	cancel context.CancelFunc
	events chan icebreaker.Event
	wg     sync.WaitGroup
}

func (r *run) stop() {
	r.cancel()
	r.wg.Wait()
}

func (c *Client) sessionKey() string {
	return c.channelID.Hex() + "/" + c.sessionID.Hex()
}

// enqueue never blocks; a client that cannot keep up is disconnected.
func (c *Client) enqueue(f Frame) {
	select {
	case <-c.ctx.Done():
		return
	default:
	}
	select {
	case c.send <- f:
	default:
		c.log.Warn("send buffer full, closing connection", zap.String("frame", f.Type))
		c.close()
	}
}

func (c *Client) close() {
	c.once.Do(func() {
		c.cancel()
		_ = c.conn.Close()
	})
}

func (c *Client) sendError(message string) {
	c.enqueue(Frame{Type: FrameError, Data: ErrorData{Message: message}})
}

// Display

func (c *Client) ShowView(v icebreaker.View) { c.enqueue(Frame{Type: FrameView, Data: v}) }

func (c *Client) ShowMessages(msgs []models.Message) {
	if msgs == nil {
		msgs = []models.Message{}
	}
	c.enqueue(Frame{Type: FrameMessages, Data: msgs})
}

func (c *Client) ShowPrompt(p icebreaker.Prompt) { c.enqueue(Frame{Type: FramePrompt, Data: p}) }

func (c *Client) Navigate(target string) {
	c.enqueue(Frame{Type: FrameRedirect, Data: Redirect{Target: target}})
}

// start replaces the running orchestrator with a fresh one. One-shot
// effects of the previous run are not carried over.
func (c *Client) start() {
	if c.run != nil {
		c.run.stop()
	}
	ctx, cancel := context.WithCancel(c.ctx)
	r := &run{ctx: ctx, cancel: cancel, events: make(chan icebreaker.Event)}
	c.run = r

	effects := icebreaker.NewSessionEffects(c.engine, c.channelID, c.sessionID, c, c.log)
	orch := icebreaker.NewOrchestrator(c.channelID, c.sessionID, c.history, c.identity, effects, c.log)
	r.wg.Add(2)
	go func() {
		defer r.wg.Done()
		orch.Run(ctx, r.events)
	}()
	go func() {
		defer r.wg.Done()
		c.observeSession(ctx, r.events)
	}()
}

func (c *Client) stop() {
	if c.run != nil {
		c.run.stop()
		c.run = nil
	}
}

// observeSession 將 session 的變化轉成 orchestrator 的事件
func (c *Client) observeSession(ctx context.Context, events chan<- icebreaker.Event) {
	deliver := func(ev icebreaker.Event) bool {
		select {
		case events <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}

	w, err := c.engine.Sessions.Observe(ctx, c.channelID, c.sessionID)
	if err != nil {
		deliver(icebreaker.ErrorEvent(err))
		return
	}
	defer w.Cancel()

	for snap := range w.C {
		ev := icebreaker.ErrorEvent(snap.Err)
		if snap.Err == nil {
			ev = icebreaker.SessionEvent(snap.Value)
			c.enqueue(Frame{Type: FrameSession, Data: snap.Value})
		}
		if !deliver(ev) {
			return
		}
	}
}

func (c *Client) deliver(ev icebreaker.Event) {
	if c.run == nil {
		return
	}
	select {
	case c.run.events <- ev:
	case <-c.run.ctx.Done():
	}
}

// 讀取用戶傳來的訊息
func (c *Client) readPump() {
	defer func() {
		c.stop()
		c.hub.Unregister(c)
		c.close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { return c.conn.SetReadDeadline(time.Now().Add(pongWait)) })
	for {
		_, p, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Debug("read failed", zap.Error(err))
			}
			return
		}

		var frame ClientFrame
		if err := json.Unmarshal(p, &frame); err != nil {
			c.sendError("Invalid frame")
			continue
		}
		c.handle(frame)
	}
}

func (c *Client) handle(frame ClientFrame) {
	switch frame.Type {
	case ClientSend:
		c.sendMessage(frame.Text)
	case ClientAuth:
		who, err := utils.ParseToken(frame.Token, c.secret)
		if err != nil {
			c.sendError("Invalid or expired token")
			return
		}
		c.identity = who
		c.deliver(icebreaker.IdentityEvent(who))
	case ClientResubscribe:
		c.start()
	default:
		c.sendError("Unknown frame type")
	}
}

func (c *Client) sendMessage(text string) {
	msg, err := c.engine.Messages.Send(c.ctx, c.channelID, c.sessionID, c.identity, text)
	switch {
	case errors.Is(err, icebreaker.ErrTransient):
		c.sendError("Message could not be delivered, try again")
	case err != nil:
		c.log.Warn("send message", zap.Error(err))
		c.sendError("Message could not be delivered")
	case msg == nil:
		c.sendError("Message was not sent")
	}
}

// 接收要送出的 frame，丟給前端
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()
	for {
		select {
		case frame := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(frame); err != nil {
				c.log.Debug("write failed", zap.Error(err))
				return
			}

		// 接收定時器以保持連線活躍並檢測客戶端是否仍在線。
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
