package handlers

import (
	"net/http"
	"strconv"

	"icebreaker/backend/models"
)

// StartSession 由頻道擁有者開始新的破冰活動
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	ch, ok := h.channel(w, r)
	if !ok {
		return
	}
	sess, err := h.engine.Sessions.Create(r.Context(), ch, who)
	if err != nil {
		sendError(w, h.log, "start session", err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

func (h *Handler) LatestSession(w http.ResponseWriter, r *http.Request) {
	channelID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	sess, err := h.engine.Sessions.Latest(r.Context(), channelID)
	if err != nil {
		sendError(w, h.log, "latest session", err)
		return
	}
	if sess == nil {
		sendJSONError(w, "No session yet", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// ActiveSession is polled by members waiting for the owner to start.
func (h *Handler) ActiveSession(w http.ResponseWriter, r *http.Request) {
	channelID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	sess, err := h.engine.Sessions.Active(r.Context(), channelID)
	if err != nil {
		sendError(w, h.log, "active session", err)
		return
	}
	if sess == nil {
		sendJSONError(w, "No active session", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	channelID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	sessionID, ok := pathID(w, r, "sid")
	if !ok {
		return
	}
	sess, err := h.engine.Sessions.Get(r.Context(), channelID, sessionID)
	if err != nil {
		sendError(w, h.log, "get session", err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// EndSession 結束活動，重複呼叫不會出錯
func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	ch, ok := h.channel(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathID(w, r, "sid")
	if !ok {
		return
	}
	if err := h.engine.Sessions.End(r.Context(), ch, sessionID, who); err != nil {
		sendError(w, h.log, "end session", err)
		return
	}
	sess, err := h.engine.Sessions.Get(r.Context(), ch.ID, sessionID)
	if err != nil {
		sendError(w, h.log, "get session", err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// ListMessages returns up to ?limit= of the newest messages, oldest first.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	channelID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	sessionID, ok := pathID(w, r, "sid")
	if !ok {
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			sendJSONError(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = n
	}
	msgs, err := h.engine.Messages.History(r.Context(), channelID, sessionID, limit)
	if err != nil {
		sendError(w, h.log, "list messages", err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	channelID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	sessionID, ok := pathID(w, r, "sid")
	if !ok {
		return
	}
	var req models.MessageRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	if h.engine.Messages.CleanText(req.Text) == "" {
		sendJSONError(w, "Message text is empty", http.StatusBadRequest)
		return
	}
	msg, err := h.engine.Messages.Send(r.Context(), channelID, sessionID, who, req.Text)
	if err != nil {
		sendError(w, h.log, "send message", err)
		return
	}
	if msg == nil {
		sendJSONError(w, "Session is not active", http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}
