package handlers

import (
	"net/http"

	"icebreaker/backend/icebreaker"
	"icebreaker/backend/models"
	"icebreaker/backend/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler serves the channel, session and history endpoints.
type Handler struct {
	engine *icebreaker.Engine
	log    *zap.Logger
}

func NewHandler(engine *icebreaker.Engine, logger *zap.Logger) *Handler {
	return &Handler{engine: engine, log: logger.Named("handlers")}
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (primitive.ObjectID, bool) {
	id, err := utils.ParseObjectID(name, mux.Vars(r)[name])
	if err != nil {
		sendJSONError(w, err.Error(), http.StatusBadRequest)
		return primitive.NilObjectID, false
	}
	return id, true
}

// channel loads the {id} channel of the request.
func (h *Handler) channel(w http.ResponseWriter, r *http.Request) (*models.Channel, bool) {
	channelID, ok := pathID(w, r, "id")
	if !ok {
		return nil, false
	}
	ch, err := h.engine.Channels.Get(r.Context(), channelID)
	if err != nil {
		sendError(w, h.log, "get channel", err)
		return nil, false
	}
	return ch, true
}

// CreateChannel 建立新頻道，建立者即為擁有者
func (h *Handler) CreateChannel(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	var req models.ChannelRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	ch, err := h.engine.Channels.Create(r.Context(), who, req.Name)
	if err != nil {
		sendError(w, h.log, "create channel", err)
		return
	}
	writeJSON(w, http.StatusCreated, ch)
}

// HostedChannels lists the caller's channels that are not finished.
func (h *Handler) HostedChannels(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	channels, err := h.engine.Channels.Hosted(r.Context(), who.UserID)
	if err != nil {
		sendError(w, h.log, "hosted channels", err)
		return
	}
	if channels == nil {
		channels = []models.Channel{}
	}
	writeJSON(w, http.StatusOK, channels)
}

func (h *Handler) GetChannel(w http.ResponseWriter, r *http.Request) {
	ch, ok := h.channel(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ch)
}

func (h *Handler) RenameChannel(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	channelID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req models.ChannelRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	ch, err := h.engine.Channels.Rename(r.Context(), channelID, who, req.Name)
	if err != nil {
		sendError(w, h.log, "rename channel", err)
		return
	}
	writeJSON(w, http.StatusOK, ch)
}

// JoinChannel 加入頻道（重複加入只會更新名稱與簡介）
func (h *Handler) JoinChannel(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	ch, ok := h.channel(w, r)
	if !ok {
		return
	}
	var req models.JoinRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}
	member, err := h.engine.Membership.Join(r.Context(), ch.ID, who, req.Bio)
	if err != nil {
		sendError(w, h.log, "join channel", err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	ch, ok := h.channel(w, r)
	if !ok {
		return
	}
	members, err := h.engine.Membership.List(r.Context(), ch.ID)
	if err != nil {
		sendError(w, h.log, "list members", err)
		return
	}
	if members == nil {
		members = []models.Member{}
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *Handler) GetInterests(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	channelID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	tags, err := h.engine.Membership.Interests(r.Context(), channelID, who.UserID)
	if err != nil {
		sendError(w, h.log, "get interests", err)
		return
	}
	if tags == nil {
		tags = []string{}
	}
	writeJSON(w, http.StatusOK, models.InterestsRequest{Interests: tags})
}

func (h *Handler) SetInterests(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	ch, ok := h.channel(w, r)
	if !ok {
		return
	}
	var req models.InterestsRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	tags, err := h.engine.Membership.SetInterests(r.Context(), ch.ID, who.UserID, req.Interests)
	if err != nil {
		sendError(w, h.log, "set interests", err)
		return
	}
	writeJSON(w, http.StatusOK, models.InterestsRequest{Interests: tags})
}
