package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes 註冊所有 REST 路由，auth 包住需要登入的路由
func RegisterRoutes(router *mux.Router, auth *AuthHandler, h *Handler, requireAuth func(http.Handler) http.Handler) {
	protected := func(fn http.HandlerFunc) http.Handler { return requireAuth(fn) }

	// 註冊與登入 API 路由
	router.HandleFunc("/register", auth.RegisterUser).Methods(http.MethodPost)
	router.HandleFunc("/login", auth.LoginUser).Methods(http.MethodPost)

	// /channels/hosted must be registered before /channels/{id}.
	router.Handle("/channels", protected(h.CreateChannel)).Methods(http.MethodPost)
	router.Handle("/channels/hosted", protected(h.HostedChannels)).Methods(http.MethodGet)
	router.Handle("/channels/{id}", protected(h.GetChannel)).Methods(http.MethodGet)
	router.Handle("/channels/{id}", protected(h.RenameChannel)).Methods(http.MethodPatch)

	router.Handle("/channels/{id}/members", protected(h.JoinChannel)).Methods(http.MethodPost)
	router.Handle("/channels/{id}/members", protected(h.ListMembers)).Methods(http.MethodGet)
	router.Handle("/channels/{id}/interests", protected(h.GetInterests)).Methods(http.MethodGet)
	router.Handle("/channels/{id}/interests", protected(h.SetInterests)).Methods(http.MethodPut)

	router.Handle("/channels/{id}/sessions", protected(h.StartSession)).Methods(http.MethodPost)
	router.Handle("/channels/{id}/sessions/latest", protected(h.LatestSession)).Methods(http.MethodGet)
	router.Handle("/channels/{id}/sessions/active", protected(h.ActiveSession)).Methods(http.MethodGet)
	router.Handle("/channels/{id}/sessions/{sid}", protected(h.GetSession)).Methods(http.MethodGet)
	router.Handle("/channels/{id}/sessions/{sid}/end", protected(h.EndSession)).Methods(http.MethodPost)
	router.Handle("/channels/{id}/sessions/{sid}/messages", protected(h.ListMessages)).Methods(http.MethodGet)
	router.Handle("/channels/{id}/sessions/{sid}/messages", protected(h.SendMessage)).Methods(http.MethodPost)

	router.Handle("/me/sessions", protected(h.MySessions)).Methods(http.MethodGet)
	router.Handle("/me/stats", protected(h.MyStats)).Methods(http.MethodGet)
}
