package handlers

import (
	"net/http"

	"icebreaker/backend/icebreaker"
)

// MySessions 列出使用者最近參加過的活動
func (h *Handler) MySessions(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	recent, err := h.engine.Ledger.Recent(r.Context(), who.UserID)
	if err != nil {
		sendError(w, h.log, "recent sessions", err)
		return
	}
	if recent == nil {
		recent = []icebreaker.SessionSummary{}
	}
	writeJSON(w, http.StatusOK, recent)
}

func (h *Handler) MyStats(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	stats, err := h.engine.Ledger.Stats(r.Context(), who.UserID)
	if err != nil {
		sendError(w, h.log, "stats", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
