package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"icebreaker/backend/icebreaker"
	"icebreaker/backend/models"
	"icebreaker/backend/utils"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// sendJSONError 統一發送 JSON 格式錯誤響應
func sendJSONError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, models.ErrorResponse{Message: message})
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	// 寫入失敗時連線多半已中斷
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads a bounded JSON body. An empty body is accepted when
// optional is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any, optional bool) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}
	sendJSONError(w, "Invalid request payload", http.StatusBadRequest)
	return false
}

// statusFor maps engine errors onto HTTP statuses and client-safe messages.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, icebreaker.ErrInvalidArgument):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, icebreaker.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, icebreaker.ErrPermissionDenied):
		return http.StatusForbidden, "Permission denied"
	case errors.Is(err, icebreaker.ErrSessionLive):
		return http.StatusConflict, icebreaker.ErrSessionLive.Error()
	case errors.Is(err, icebreaker.ErrConflict):
		return http.StatusConflict, "Already exists"
	case errors.Is(err, icebreaker.ErrTransient):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func sendError(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error(op, zap.Error(err))
	} else {
		log.Debug(op, zap.Int("status", status), zap.Error(err))
	}
	sendJSONError(w, message, status)
}

// identity returns the caller placed in the context by the JWT middleware.
func identity(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	who, err := utils.GetIdentityFromContext(r.Context())
	if err != nil {
		sendJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return models.Identity{}, false
	}
	return who, true
}
