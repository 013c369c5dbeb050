package handlers

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"icebreaker/backend/icebreaker"
	"icebreaker/backend/models"
	"icebreaker/backend/utils"

	"go.uber.org/zap"
)

const minPasswordLength = 6

// AuthHandler 處理註冊與登入
type AuthHandler struct {
	users  icebreaker.UserStore
	secret string
	ttl    time.Duration
	log    *zap.Logger
}

func NewAuthHandler(users icebreaker.UserStore, secret string, ttl time.Duration, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, secret: secret, ttl: ttl, log: logger.Named("auth")}
}

// RegisterUser 處理使用者註冊請求
func (h *AuthHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var registerReq models.RegisterRequest
	if !decodeJSON(w, r, &registerReq, false) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(registerReq.Email))
	displayName := strings.TrimSpace(registerReq.DisplayName)
	if _, err := mail.ParseAddress(email); err != nil {
		sendJSONError(w, "A valid email is required", http.StatusBadRequest)
		return
	}
	if len(registerReq.Password) < minPasswordLength {
		sendJSONError(w, "Password must be at least 6 characters", http.StatusBadRequest)
		return
	}

	// 哈希密碼
	hashedPassword, err := utils.HashPassword(registerReq.Password)
	if err != nil {
		sendError(w, h.log, "hash password", err)
		return
	}

	user := &models.User{
		Email:       email,
		DisplayName: displayName,
		Password:    hashedPassword,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := h.users.InsertUser(r.Context(), user); err != nil {
		if errors.Is(err, icebreaker.ErrConflict) {
			sendJSONError(w, "Email already registered", http.StatusConflict)
			return
		}
		sendError(w, h.log, "register user", err)
		return
	}

	h.log.Info("user registered", zap.String("userId", user.ID.Hex()))
	h.respondWithToken(w, http.StatusCreated, user)
}

// LoginUser 處理使用者登入請求
func (h *AuthHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var loginReq models.LoginRequest
	if !decodeJSON(w, r, &loginReq, false) {
		return
	}

	user, err := h.users.FindUserByEmail(r.Context(), strings.ToLower(strings.TrimSpace(loginReq.Email)))
	if errors.Is(err, icebreaker.ErrNotFound) {
		sendJSONError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		sendError(w, h.log, "find user", err)
		return
	}

	// 比較哈希後的密碼
	if !utils.CheckPassword(user.Password, loginReq.Password) {
		sendJSONError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	h.respondWithToken(w, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, status int, user *models.User) {
	id := models.Identity{UserID: user.ID, DisplayName: user.DisplayName, Email: user.Email}
	token, err := utils.GenerateJWT(id, h.secret, h.ttl)
	if err != nil {
		sendError(w, h.log, "generate token", err)
		return
	}
	writeJSON(w, status, models.AuthResponse{Token: token, User: id})
}
