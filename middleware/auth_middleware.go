// backend/middleware/auth_middleware.go
package middleware

import (
	"net/http"
	"strings"

	"icebreaker/backend/models"
	"icebreaker/backend/utils"

	"go.uber.org/zap"
)

// JWTMiddleware 驗證 JWT Token 並將使用者身分放入 context
func JWTMiddleware(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	log := logger.Named("auth")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				unauthorized(w, "Authorization header required")
				return
			}

			id, err := utils.ParseToken(tokenString, secret)
			if err != nil {
				log.Debug("rejected token", zap.String("path", r.URL.Path), zap.Error(err))
				unauthorized(w, "Invalid or expired token")
				return
			}

			// 將使用者身分存儲到請求的 context 中
			next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), id)))
		})
	}
}

// bearerToken reads "Authorization: Bearer <token>". Browsers cannot set
// headers on a websocket upgrade, so a token query parameter is accepted too.
func bearerToken(r *http.Request) (string, bool) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}
	if token := r.URL.Query().Get("token"); token != "" {
		return token, true
	}
	return "", false
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = jsonEncode(w, models.ErrorResponse{Message: message})
}
