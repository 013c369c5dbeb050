package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"icebreaker/backend/icebreaker"
	"icebreaker/backend/models"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt" // 用於密碼哈希
)

// IdentityKey 是儲存在 context 中的使用者身分的鍵
type contextKey string

const IdentityKey contextKey = "identity"

var (
	ErrNoIdentity   = errors.New("identity not found in context")
	ErrInvalidToken = errors.New("invalid token")
)

// WithIdentity 將使用者身分存入 context
func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, id)
}

// GetIdentityFromContext 從 context 中提取使用者身分
func GetIdentityFromContext(ctx context.Context) (models.Identity, error) {
	id, ok := ctx.Value(IdentityKey).(models.Identity)
	if !ok || !id.Present() {
		return models.Identity{}, ErrNoIdentity
	}
	return id, nil
}

// Claims are the JWT claims issued at login.
type Claims struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT 為用戶生成 JWT Token
func GenerateJWT(id models.Identity, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:      id.UserID.Hex(), // 將 ObjectID 轉換為 Hex 字串儲存
		DisplayName: id.DisplayName,
		Email:       id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// 使用您配置的 JWT_SECRET 簽名
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tokenString, nil
}

// ParseToken 從 JWT token 中提取使用者身分
func ParseToken(tokenString, secret string) (models.Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return models.Identity{}, ErrInvalidToken
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil || userID.IsZero() {
		return models.Identity{}, fmt.Errorf("%w: invalid user ID format in token", ErrInvalidToken)
	}
	return models.Identity{UserID: userID, DisplayName: claims.DisplayName, Email: claims.Email}, nil
}

// HashPassword 哈希密碼
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword 比較哈希後的密碼
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ParseObjectID parses a hex id from a request, reporting bad input as
// icebreaker.ErrInvalidArgument.
func ParseObjectID(field, hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid %s", icebreaker.ErrInvalidArgument, field)
	}
	return id, nil
}
