// backend/utils/utils_test.go
package utils

import (
	"context"
	"testing"
	"time"

	"icebreaker/backend/icebreaker"
	"icebreaker/backend/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert" // 引入 testify/assert
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGenerateJWT(t *testing.T) {
	// 準備測試資料
	id := models.Identity{UserID: primitive.NewObjectID(), DisplayName: "testuser", Email: "test@example.com"}
	secret := "test-secret"

	// 執行要測試的函式
	tokenString, err := GenerateJWT(id, secret, time.Hour)

	// 1. 斷言錯誤為 nil
	assert.NoError(t, err, "生成 JWT 不應該返回錯誤")

	// 2. 斷言 token 字串不為空
	assert.NotEmpty(t, tokenString, "生成的 JWT token 不應該是空的")

	// 3. 解析並驗證 token 內容
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// 驗證簽名演算法是否正確
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		assert.True(t, ok, "非預期的簽名演算法")
		return []byte(secret), nil
	})

	// 斷言 token 解析成功且有效
	assert.NoError(t, err, "解析 JWT token 不應該返回錯誤")
	assert.True(t, token.Valid, "JWT token 應該是有效的")

	// 4. 驗證 token 的聲明 (Claims)
	claims, ok := token.Claims.(jwt.MapClaims)
	assert.True(t, ok, "無法讀取 JWT claims")

	assert.Equal(t, id.UserID.Hex(), claims["userId"], "userId claim 應該與原始 userID 相同")
	assert.Equal(t, id.DisplayName, claims["displayName"])
	assert.Equal(t, id.Email, claims["email"])

	// 驗證過期時間 (exp) 是否在未來
	exp, ok := claims["exp"].(float64)
	assert.True(t, ok, "exp claim 格式錯誤")
	assert.Greater(t, int64(exp), time.Now().Unix(), "過期時間應該在未來")
}

func TestParseToken(t *testing.T) {
	id := models.Identity{UserID: primitive.NewObjectID(), DisplayName: "ada"}
	tokenString, err := GenerateJWT(id, "secret", time.Hour)
	require.NoError(t, err)

	got, err := ParseToken(tokenString, "secret")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseToken(tokenString, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := GenerateJWT(id, "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired, "secret")
	assert.ErrorIs(t, err, ErrInvalidToken, "過期的 token 應該被拒絕")

	_, err = ParseToken("not-a-token", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIdentityContext(t *testing.T) {
	_, err := GetIdentityFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoIdentity)

	id := models.Identity{UserID: primitive.NewObjectID()}
	got, err := GetIdentityFromContext(WithIdentity(context.Background(), id))
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)
	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
}

func TestParseObjectID(t *testing.T) {
	want := primitive.NewObjectID()
	got, err := ParseObjectID("channelId", want.Hex())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = ParseObjectID("channelId", "nope")
	assert.ErrorIs(t, err, icebreaker.ErrInvalidArgument)
}
