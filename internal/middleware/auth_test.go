package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"opportunity-team/pkg/auth"
	authmocks "opportunity-team/pkg/auth/mocks"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func runAuth(t *testing.T, mw gin.HandlerFunc, header string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}

	mw(c)
	if !c.IsAborted() {
		c.Status(http.StatusOK)
	}
	return w, c
}

func TestAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("testsecret", 15*time.Minute)
	authMiddleware := Auth(jwtManager)

	t.Run("allows request with valid token", func(t *testing.T) {
		userID := "507f1f77bcf86cd799439011"
		token, _ := jwtManager.GenerateToken(userID)

		w, c := runAuth(t, authMiddleware, "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID, GetUserID(c))
	})

	rejected := []struct {
		name   string
		header func() string
		body   string
	}{
		{"missing header", func() string { return "" }, "missing authorization header"},
		{"no Bearer prefix", func() string { tok, _ := jwtManager.GenerateToken("u"); return tok }, "invalid authorization header format"},
		{"wrong scheme", func() string { tok, _ := jwtManager.GenerateToken("u"); return "Basic " + tok }, "invalid authorization header format"},
		{"empty token", func() string { return "Bearer " }, "invalid authorization header format"},
		{"garbage token", func() string { return "Bearer not-a-token" }, "invalid token"},
		{"foreign secret", func() string {
			tok, _ := auth.NewJWTManager("other", time.Minute).GenerateToken("u")
			return "Bearer " + tok
		}, "invalid token"},
	}

	for _, tt := range rejected {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			w, c := runAuth(t, authMiddleware, tt.header())

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.True(t, c.IsAborted())
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}

	t.Run("reports expired token", func(t *testing.T) {
		short := auth.NewJWTManager("testsecret", time.Millisecond)
		token, _ := short.GenerateToken("u")
		time.Sleep(10 * time.Millisecond)

		w, _ := runAuth(t, Auth(short), "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "token expired")
	})
}

func TestAuth_TokenManager(t *testing.T) {
	t.Run("passes the bearer token through and stores the claimed user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tokens := authmocks.NewMockTokenManager(ctrl)
		tokens.EXPECT().
			ValidateToken("opaque-token").
			Return(&auth.Claims{UserID: "507f1f77bcf86cd799439099"}, nil)

		w, c := runAuth(t, Auth(tokens), "Bearer opaque-token")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "507f1f77bcf86cd799439099", GetUserID(c))
	})

	t.Run("maps an expiry error to token expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tokens := authmocks.NewMockTokenManager(ctrl)
		tokens.EXPECT().ValidateToken("stale").Return(nil, jwt.ErrTokenExpired)

		w, c := runAuth(t, Auth(tokens), "Bearer stale")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, c.IsAborted())
		assert.Contains(t, w.Body.String(), "token expired")
	})

	t.Run("maps any other error to invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tokens := authmocks.NewMockTokenManager(ctrl)
		tokens.EXPECT().ValidateToken("forged").Return(nil, assert.AnError)

		w, c := runAuth(t, Auth(tokens), "Bearer forged")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, c.IsAborted())
		assert.Contains(t, w.Body.String(), "invalid token")
		assert.Empty(t, GetUserID(c))
	})

	t.Run("does not consult the token manager without a bearer token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tokens := authmocks.NewMockTokenManager(ctrl)

		w, _ := runAuth(t, Auth(tokens), "Basic abc")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, GetUserID(c))

	c.Set(UserIDKey, "abc")
	assert.Equal(t, "abc", GetUserID(c))
}
