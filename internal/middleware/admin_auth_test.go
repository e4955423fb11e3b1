package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/111dd/big3d/internal/config"

	"github.com/gin-gonic/gin"
)

func setupAdminRouter(t *testing.T, secret string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("BIG3D_ADMIN_API_KEY", secret)
	config.InitConfig(t.TempDir())

	r := gin.New()
	r.GET("/x", AdminKeyAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doAdminRequest(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if key != "" {
		req.Header.Set("X-Admin-Key", key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// 测试内容：验证缺少 X-Admin-Key 头时返回 401。
func TestAdminKeyAuth_MissingKeyUnauthorized(t *testing.T) {
	r := setupAdminRouter(t, "correct-key")
	w := doAdminRequest(r, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Unauthorized") {
		t.Fatalf("期望统一 Unauthorized 消息，实际为 %s", w.Body.String())
	}
}

// 测试内容：验证长度不同或单字符差异的密钥均返回 401。
func TestAdminKeyAuth_WrongKeyUnauthorized(t *testing.T) {
	r := setupAdminRouter(t, "correct-key")

	if w := doAdminRequest(r, "short"); w.Code != http.StatusUnauthorized {
		t.Fatalf("期望长度不符返回 401，实际为 %d", w.Code)
	}
	if w := doAdminRequest(r, "correct-keX"); w.Code != http.StatusUnauthorized {
		t.Fatalf("期望单字符差异返回 401，实际为 %d", w.Code)
	}
}

// 测试内容：验证正确密钥通过校验。
func TestAdminKeyAuth_CorrectKeyOK(t *testing.T) {
	r := setupAdminRouter(t, "correct-key")
	if w := doAdminRequest(r, "correct-key"); w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
}

// 测试内容：验证服务端未配置密钥时所有请求都被拒绝（拒绝开放）。
func TestAdminKeyAuth_EmptySecretFailsClosed(t *testing.T) {
	r := setupAdminRouter(t, "")
	if w := doAdminRequest(r, "anything"); w.Code != http.StatusUnauthorized {
		t.Fatalf("期望未配置密钥时返回 401，实际为 %d", w.Code)
	}
	if w := doAdminRequest(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("期望空密钥返回 401，实际为 %d", w.Code)
	}
}

// 测试内容：验证常数时间比较函数的边界行为。
func TestIsValidAdminKey(t *testing.T) {
	if isValidAdminKey("", "secret") {
		t.Fatalf("期望空 key 无效")
	}
	if isValidAdminKey("secret", "") {
		t.Fatalf("期望空 secret 无效")
	}
	if isValidAdminKey("secres", "secret") {
		t.Fatalf("期望末位差异无效")
	}
	if !isValidAdminKey("secret", "secret") {
		t.Fatalf("期望完全一致有效")
	}
}
