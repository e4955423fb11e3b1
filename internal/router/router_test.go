package router

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/111dd/big3d/internal/config"
	"github.com/111dd/big3d/internal/model"
	"github.com/111dd/big3d/internal/modules"
	logorepo "github.com/111dd/big3d/internal/modules/logo/repo"
	projectrepo "github.com/111dd/big3d/internal/modules/project/repo"
	"github.com/111dd/big3d/internal/storage"
	"github.com/111dd/big3d/internal/testutils"

	"github.com/gin-gonic/gin"
)

const testAdminKey = "router-test-key"

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("BIG3D_ADMIN_API_KEY", testAdminKey)
	config.InitConfig(t.TempDir())

	gdb := testutils.SetupDB(t)
	objectStore, err := storage.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	appModules := modules.New(objectStore, projectrepo.NewProjectRepository(gdb), logorepo.NewLogoRepository(gdb))

	r := gin.New()
	NewRouter(appModules).Init(r)
	return r
}

func adminJSONRequest(method, target string, payload gin.H) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Key", testAdminKey)
	return req
}

// 测试内容：验证公共接口在根路径与 /api 前缀下均可访问且无需密钥。
func TestPublicRoutes_BothPrefixes(t *testing.T) {
	r := setupRouter(t)

	for _, target := range []string{"/projects", "/api/projects", "/site-logos", "/api/site-logos", "/ping", "/api/ping"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s 期望 200，实际为 %d", target, w.Code)
		}
	}
}

// 测试内容：验证写接口缺少或携带错误密钥时返回 401，正确密钥放行。
func TestAdminRoutes_RequireKey(t *testing.T) {
	r := setupRouter(t)

	body, _ := json.Marshal(gin.H{"title": "Shark", "key": "shark"})
	w1 := httptest.NewRecorder()
	req1 := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(body))
	req1.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w1, req1)
	if w1.Code != http.StatusUnauthorized {
		t.Fatalf("无密钥期望 401，实际为 %d", w1.Code)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(body))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-Admin-Key", "wrong-key")
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusUnauthorized {
		t.Fatalf("错误密钥期望 401，实际为 %d", w2.Code)
	}

	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, adminJSONRequest(http.MethodPost, "/api/projects", gin.H{"title": "Shark", "key": "shark"}))
	if w3.Code != http.StatusOK {
		t.Fatalf("正确密钥期望 200，实际为 %d body=%s", w3.Code, w3.Body.String())
	}

	// 密钥探针
	w4 := httptest.NewRecorder()
	req4 := httptest.NewRequest(http.MethodGet, "/admin/me", nil)
	req4.Header.Set("X-Admin-Key", testAdminKey)
	r.ServeHTTP(w4, req4)
	if w4.Code != http.StatusOK || w4.Body.String() != `{"ok":true}` {
		t.Fatalf("期望探针返回 ok，实际为 %d %s", w4.Code, w4.Body.String())
	}
}

// 测试内容：验证根路径是项目列表的别名。
func TestRootAliasListsProjects(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminJSONRequest(http.MethodPost, "/api/projects", gin.H{"title": "Shark", "key": "shark"}))
	if w.Code != http.StatusOK {
		t.Fatalf("创建失败: %s", w.Body.String())
	}

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/", nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w2.Code)
	}
	var listed []model.Project
	if err := json.Unmarshal(w2.Body.Bytes(), &listed); err != nil || len(listed) != 1 {
		t.Fatalf("期望根路径返回项目列表，实际为 %s", w2.Body.String())
	}
}

// 测试内容：验证未知路径返回统一 404 JSON。
func TestNoRoute(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/definitely/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w.Code)
	}
	if w.Body.String() != `{"error":"Not found"}` {
		t.Fatalf("期望 Not found 响应，实际为 %s", w.Body.String())
	}
}

// 测试内容：验证 CORS 预检请求返回 204 及允许的方法与请求头。
func TestCORSPreflight(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	req.Header.Set("Origin", "https://portfolio.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("期望 204，实际为 %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Headers"), "X-Admin-Key") {
		t.Fatalf("期望允许 X-Admin-Key 请求头")
	}
}

// 测试内容：验证从创建项目、上传图片到对象回读的完整链路。
func TestEndToEnd_UploadAndServe(t *testing.T) {
	r := setupRouter(t)

	// 创建项目
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, adminJSONRequest(http.MethodPost, "/api/projects", gin.H{"title": "Shark", "key": "shark"}))
	if w1.Code != http.StatusOK {
		t.Fatalf("create 期望 200，实际为 %d body=%s", w1.Code, w1.Body.String())
	}
	var created model.Project
	_ = json.Unmarshal(w1.Body.Bytes(), &created)

	// 上传图片
	var mp bytes.Buffer
	mw := multipart.NewWriter(&mp)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="fin.png"`)
	header.Set("Content-Type", "image/png")
	part, _ := mw.CreatePart(header)
	_, _ = part.Write([]byte("png-bytes"))
	_ = mw.Close()
	req2 := httptest.NewRequest(http.MethodPost, "/api/projects/"+created.ID+"/images", &mp)
	req2.Header.Set("Content-Type", mw.FormDataContentType())
	req2.Header.Set("X-Admin-Key", testAdminKey)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("upload 期望 200，实际为 %d body=%s", w2.Code, w2.Body.String())
	}
	var image model.Image
	_ = json.Unmarshal(w2.Body.Bytes(), &image)

	// 回读对象：URL 形如 http://<host>/storage/projects/<id>/<uuid>.png
	idx := strings.Index(image.URL, "/storage/")
	if idx < 0 {
		t.Fatalf("期望 URL 含 /storage/ 前缀，实际为 %s", image.URL)
	}
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, httptest.NewRequest(http.MethodGet, image.URL[idx:], nil))
	if w3.Code != http.StatusOK {
		t.Fatalf("serve 期望 200，实际为 %d", w3.Code)
	}
	if w3.Body.String() != "png-bytes" {
		t.Fatalf("期望原样返回内容，实际为 %s", w3.Body.String())
	}
	if cc := w3.Header().Get("Cache-Control"); cc == "" {
		t.Fatalf("期望回读响应带 Cache-Control")
	}

	// 对象回读同样支持可选的 /api 前缀
	w3b := httptest.NewRecorder()
	r.ServeHTTP(w3b, httptest.NewRequest(http.MethodGet, "/api"+image.URL[idx:], nil))
	if w3b.Code != http.StatusOK {
		t.Fatalf("/api 前缀回读期望 200，实际为 %d body=%s", w3b.Code, w3b.Body.String())
	}
	if w3b.Body.String() != "png-bytes" {
		t.Fatalf("期望 /api 前缀返回相同内容，实际为 %s", w3b.Body.String())
	}

	// 项目详情含新图片
	w4 := httptest.NewRecorder()
	r.ServeHTTP(w4, httptest.NewRequest(http.MethodGet, "/api/projects/"+created.ID, nil))
	var got model.Project
	_ = json.Unmarshal(w4.Body.Bytes(), &got)
	if len(got.Images) != 1 || !got.Images[0].IsThumbnail {
		t.Fatalf("期望项目含 1 张缩略图，实际为 %s", w4.Body.String())
	}
}
