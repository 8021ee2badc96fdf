package router

import (
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/mediawall-app/internal/app/middleware"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
	article_handler "github.com/anzhiyu-c/mediawall-app/pkg/handler/article"
	auth_handler "github.com/anzhiyu-c/mediawall-app/pkg/handler/auth"
	review_handler "github.com/anzhiyu-c/mediawall-app/pkg/handler/review"
	user_handler "github.com/anzhiyu-c/mediawall-app/pkg/handler/user"
	wall_handler "github.com/anzhiyu-c/mediawall-app/pkg/handler/wall"
	"github.com/anzhiyu-c/mediawall-app/pkg/service/utility"
)

// setupTestEngine 用零值处理器把完整路由表注册到一个干净的引擎上，
// 仅用于校验路由结构，不发起真实请求。
func setupTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := NewRouter(
		&article_handler.Handler[*model.Book]{},
		&article_handler.Handler[*model.Comic]{},
		&article_handler.Handler[*model.Game]{},
		&article_handler.Handler[*model.Manga]{},
		&article_handler.DraftsHandler{},
		&wall_handler.Handler[*model.WallsBook]{},
		&wall_handler.Handler[*model.WallsComic]{},
		&wall_handler.Handler[*model.WallsGame]{},
		&wall_handler.Handler[*model.WallsManga]{},
		&review_handler.Handler[*model.BooksReview]{},
		&review_handler.Handler[*model.ComicsReview]{},
		&review_handler.Handler[*model.GamesReview]{},
		&review_handler.Handler[*model.MangasReview]{},
		&auth_handler.Handler{},
		&user_handler.Handler{},
		&middleware.Middleware{},
	)
	engine := gin.New()
	r.Setup(engine)
	return engine
}

func hasRoute(engine *gin.Engine, method, path string) bool {
	for _, route := range engine.Routes() {
		if route.Method == method && route.Path == path {
			return true
		}
	}
	return false
}

func TestSetup_激活邮件链接命中确认路由(t *testing.T) {
	engine := setupTestEngine()

	if !hasRoute(engine, "GET", utility.ActivationPath) {
		t.Fatalf("激活邮件指向 %s, 但该路径没有注册 GET 路由", utility.ActivationPath)
	}
}

func TestSetup_认证路由齐全(t *testing.T) {
	engine := setupTestEngine()

	tests := []struct {
		method string
		path   string
	}{
		{method: "POST", path: "/api/auth/signup"},
		{method: "GET", path: "/api/auth/confirm"},
		{method: "POST", path: "/api/auth/login"},
		{method: "POST", path: "/api/auth/logout"},
	}
	for _, tt := range tests {
		if !hasRoute(engine, tt.method, tt.path) {
			t.Errorf("缺少路由 %s %s", tt.method, tt.path)
		}
	}
}
