/*
 * @Description: 应用路由注册
 * @Author: 安知鱼
 * @Date: 2025-09-10 16:40:12
 * @LastEditTime: 2025-10-27 10:21:45
 * @LastEditors: 安知鱼
 */
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/mediawall-app/internal/app/middleware"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
	article_handler "github.com/anzhiyu-c/mediawall-app/pkg/handler/article"
	auth_handler "github.com/anzhiyu-c/mediawall-app/pkg/handler/auth"
	review_handler "github.com/anzhiyu-c/mediawall-app/pkg/handler/review"
	user_handler "github.com/anzhiyu-c/mediawall-app/pkg/handler/user"
	wall_handler "github.com/anzhiyu-c/mediawall-app/pkg/handler/wall"
)

// NoCacheMiddleware 全局反缓存中间件，确保所有API响应都不会被CDN缓存
func NoCacheMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")

		c.Next()
	})
}

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	booksHandler  *article_handler.Handler[*model.Book]
	comicsHandler *article_handler.Handler[*model.Comic]
	gamesHandler  *article_handler.Handler[*model.Game]
	mangasHandler *article_handler.Handler[*model.Manga]
	draftsHandler *article_handler.DraftsHandler

	wallsBooksHandler  *wall_handler.Handler[*model.WallsBook]
	wallsComicsHandler *wall_handler.Handler[*model.WallsComic]
	wallsGamesHandler  *wall_handler.Handler[*model.WallsGame]
	wallsMangasHandler *wall_handler.Handler[*model.WallsManga]

	booksReviewsHandler  *review_handler.Handler[*model.BooksReview]
	comicsReviewsHandler *review_handler.Handler[*model.ComicsReview]
	gamesReviewsHandler  *review_handler.Handler[*model.GamesReview]
	mangasReviewsHandler *review_handler.Handler[*model.MangasReview]

	authHandler *auth_handler.Handler
	userHandler *user_handler.Handler
	mw          *middleware.Middleware
}

// NewRouter 是 Router 的构造函数，通过依赖注入接收所有处理器。
func NewRouter(
	booksHandler *article_handler.Handler[*model.Book],
	comicsHandler *article_handler.Handler[*model.Comic],
	gamesHandler *article_handler.Handler[*model.Game],
	mangasHandler *article_handler.Handler[*model.Manga],
	draftsHandler *article_handler.DraftsHandler,
	wallsBooksHandler *wall_handler.Handler[*model.WallsBook],
	wallsComicsHandler *wall_handler.Handler[*model.WallsComic],
	wallsGamesHandler *wall_handler.Handler[*model.WallsGame],
	wallsMangasHandler *wall_handler.Handler[*model.WallsManga],
	booksReviewsHandler *review_handler.Handler[*model.BooksReview],
	comicsReviewsHandler *review_handler.Handler[*model.ComicsReview],
	gamesReviewsHandler *review_handler.Handler[*model.GamesReview],
	mangasReviewsHandler *review_handler.Handler[*model.MangasReview],
	authHandler *auth_handler.Handler,
	userHandler *user_handler.Handler,
	mw *middleware.Middleware,
) *Router {
	return &Router{
		booksHandler:         booksHandler,
		comicsHandler:        comicsHandler,
		gamesHandler:         gamesHandler,
		mangasHandler:        mangasHandler,
		draftsHandler:        draftsHandler,
		wallsBooksHandler:    wallsBooksHandler,
		wallsComicsHandler:   wallsComicsHandler,
		wallsGamesHandler:    wallsGamesHandler,
		wallsMangasHandler:   wallsMangasHandler,
		booksReviewsHandler:  booksReviewsHandler,
		comicsReviewsHandler: comicsReviewsHandler,
		gamesReviewsHandler:  gamesReviewsHandler,
		mangasReviewsHandler: mangasReviewsHandler,
		authHandler:          authHandler,
		userHandler:          userHandler,
		mw:                   mw,
	}
}

// Setup 将所有路由注册到 Gin 引擎。
// 这是在 main.go 中将被调用的唯一入口点。
func (r *Router) Setup(engine *gin.Engine) {
	apiGroup := engine.Group("/api")
	apiGroup.Use(NoCacheMiddleware())

	r.registerAuthRoutes(apiGroup)
	r.registerUserRoutes(apiGroup)

	// 草稿聚合接口在 /articles/misc 下，必须先于各媒体类型注册
	drafts := apiGroup.Group("/articles/misc")
	drafts.Use(r.mw.JWTAuth())
	{
		drafts.GET("/drafts", r.draftsHandler.List)
	}

	registerArticleRoutes(apiGroup, "books", r.booksHandler, r.mw)
	registerArticleRoutes(apiGroup, "comics", r.comicsHandler, r.mw)
	registerArticleRoutes(apiGroup, "games", r.gamesHandler, r.mw)
	registerArticleRoutes(apiGroup, "mangas", r.mangasHandler, r.mw)

	registerWallRoutes(apiGroup, "wallsbooks", r.wallsBooksHandler, r.mw)
	registerWallRoutes(apiGroup, "wallscomics", r.wallsComicsHandler, r.mw)
	registerWallRoutes(apiGroup, "wallsgames", r.wallsGamesHandler, r.mw)
	registerWallRoutes(apiGroup, "wallsmangas", r.wallsMangasHandler, r.mw)

	registerReviewRoutes(apiGroup, "booksreviews", r.booksReviewsHandler, r.mw)
	registerReviewRoutes(apiGroup, "comicsreviews", r.comicsReviewsHandler, r.mw)
	registerReviewRoutes(apiGroup, "gamesreviews", r.gamesReviewsHandler, r.mw)
	registerReviewRoutes(apiGroup, "mangasreviews", r.mangasReviewsHandler, r.mw)
}

// registerArticleRoutes 注册单一媒体类型的作品路由。
// 列表与详情公开(可选登录以附带请求者的追踪数据)，
// 创建需要登录，修改与删除仅限版主/管理员。
func registerArticleRoutes[M model.Article](api *gin.RouterGroup, name string, h *article_handler.Handler[M], mw *middleware.Middleware) {
	group := api.Group("/articles/" + name)
	{
		group.GET("", mw.JWTAuthOptional(), h.List)
		group.GET("/:identifier/:slug", mw.JWTAuthOptional(), h.Get)
		group.POST("", mw.JWTAuth(), h.Create)
		group.PATCH("/:identifier/:slug", mw.JWTAuth(), mw.RequireStaff(), h.Update)
		group.DELETE("/:identifier/:slug", mw.JWTAuth(), mw.RequireStaff(), h.Delete)
	}
}

// registerWallRoutes 注册单一媒体类型的追踪墙路由。
// 追踪墙公开可读，写操作需要登录，所有权校验在服务层完成。
func registerWallRoutes[W model.Wall](api *gin.RouterGroup, name string, h *wall_handler.Handler[W], mw *middleware.Middleware) {
	group := api.Group("/" + name)
	{
		group.GET("/user/:username", h.ListByUser)
		group.GET("/:id", h.Get)
		group.POST("/:identifier", mw.JWTAuth(), h.Create)
		group.PATCH("/:id", mw.JWTAuth(), h.Update)
		group.DELETE("/:id", mw.JWTAuth(), h.Delete)
	}
}

// registerReviewRoutes 注册单一媒体类型的评测路由。
func registerReviewRoutes[R model.Review](api *gin.RouterGroup, name string, h *review_handler.Handler[R], mw *middleware.Middleware) {
	group := api.Group("/" + name)
	{
		group.GET("/article/:identifier", h.ListByArticle)
		group.GET("/user/:username", h.ListByUser)
		group.GET("/:id", h.Get)
		group.POST("/:identifier", mw.JWTAuth(), h.Create)
		group.PATCH("/:id", mw.JWTAuth(), h.Update)
		group.DELETE("/:id", mw.JWTAuth(), h.Delete)
	}
}

func (r *Router) registerAuthRoutes(api *gin.RouterGroup) {
	// 认证入口统一挂载限流，防止撞库与注册滥用
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimit())
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.GET("/confirm", r.authHandler.Confirm)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}
}

func (r *Router) registerUserRoutes(api *gin.RouterGroup) {
	userGroup := api.Group("/users")
	{
		userGroup.GET("/me", r.mw.JWTAuth(), r.userHandler.Me)
		userGroup.GET("/:username", r.userHandler.Get)
		userGroup.GET("/:username/stats", r.userHandler.Stats)

		// 管理员专属
		userGroup.PATCH("/:username/block", r.mw.JWTAuth(), r.mw.RequireAdmin(), r.userHandler.SetBlocked)
		userGroup.PATCH("/:username/role", r.mw.JWTAuth(), r.mw.RequireAdmin(), r.userHandler.SetRole)
	}
}
