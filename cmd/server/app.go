/*
 * @Description: 应用组装：配置、数据库、仓储、服务、路由的依赖注入
 * @Author: 安知鱼
 * @Date: 2025-09-11 14:20:15
 * @LastEditTime: 2025-10-27 14:35:52
 * @LastEditors: 安知鱼
 */
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/mediawall-app/ent"
	"github.com/anzhiyu-c/mediawall-app/internal/app/middleware"
	"github.com/anzhiyu-c/mediawall-app/internal/app/task"
	"github.com/anzhiyu-c/mediawall-app/internal/infra/persistence/database"
	ent_impl "github.com/anzhiyu-c/mediawall-app/internal/infra/persistence/ent"
	"github.com/anzhiyu-c/mediawall-app/internal/infra/router"
	"github.com/anzhiyu-c/mediawall-app/internal/pkg/utils"
	"github.com/anzhiyu-c/mediawall-app/pkg/config"
	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	article_handler "github.com/anzhiyu-c/mediawall-app/pkg/handler/article"
	auth_handler "github.com/anzhiyu-c/mediawall-app/pkg/handler/auth"
	review_handler "github.com/anzhiyu-c/mediawall-app/pkg/handler/review"
	user_handler "github.com/anzhiyu-c/mediawall-app/pkg/handler/user"
	wall_handler "github.com/anzhiyu-c/mediawall-app/pkg/handler/wall"
	"github.com/anzhiyu-c/mediawall-app/pkg/idgen"
	article_service "github.com/anzhiyu-c/mediawall-app/pkg/service/article"
	auth_service "github.com/anzhiyu-c/mediawall-app/pkg/service/auth"
	review_service "github.com/anzhiyu-c/mediawall-app/pkg/service/review"
	user_service "github.com/anzhiyu-c/mediawall-app/pkg/service/user"
	"github.com/anzhiyu-c/mediawall-app/pkg/service/utility"
	wall_service "github.com/anzhiyu-c/mediawall-app/pkg/service/wall"

	"github.com/redis/go-redis/v9"

	_ "github.com/anzhiyu-c/mediawall-app/ent/runtime"
)

// App 结构体，用于封装应用的所有核心组件
type App struct {
	cfg       *config.Config
	engine    *gin.Engine
	scheduler *task.Scheduler
	sqlDB     *sql.DB
	entClient *ent.Client
	rdb       *redis.Client
}

// NewApp 是应用的构造函数，它执行所有的初始化和依赖注入工作
func NewApp() (*App, func(), error) {
	// --- Phase 1: 加载外部配置 ---
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}
	if err := ensureJWTSecret(cfg); err != nil {
		return nil, nil, err
	}

	// --- Phase 2: 初始化基础设施 ---
	sqlDB, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("创建数据库连接池失败: %w", err)
	}

	entClient, err := database.NewEntClient(sqlDB, cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("创建 Ent 客户端失败: %w", err)
	}

	rdb, err := database.NewRedisClient(context.Background(), cfg)
	if err != nil {
		entClient.Close()
		return nil, nil, fmt.Errorf("初始化 Redis 失败: %w", err)
	}

	if err := idgen.InitSqidsEncoder(); err != nil {
		return nil, nil, fmt.Errorf("初始化公共ID编码器失败: %w", err)
	}

	dbType := cfg.GetStringOrDefault(config.KeyDBType, "sqlite")

	// --- Phase 3: 仓储 ---
	userRepo := ent_impl.NewUserRepo(entClient)
	bookRepo := ent_impl.NewBookRepo(entClient, dbType)
	comicRepo := ent_impl.NewComicRepo(entClient, dbType)
	gameRepo := ent_impl.NewGameRepo(entClient, dbType)
	mangaRepo := ent_impl.NewMangaRepo(entClient, dbType)
	wallsBookRepo := ent_impl.NewWallsBookRepo(entClient)
	wallsComicRepo := ent_impl.NewWallsComicRepo(entClient)
	wallsGameRepo := ent_impl.NewWallsGameRepo(entClient)
	wallsMangaRepo := ent_impl.NewWallsMangaRepo(entClient)
	booksReviewRepo := ent_impl.NewBooksReviewRepo(entClient)
	comicsReviewRepo := ent_impl.NewComicsReviewRepo(entClient)
	gamesReviewRepo := ent_impl.NewGamesReviewRepo(entClient)
	mangasReviewRepo := ent_impl.NewMangasReviewRepo(entClient)

	// --- Phase 4: 服务 ---
	tokenSvc := auth_service.NewTokenService(cfg, rdb)
	emailSvc := utility.NewEmailService(cfg)
	authSvc := auth_service.NewService(userRepo, tokenSvc, emailSvc)

	wallsBookSvc := wall_service.NewService(constant.ArticleTypeBooks, wallsBookRepo, bookRepo)
	wallsComicSvc := wall_service.NewService(constant.ArticleTypeComics, wallsComicRepo, comicRepo)
	wallsGameSvc := wall_service.NewService(constant.ArticleTypeGames, wallsGameRepo, gameRepo)
	wallsMangaSvc := wall_service.NewService(constant.ArticleTypeMangas, wallsMangaRepo, mangaRepo)
	wallRegistry := wall_service.NewRegistry(wallsBookSvc, wallsComicSvc, wallsGameSvc, wallsMangaSvc)

	userSvc := user_service.NewService(userRepo, wallRegistry)

	bookSvc := article_service.NewService(constant.ArticleTypeBooks, bookRepo, userSvc)
	comicSvc := article_service.NewService(constant.ArticleTypeComics, comicRepo, userSvc)
	gameSvc := article_service.NewService(constant.ArticleTypeGames, gameRepo, userSvc)
	mangaSvc := article_service.NewService(constant.ArticleTypeMangas, mangaRepo, userSvc)
	articleRegistry := article_service.NewRegistry(bookSvc, comicSvc, gameSvc, mangaSvc)

	booksReviewSvc := review_service.NewService(constant.ArticleTypeBooks, booksReviewRepo, bookRepo, wallsBookRepo)
	comicsReviewSvc := review_service.NewService(constant.ArticleTypeComics, comicsReviewRepo, comicRepo, wallsComicRepo)
	gamesReviewSvc := review_service.NewService(constant.ArticleTypeGames, gamesReviewRepo, gameRepo, wallsGameRepo)
	mangasReviewSvc := review_service.NewService(constant.ArticleTypeMangas, mangasReviewRepo, mangaRepo, wallsMangaRepo)

	// --- Phase 5: 中间件与处理器 ---
	mw := middleware.NewMiddleware(tokenSvc, cfg)

	booksHandler := article_handler.NewBooksHandler(bookSvc)
	comicsHandler := article_handler.NewComicsHandler(comicSvc)
	gamesHandler := article_handler.NewGamesHandler(gameSvc)
	mangasHandler := article_handler.NewMangasHandler(mangaSvc)
	draftsHandler := article_handler.NewDraftsHandler(articleRegistry)

	wallsBooksHandler := wall_handler.NewBooksHandler(wallsBookSvc)
	wallsComicsHandler := wall_handler.NewComicsHandler(wallsComicSvc)
	wallsGamesHandler := wall_handler.NewGamesHandler(wallsGameSvc)
	wallsMangasHandler := wall_handler.NewMangasHandler(wallsMangaSvc)

	booksReviewsHandler := review_handler.NewBooksHandler(booksReviewSvc)
	comicsReviewsHandler := review_handler.NewComicsHandler(comicsReviewSvc)
	gamesReviewsHandler := review_handler.NewGamesHandler(gamesReviewSvc)
	mangasReviewsHandler := review_handler.NewMangasHandler(mangasReviewSvc)

	authHandler := auth_handler.NewHandler(authSvc, mw)
	userHandler := user_handler.NewHandler(userSvc)

	// --- Phase 6: 路由与引擎 ---
	if !cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	engine.Use(middleware.Cors())

	appRouter := router.NewRouter(
		booksHandler, comicsHandler, gamesHandler, mangasHandler, draftsHandler,
		wallsBooksHandler, wallsComicsHandler, wallsGamesHandler, wallsMangasHandler,
		booksReviewsHandler, comicsReviewsHandler, gamesReviewsHandler, mangasReviewsHandler,
		authHandler, userHandler, mw,
	)
	appRouter.Setup(engine)

	// --- Phase 7: 定时任务 ---
	scheduler := task.NewScheduler(userRepo)

	app := &App{
		cfg:       cfg,
		engine:    engine,
		scheduler: scheduler,
		sqlDB:     sqlDB,
		entClient: entClient,
		rdb:       rdb,
	}

	cleanup := func() {
		if app.rdb != nil {
			app.rdb.Close()
		}
		if err := app.entClient.Close(); err != nil {
			log.Printf("关闭 Ent 客户端失败: %v", err)
		}
		log.Println("数据库连接已关闭。")
	}

	return app, cleanup, nil
}

// sessionSecretConfig 抽出 ensureJWTSecret 所需的配置读写能力。
type sessionSecretConfig interface {
	GetString(key string) string
	Set(key, value string)
}

// ensureJWTSecret 在 JWTSecret 未配置时生成一个随机会话密钥。
// 密钥只存在于进程内存中，重启后所有已签发的会话随之失效。
func ensureJWTSecret(cfg sessionSecretConfig) error {
	if cfg.GetString(config.KeyJWTSecret) != "" {
		return nil
	}
	secret, err := utils.GenerateRandomString(64)
	if err != nil {
		return fmt.Errorf("生成随机会话密钥失败: %w", err)
	}
	cfg.Set(config.KeyJWTSecret, secret)
	log.Println("JWTSecret 未配置，已生成随机会话密钥，重启后所有会话将失效。")
	return nil
}

// Engine 返回底层的 Gin 引擎，测试时用于直接驱动请求。
func (a *App) Engine() *gin.Engine {
	return a.engine
}

// Run 注册并启动定时任务，然后阻塞监听 HTTP 端口。
func (a *App) Run() error {
	a.scheduler.RegisterJobs()
	a.scheduler.Start()

	port := a.cfg.GetStringOrDefault(config.KeyServerPort, "8091")
	fmt.Printf("应用程序启动成功，正在监听端口: %s\n", port)

	return a.engine.Run(":" + port)
}

// Stop 优雅地停止后台任务。
func (a *App) Stop() {
	if a.scheduler != nil {
		a.scheduler.Stop()
		log.Println("任务调度器已停止。")
	}
}
