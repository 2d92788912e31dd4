package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	appControllers "github.com/artemn/yatube/internal/app/controllers"
	appMigrations "github.com/artemn/yatube/internal/app/migrations"
	appRepos "github.com/artemn/yatube/internal/app/repositories"
	appRoutes "github.com/artemn/yatube/internal/app/routes"
	appServices "github.com/artemn/yatube/internal/app/services"
	"github.com/artemn/yatube/internal/config"
	"github.com/artemn/yatube/internal/db"
	appMiddleware "github.com/artemn/yatube/internal/middleware"
	pkgAuth "github.com/artemn/yatube/internal/pkg/auth"
	"github.com/artemn/yatube/internal/pkg/cache"
	"github.com/artemn/yatube/internal/pkg/filestorage"
	"github.com/artemn/yatube/internal/pkg/logger"
	"github.com/artemn/yatube/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	FeedService       appServices.FeedService
	PostService       appServices.PostService
	CommentService    appServices.CommentService
	FollowService     appServices.FollowService
	AuthService       appServices.AuthService
	FeedController    *appControllers.FeedController
	PostController    *appControllers.PostController
	CommentController *appControllers.CommentController
	FollowController  *appControllers.FollowController
	AuthController    *appControllers.AuthController
	ErrorController   *appControllers.ErrorController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	SessionService    *pkgAuth.SessionService
	FileStorage       *filestorage.LocalStorage
	PageCache         *cache.PageCache
	RedisClient       *redis.Client
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	logger.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations
// and seeds default data.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	logger.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	logger.Info().Msg("Database connection successfully established.")

	logger.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		logger.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		logger.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	logger.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool); err != nil {
		// Startup continues; missing demo data is not fatal.
		logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, "/media")
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	if cfg.Redis.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		deps.RedisClient, err = cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to connect to Redis")
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		deps.PageCache = cache.New(deps.RedisClient, cfg.FeedCacheTTL())
		logger.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.FeedCacheTTL()).Msg("Feed page cache enabled")
	} else {
		logger.Info().Msg("Redis disabled, feed pages will be rendered from the database on every request")
	}

	deps.SessionService = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey: cfg.Session.Secret,
		Lifetime:  cfg.SessionLifetime(),
		Issuer:    cfg.Session.Issuer,
	})

	deps.FeedService = appServices.NewFeedService(
		deps.Repos.PostRepository,
		deps.Repos.GroupRepository,
		deps.Repos.UserRepository,
		deps.PageCache,
	)
	deps.PostService = appServices.NewPostService(
		deps.Repos.PostRepository,
		deps.Repos.CommentRepository,
		deps.Repos.UserRepository,
		deps.FileStorage,
	)
	deps.CommentService = appServices.NewCommentService(deps.Repos.CommentRepository, deps.Repos.PostRepository)
	deps.FollowService = appServices.NewFollowService(deps.Repos.FollowRepository, deps.Repos.UserRepository)
	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.SessionService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.SessionService)

	cookieMaxAge := int(cfg.SessionLifetime() / time.Second)
	cookieSecure := strings.ToLower(cfg.Server.Mode) == "production"

	deps.FeedController = appControllers.NewFeedController(deps.FeedService)
	deps.PostController = appControllers.NewPostController(deps.PostService, deps.Repos.GroupRepository)
	deps.CommentController = appControllers.NewCommentController(deps.CommentService, deps.PostService)
	deps.FollowController = appControllers.NewFollowController(deps.FollowService)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, cookieMaxAge, cookieSecure)
	deps.ErrorController = appControllers.NewErrorController()

	return deps, nil
}

// SetupRouter configures the Gin engine with templates, middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		logger.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.CustomRecovery(deps.ErrorController.Recovery))

	router.LoadHTMLGlob(filepath.Join(cfg.Server.TemplateDir, "*.html"))

	appRoutes.SetupRouter(router,
		deps.FeedController,
		deps.PostController,
		deps.CommentController,
		deps.FollowController,
		deps.AuthController,
		deps.ErrorController,
		deps.AuthMiddleware,
	)

	return router
}
