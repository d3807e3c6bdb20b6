// Package bootstrap assembles the application: configuration, logger,
// storage backend, session store, controllers, and router.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"

	"github.com/engbowl/engbowl/internal/app/controllers"
	"github.com/engbowl/engbowl/internal/app/migrations"
	"github.com/engbowl/engbowl/internal/app/routes"
	"github.com/engbowl/engbowl/internal/app/services"
	"github.com/engbowl/engbowl/internal/app/storage"
	"github.com/engbowl/engbowl/internal/config"
	"github.com/engbowl/engbowl/internal/db"
	"github.com/engbowl/engbowl/internal/middleware"
	"github.com/engbowl/engbowl/internal/pkg/logger"
	"github.com/engbowl/engbowl/internal/session"
)

// Dependencies holds everything the server needs to run.
type Dependencies struct {
	Config   *config.Config
	DB       *db.PostgresDB // nil when running on the memory backend
	Storage  storage.Storage
	Sessions session.Store
	Handler  http.Handler
}

// LoadConfigAndSetupLogger loads configuration and configures the
// global logger from it.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format == "pretty",
	})
	return cfg, nil
}

// BuildDependencies selects the storage backend, runs migrations when
// Postgres is configured, and wires the full HTTP handler. The memory
// backend ships with demo fixtures; Postgres starts from its schema.
func BuildDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	deps := &Dependencies{Config: cfg}

	if cfg.UseDatabase() {
		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := migrations.Run(ctx, database.Pool); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		deps.DB = database
		deps.Storage = storage.NewPostgresStorage(database.Pool)
		deps.Sessions = session.NewPostgresStore(database.Pool, cfg.SessionTTL())
		logger.Info().Msg("Using Postgres storage backend")
	} else {
		deps.Storage = storage.NewMemoryStorage()
		deps.Sessions = session.NewMemoryStore(cfg.SessionTTL())
		logger.Info().Msg("Using in-memory storage backend")
	}

	deps.Handler = buildHandler(cfg, deps.Storage, deps.Sessions)
	return deps, nil
}

// Close releases backend resources.
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}

// registerValidatorTagNames makes binding errors report JSON field
// names instead of Go struct field names, matching the field paths
// the service-level validation errors use.
func registerValidatorTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func buildHandler(cfg *config.Config, store storage.Storage, sessions session.Store) http.Handler {
	gin.SetMode(cfg.Server.Mode)
	registerValidatorTagNames()
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	authService := services.NewAuthService(store, sessions)
	cookie := controllers.CookieSettings{
		Name:   cfg.Session.CookieName,
		MaxAge: int(cfg.SessionTTL().Seconds()),
		Secure: cfg.Session.Secure,
	}

	ctrl := routes.Controllers{
		Auth:       controllers.NewAuthController(authService, cookie),
		User:       controllers.NewUserController(store),
		Resource:   controllers.NewResourceController(store),
		Discussion: controllers.NewDiscussionController(store),
		Job:        controllers.NewJobController(store),
		Mentor:     controllers.NewMentorController(store),
		Message:    controllers.NewMessageController(store),
	}
	routes.SetupRoutes(router, ctrl, sessions, cfg.Session.CookieName)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	return corsHandler.Handler(router)
}
