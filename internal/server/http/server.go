// Package http exposes the REST surface of the Battle API server. It is a
// thin caller of the services layer: every protected route resolves the
// bearer token through the identity service and maps domain errors to
// transport statuses.
package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/battleapi/internal/logging"
	"github.com/dmitrijs2005/battleapi/internal/server/config"
	"github.com/dmitrijs2005/battleapi/internal/server/models"
)

// AuthService is the slice of the user service consumed by the handlers.
type AuthService interface {
	Register(ctx context.Context, email, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// IdentityResolver resolves a raw bearer token to a user.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*models.User, error)
}

// ItemsService is the ownership-filtered item access used by the handlers.
type ItemsService interface {
	List(ctx context.Context, ownerID string) ([]*models.Item, error)
	Create(ctx context.Context, ownerID, title, description string) (*models.Item, error)
	Delete(ctx context.Context, ownerID, itemID string) error
}

type Server struct {
	address            string
	logger             logging.Logger
	users              AuthService
	identity           IdentityResolver
	items              ItemsService
	corsOrigins        []string
	githubClientID     string
	githubClientSecret string
	engine             *gin.Engine
}

func NewServer(cfg *config.Config, l logging.Logger, users AuthService, identity IdentityResolver, items ItemsService) *Server {
	s := &Server{
		address:            cfg.EndpointAddrHTTP,
		logger:             l.With("module", "http_server"),
		users:              users,
		identity:           identity,
		items:              items,
		corsOrigins:        splitOrigins(cfg.CORSOrigins),
		githubClientID:     cfg.GithubClientID,
		githubClientSecret: cfg.GithubClientSecret,
	}
	s.engine = s.buildEngine()
	return s
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (s *Server) buildEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestLogger(), s.cors())

	engine.GET("/", s.handleRoot)
	engine.GET("/health", s.handleHealth)

	authGroup := engine.Group("/auth")
	{
		authGroup.POST("/register", s.handleRegister)
		authGroup.POST("/token", s.handleToken)
		authGroup.GET("/me", s.authRequired(), s.handleMe)
		authGroup.GET("/github/login", s.handleGithubLogin)
		authGroup.GET("/github/callback", s.handleGithubCallback)
	}

	itemsGroup := engine.Group("/items", s.authRequired())
	{
		itemsGroup.GET("", s.handleListItems)
		itemsGroup.POST("", s.handleCreateItem)
		itemsGroup.DELETE("/:id", s.handleDeleteItem)
	}

	return engine
}

// Handler exposes the configured engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.address, Handler: s.engine}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
