// Package server exposes the profile and coaching use cases over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/fitai/internal/service"
)

// UserHeader selects the acting user. Requests without it act as
// Deps.DefaultUser.
const UserHeader = "X-User-ID"

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Profiles    service.ProfileService
	Coach       service.CoachService
	DefaultUser string
	Logger      zerolog.Logger
	// Ping reports storage health for /health. Optional.
	Ping func(ctx context.Context) error
}

// Server wires routes and middleware onto an echo instance.
type Server struct {
	deps Deps
	echo *echo.Echo
}

// New builds the router.
func New(deps Deps) *Server {
	if deps.DefaultUser == "" {
		deps.DefaultUser = "demo-user"
	}
	s := &Server{deps: deps, echo: echo.New()}
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.registerRoutes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) registerRoutes() {
	e := s.echo
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAccept, echo.HeaderContentType, UserHeader, echo.HeaderXRequestID},
		MaxAge:       300,
	}))
	e.Use(LoggerMiddleware(s.deps.Logger))

	e.GET("/health", s.health)

	api := e.Group("/api")
	api.POST("/profile", s.createProfile)
	api.GET("/profile", s.getProfile)
	api.PATCH("/profile", s.updateProfile)
	api.PATCH("/profile/completion", s.updateCompletion)
	api.GET("/progress", s.progress)
	api.POST("/generate-plans", s.generatePlans)
	api.POST("/generate-schedule", s.generateSchedule)
	api.POST("/chat", s.chat)
}

// HTTPServer returns an *http.Server for addr. Write timeout leaves room
// for a full prediction polling cycle.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second,
	}
}

// Run serves srv until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, srv *http.Server, logger zerolog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
