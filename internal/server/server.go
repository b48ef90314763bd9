// Package server provides the HTTP REST API for the workforce analytics service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/catalog"
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/config"
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/db"
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/predict"
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/scoring"
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/server/middleware"
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/types"
)

// APIVersion is reported by the root endpoint.
const APIVersion = "1.0.0"

// Predictor is the prediction-service surface the handlers depend on.
type Predictor interface {
	PredictRetention(ctx context.Context, p types.NormalizedProfile) (*predict.RetentionPrediction, error)
	PredictSalary(ctx context.Context, p types.NormalizedProfile) (float64, error)
	PredictRole(ctx context.Context, p types.NormalizedProfile) (*predict.RolePrediction, error)
	PredictSkillRating(ctx context.Context, p types.NormalizedProfile) (float64, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	database   *db.DB
	catalog    *catalog.Catalog
	engine     *scoring.Engine
	predictor  Predictor
	logger     zerolog.Logger

	userService *UserService
	authHandler *AuthHandler
	jwtService  *JWTService

	corsOrigin string
	clock      func() time.Time
}

// New creates a new server instance wired to PostgreSQL and the prediction
// service named by cfg.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	roleCatalog := catalog.Default()
	if cfg.CatalogPath != "" {
		roleCatalog, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to load role catalog: %w", err)
		}
	}

	s := &Server{
		database:   database,
		catalog:    roleCatalog,
		engine:     scoring.NewEngine(roleCatalog),
		predictor:  predict.NewClient(cfg.ModelServerURL, logger),
		logger:     logger,
		corsOrigin: cfg.CORSOrigin,
		clock:      time.Now,
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the route table.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Authentication endpoints
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)

	// Employee endpoints; mutations require a bearer token
	mux.HandleFunc("GET /employees/", s.handleListEmployees)
	mux.HandleFunc("GET /employees/{id}", s.handleGetEmployee)
	mux.HandleFunc("GET /employees/{id}/recommendations", s.handleListEmployeeRecommendations)
	if s.jwtService != nil {
		authed := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
		mux.Handle("POST /employees/", authed(http.HandlerFunc(s.handleCreateEmployee)))
		mux.Handle("PUT /employees/{id}", authed(http.HandlerFunc(s.handleUpdateEmployee)))
		mux.Handle("DELETE /employees/{id}", authed(http.HandlerFunc(s.handleDeleteEmployee)))
	}

	// Prediction endpoints
	mux.HandleFunc("POST /predict/retention", s.handlePredictRetention)
	mux.HandleFunc("POST /predict/salary", s.handlePredictSalary)
	mux.HandleFunc("POST /predict/role", s.handlePredictRole)
	mux.HandleFunc("POST /predict/skill-rating", s.handlePredictSkillRating)

	// Catalog and recommendation endpoints
	mux.HandleFunc("GET /job-roles/", s.handleListJobRoles)
	mux.HandleFunc("GET /skills/", s.handleListSkills)
	mux.HandleFunc("POST /recommend-jobs", s.handleRecommendJobs)

	// Analytics
	mux.HandleFunc("GET /analytics/dashboard", s.handleDashboard)

	return mux
}

// Run listens for requests until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()
	if s.database != nil {
		s.database.Close()
	}
	s.logger.Info().Msg("server stopped")
	return err
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	origin := s.corsOrigin
	if origin == "" {
		origin = "*"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds structured request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// handleRoot reports the service name and version
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"message": "Workforce Distribution AI API",
		"version": APIVersion,
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": s.clock().UTC().Format(time.RFC3339),
	})
}

// handleRegister handles user registration requests.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	s.authHandler.Register(w, r)
}

// handleLogin handles user login requests.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.authHandler.Login(w, r)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
