package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/brandcraft/internal/config"
	"github.com/jonathan/brandcraft/internal/db"
	"github.com/jonathan/brandcraft/internal/server/middleware"
	"github.com/jonathan/brandcraft/internal/server/ratelimit"
	"github.com/jonathan/brandcraft/internal/synth"
)

// Version is reported by the root endpoint.
const Version = "1.0.0"

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// Server represents the HTTP server
type Server struct {
	httpServer     *http.Server
	db             DBClient
	engine         *synth.Engine
	logger         *zap.Logger
	allowedOrigins map[string]bool
	rateLimiter    *ratelimit.Limiter
	jwtService     *JWTService
	userService    *UserService
}

// Config holds server configuration
type Config struct {
	Port           int
	DB             DBClient
	Engine         *synth.Engine
	JWT            *config.JWTConfig
	Password       *config.PasswordConfig
	RateLimit      *ratelimit.Config // nil uses the limiter defaults
	AllowedOrigins []string
	Logger         *zap.Logger // nil discards logs
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	switch {
	case cfg.DB == nil:
		return nil, errors.New("server: database is required")
	case cfg.Engine == nil:
		return nil, errors.New("server: synthesis engine is required")
	case cfg.JWT == nil:
		return nil, errors.New("server: JWT config is required")
	case cfg.Password == nil:
		return nil, errors.New("server: password config is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		db:             cfg.DB,
		engine:         cfg.Engine,
		logger:         logger,
		allowedOrigins: make(map[string]bool, len(cfg.AllowedOrigins)),
		rateLimiter:    ratelimit.NewLimiter(cfg.RateLimit),
		jwtService:     NewJWTService(cfg.JWT),
		userService:    NewUserService(cfg.DB, cfg.Password),
	}
	for _, origin := range cfg.AllowedOrigins {
		s.allowedOrigins[origin] = true
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withCORS(s.withRateLimit(s.withLogging(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func (s *Server) routes() *http.ServeMux {
	auth := func(h http.HandlerFunc) http.Handler { return s.requireUser(h) }
	admin := func(h http.HandlerFunc) http.Handler {
		return s.requireUser(middleware.RequireRole(db.RoleAdmin)(h))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Authentication
	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.Handle("GET /api/me", auth(s.handleMe))

	// Generation
	mux.Handle("POST /api/brand-names", auth(s.handleBrandNames))
	mux.Handle("POST /api/logo-generate", auth(s.handleLogoGenerate))
	mux.Handle("POST /api/brand-identity", auth(s.handleBrandIdentity))
	mux.Handle("POST /api/content-generate", auth(s.handleContentGenerate))
	mux.Handle("GET /api/content-history", auth(s.handleContentHistory))
	mux.Handle("POST /api/sentiment-analyze", auth(s.handleSentimentAnalyze))
	mux.Handle("GET /api/sentiment-reports", auth(s.handleSentimentReports))
	mux.Handle("POST /api/chat", auth(s.handleChat))
	mux.Handle("GET /api/chat/history", auth(s.handleChatHistory))

	// Projects and brand kit
	mux.Handle("POST /api/projects", auth(s.handleCreateProject))
	mux.Handle("GET /api/projects", auth(s.handleListProjects))
	mux.Handle("GET /api/projects/{id}", auth(s.handleGetProject))
	mux.Handle("PUT /api/projects/{id}", auth(s.handleUpdateProject))
	mux.Handle("DELETE /api/projects/{id}", auth(s.handleDeleteProject))
	mux.Handle("POST /api/brand-kit", auth(s.handleCreateBrandAsset))
	mux.Handle("GET /api/brand-kit/{project_id}", auth(s.handleListBrandAssets))
	mux.Handle("DELETE /api/brand-kit/{asset_id}", auth(s.handleDeleteBrandAsset))

	// Administration
	mux.Handle("GET /api/admin/users", admin(s.handleAdminListUsers))
	mux.Handle("GET /api/admin/stats", admin(s.handleAdminStats))
	mux.Handle("GET /api/admin/logs", admin(s.handleAdminLogs))
	mux.Handle("PUT /api/admin/users/{id}/suspend", admin(s.handleAdminToggleUser))
	mux.Handle("DELETE /api/admin/users/{id}", admin(s.handleAdminDeleteUser))

	return mux
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves requests until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.Close()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", zap.String("addr", ln.Addr().String()))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	<-errCh

	s.logger.Info("Server stopped")
	return nil
}

// Close stops background work owned by the server. The database is owned by the caller.
func (s *Server) Close() {
	// Stop rate limiter cleanup goroutine
	s.rateLimiter.Stop()
}

// withCORS adds CORS headers for allowed origins
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && s.allowedOrigins[origin] {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			h.Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, clientID, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", r.RemoteAddr),
		)
	})
}

// handleRoot describes the API
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"name":    "BrandCraft API",
		"version": Version,
		"status":  "running",
		"docs":    "/docs",
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("Error encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// fail maps err to a status and writes it. Internal errors are logged and not echoed.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; X-Forwarded-For is not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, clientID string, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Round(time.Second).Seconds())
		if seconds < 1 {
			seconds = 1
		}
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	s.logger.Warn("Rate limit exceeded",
		zap.String("client", clientID),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("limit", info.Limit),
	)

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
