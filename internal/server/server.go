package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/elite-arena/apiserver/config"
	"github.com/elite-arena/apiserver/internal/archive"
	"github.com/elite-arena/apiserver/internal/auth"
	"github.com/elite-arena/apiserver/internal/db"
	"github.com/elite-arena/apiserver/internal/events"
	"github.com/elite-arena/apiserver/internal/handlers"
	"github.com/elite-arena/apiserver/internal/services"
	"github.com/elite-arena/apiserver/internal/store"
)

// Server wraps the HTTP server, router, and shared dependencies.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
	publisher  *events.Publisher
}

// New constructs a Server: opens the database, builds the event publisher
// and audit archive from config, and wires routes and middleware.
func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*Server, error) {
	if log == nil {
		log = slog.Default()
	}
	if cfg.UsingInsecureSecret() {
		log.Warn("JWT_SECRET not set, using insecure dev default")
	}

	dbConn, err := db.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	publisher, err := events.NewPublisher(ctx, cfg.Events)
	if err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("init event publisher: %w", err)
	}

	auditArchive, err := archive.New(ctx, cfg.Archive)
	if err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("init archive: %w", err)
	}

	userRepo := store.NewUserRepository(dbConn)
	registrationRepo := store.NewRegistrationRepository(dbConn)

	userService := services.NewUserService(userRepo)
	registrationService := services.NewRegistrationService(registrationRepo, publisher, auditArchive, log)

	issuer := auth.NewIssuer(cfg.JWTSecret)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Get("/healthz", handlers.Healthz)
	router.Route("/auth", func(r chi.Router) {
		handlers.AuthRouter(r, userService, issuer)
	})
	router.Route("/registrations", func(r chi.Router) {
		handlers.RegistrationRouter(r, registrationService)
	})
	router.Route("/products", func(r chi.Router) {
		handlers.ProductRouter(r)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 3000
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
		publisher:  publisher,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown closes the server and its dependencies.
func (s *Server) Shutdown() error {
	if s.publisher != nil {
		_ = s.publisher.Close()
	}
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
