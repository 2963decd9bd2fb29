package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leavedesk/leave-approval-backend/internal/config"
	"github.com/leavedesk/leave-approval-backend/internal/domain/auth"
	appHTTP "github.com/leavedesk/leave-approval-backend/internal/handler/http"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/database"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/docstore"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/jwt"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/oauth"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/sse"
	"github.com/leavedesk/leave-approval-backend/internal/repository/document"
	"github.com/leavedesk/leave-approval-backend/internal/repository/postgresql"
	serviceAuth "github.com/leavedesk/leave-approval-backend/internal/service/auth"
	serviceLeave "github.com/leavedesk/leave-approval-backend/internal/service/leave"
)

const (
	sseBuffer       = 32
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	userRepo := document.NewUserRepository(store)
	leaveRequestRepo := document.NewLeaveRequestRepository(store)
	statusWriter := document.NewStatusWriter(store)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		return fmt.Errorf("invalid jwt settings: %w", err)
	}
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	if !cfg.OAuth2Google.Enabled() {
		slog.Warn("Google sign-in is not configured; /auth/login/google will fail")
	}

	hub := sse.NewHub(sseBuffer)
	defer hub.Close()

	authService := serviceAuth.NewAuthService(userRepo, JWTService, auth.RoleResolver{
		StudentDomain: cfg.Roles.StudentDomain,
		ClerkEmails:   cfg.Roles.ClerkEmails,
		HODEmails:     cfg.Roles.HODEmails,
		HODKeyword:    cfg.Roles.HODKeyword,
		TeacherEmails: cfg.Roles.TeacherEmails,
	})
	leaveService := serviceLeave.NewLeaveService(leaveRequestRepo, statusWriter, userRepo, hub, serviceLeave.Config{
		Limits:                  cfg.Leave.Limits,
		RecentLimit:             cfg.Leave.RecentLimit,
		ReopenOnTeacherDecision: cfg.Leave.ReopenOnTeacherDecision,
		LookupConcurrency:       cfg.Leave.LookupConcurrency,
	})

	router := appHTTP.NewRouter(JWTService, appHTTP.RouterOptions{
		AppEnv:      cfg.App.Env,
		CORSOrigins: cfg.App.CORSOrigins,
		LogLevel:    cfg.SlogLevel(),
	}, appHTTP.Handlers{
		Auth:    appHTTP.NewAuthHandler(authService, GoogleService, cfg.App.FrontendURL),
		Profile: appHTTP.NewProfileHandler(userRepo),
		Leave:   appHTTP.NewLeaveHandler(leaveService),
		Review:  appHTTP.NewReviewHandler(leaveService),
		Event:   appHTTP.NewEventHandler(authService, JWTService, hub),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "store", cfg.App.StoreBackend, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	// Open event streams only end once the hub closes their channels.
	hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg *config.Config) (docstore.Store, func(), error) {
	if cfg.App.StoreBackend != config.StorePostgres {
		slog.Warn("Using in-memory document store; data is lost on restart")
		return docstore.NewMemoryStore(), func() {}, nil
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), cfg.Database.MaxConns)
	if err != nil {
		return nil, nil, fmt.Errorf("error connecting to database: %w", err)
	}
	store := postgresql.NewDocumentStore(db)
	if err := store.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("error preparing schema: %w", err)
	}
	return store, db.Close, nil
}
