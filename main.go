package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitea.com/go-chi/session"
	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/blogem/asset-tracker/authenticator"
	"github.com/blogem/asset-tracker/config"
	"github.com/blogem/asset-tracker/controllers"
	"github.com/blogem/asset-tracker/database"
	"github.com/blogem/asset-tracker/logging"
	authmiddleware "github.com/blogem/asset-tracker/middleware"
	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/repositories"
	"github.com/blogem/asset-tracker/services"
)

func main() {
	if err := run(); err != nil {
		slog.Error("asset tracker stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(os.Stdout, logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.Initialize(ctx, cfg.DatabasePath, logger)
	if err != nil {
		return errors.Wrap(err, "failed to initialize database")
	}
	defer db.Close()

	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos, services.Options{
		AdminEmails:        cfg.AdminEmails,
		AuditRetentionDays: cfg.AuditRetentionDays,
	}, logger)

	auth, err := authenticator.NewOpenIDProvider(ctx, cfg.OIDC)
	if err != nil {
		return errors.Wrap(err, "failed to initialize OpenID provider")
	}

	ctrl := controllers.NewControllers(srvs, auth, logger)

	r, err := setupRouter(cfg, ctrl, srvs, logger)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("asset tracker starting", "port", cfg.Port, "database", cfg.DatabasePath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return errors.Wrap(err, "server failed")
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server forced to shutdown")
	}

	logger.Info("server exited")
	return nil
}

// setupRouter configures all routes
func setupRouter(cfg *config.Config, ctrl *controllers.Controllers, srvs *services.Services, logger *slog.Logger) (*chi.Mux, error) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	lifetime := int64(cfg.SessionLifetime / time.Second)
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "asset_tracker_session",
		Secure:         cfg.UseHTTPS,
		SameSite:       http.SameSiteLaxMode,
		Gclifetime:     lifetime,
		Maxlifetime:    lifetime,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize session")
	}
	r.Use(sessionHandler)
	r.Use(authmiddleware.LoadUser(srvs.Profiles, logger))
	r.Use(authmiddleware.RequestLogger(logger))

	// PUBLIC ROUTES
	r.Get("/", ctrl.Dashboard.Index)
	r.Get("/login", ctrl.Auth.Login)
	r.Get("/callback", ctrl.Auth.Callback)
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"status": "healthy", "service": "asset-tracker"}`)
	})

	// PROTECTED ROUTES
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireAuth)

		r.Get("/assets", ctrl.Assets.Index)
		r.Get("/audit", ctrl.Audit.Index)
		r.Get("/employees", ctrl.Employees.Index)
		r.Get("/employees/{id}", ctrl.Employees.Show)
		r.Get("/departments", ctrl.Departments.Index)
		r.Get("/departments/{id}", ctrl.Departments.Show)
		r.Get("/categories", ctrl.Categories.Index)

		r.Group(func(r chi.Router) {
			r.Use(authmiddleware.RequireRole(models.RoleAdmin, models.RoleITStaff))

			r.Get("/assets/new", ctrl.Assets.New)
			r.Post("/assets/new", ctrl.Assets.Create)
			r.Get("/assets/{id}/edit", ctrl.Assets.Edit)
			r.Post("/assets/{id}/edit", ctrl.Assets.Update)
			r.Post("/assets/{id}/assign", ctrl.Assets.Assign)
			r.Post("/assets/{id}/unassign", ctrl.Assets.Unassign)
			r.Post("/assets/{id}/status", ctrl.Assets.ChangeStatus)
			r.Post("/assets/{id}/delete", ctrl.Assets.Delete)
			r.Get("/export/{kind}", ctrl.Export.Download)
		})

		r.Group(func(r chi.Router) {
			r.Use(authmiddleware.RequireRole(models.RoleAdmin))

			r.Get("/settings", ctrl.Settings.Index)
			r.Post("/settings/audit/purge", ctrl.Settings.PurgeAuditHistory)
			r.Post("/employees/{id}/role", ctrl.Employees.ChangeRole)
			r.Post("/departments", ctrl.Departments.Create)
			r.Post("/departments/{id}/edit", ctrl.Departments.Update)
			r.Post("/departments/{id}/delete", ctrl.Departments.Delete)
			r.Post("/categories", ctrl.Categories.Create)
			r.Post("/categories/{id}/edit", ctrl.Categories.Update)
			r.Post("/categories/{id}/delete", ctrl.Categories.Delete)
		})

		r.Get("/assets/{id}", ctrl.Assets.Show)
	})

	return r, nil
}
