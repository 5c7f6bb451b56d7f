// @title       Invitation Tracker API
// @version     1.0
// @description Records invited households per area and reports head counts.
// @BasePath    /
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"invitationtracker/config"
	httpdelivery "invitationtracker/internal/delivery/http"
	"invitationtracker/internal/delivery/http/controllers"
	"invitationtracker/internal/delivery/http/middleware"
	"invitationtracker/internal/delivery/web"
	"invitationtracker/internal/domain"
	"invitationtracker/internal/repository/memory"
	"invitationtracker/internal/repository/mongodb"
	"invitationtracker/internal/repository/postgres"
	"invitationtracker/internal/services"

	_ "invitationtracker/docs"
)

// stores bundles the repositories of one backend with its release function.
type stores struct {
	areas       domain.AreaRepository
	invitations domain.InvitationRepository
	closeFn     func(context.Context) error
}

// openStores picks the backend from the connection string scheme. No
// connection is made here; the handle dials on first use.
func openStores(cfg *config.Config) (*stores, error) {
	u, err := url.Parse(cfg.DBUrl)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	switch u.Scheme {
	case "postgres", "postgresql":
		h := postgres.NewHandle(cfg.DBUrl)
		return &stores{
			areas:       postgres.NewAreaRepository(h),
			invitations: postgres.NewInvitationRepository(h),
			closeFn:     h.Close,
		}, nil
	case "mongodb", "mongodb+srv":
		h := mongodb.NewHandle(cfg.DBUrl, cfg.DBName)
		return &stores{
			areas:       mongodb.NewAreaRepository(h),
			invitations: mongodb.NewInvitationRepository(h),
			closeFn:     h.Close,
		}, nil
	case "memory":
		s := memory.NewStore()
		return &stores{
			areas:       s.Areas(),
			invitations: s.Invitations(),
			closeFn:     func(context.Context) error { return nil },
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", u.Scheme)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)

	st, err := openStores(cfg)
	if err != nil {
		logger.Error("failed to initialize storage", "err", err)
		os.Exit(1)
	}

	page, err := web.NewHandler(logger, "")
	if err != nil {
		logger.Error("failed to parse page templates", "err", err)
		os.Exit(1)
	}

	metrics := middleware.NewMetrics()
	mux := httpdelivery.NewRouter(
		controllers.NewAreaController(logger, services.NewAreaService(st.areas)),
		controllers.NewInvitationController(logger, services.NewInvitationService(st.invitations)),
		page,
		metrics,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httpdelivery.NewHandler(mux, logger, metrics, cfg.CORSAllowedOrigins),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("start and listen", "address", srv.Addr, "env", cfg.Environment)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error during listen and serve", "err", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
	if err := st.closeFn(shutdownCtx); err != nil {
		logger.Error("failed to close database", "err", err)
	}
	logger.Info("shutdown")
}
