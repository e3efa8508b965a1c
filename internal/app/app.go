package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/moodbook-backend/internal/auth"
	"github.com/heartmarshall/moodbook-backend/internal/config"
	"github.com/heartmarshall/moodbook-backend/internal/transport/middleware"
	"github.com/heartmarshall/moodbook-backend/internal/transport/rest"
)

// Run loads configuration, wires storage, services and the HTTP stack, and
// serves until ctx is cancelled. Shutdown waits up to
// cfg.Server.ShutdownTimeout for in-flight requests.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("comment_provider", cfg.Comment.Provider),
	)

	st, err := OpenStorage(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer st.Close()

	svcs, err := NewServices(cfg, st, logger)
	if err != nil {
		return fmt.Errorf("build services: %w", err)
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHTTPHandler(cfg, logger, st, svcs, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// NewHTTPHandler builds the router wrapped in the middleware chain:
// Recovery, RequestID, Logger, CORS, Auth, then write rate limiting.
func NewHTTPHandler(cfg *config.Config, logger *slog.Logger, st *Storage, svcs *Services, limiter *middleware.RateLimiter) http.Handler {
	health := rest.NewHealthHandler(nil, st.Driver, BuildVersion())
	if st.Pool != nil {
		health = rest.NewHealthHandler(st.Pool, st.Driver, BuildVersion())
	}

	router := rest.NewRouter(rest.Handlers{
		Health:    health,
		Diary:     rest.NewDiaryHandler(svcs.Diary, logger),
		Analytics: rest.NewAnalyticsHandler(svcs.Analytics, logger),
	})

	verifier := auth.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(logger, verifier),
		limiter.LimitWrites(cfg.Server.WriteRatePerMinute),
	)(router)
}
