package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/soaringjerry/bemestar/internal/api"
	"github.com/soaringjerry/bemestar/internal/auth"
	"github.com/soaringjerry/bemestar/internal/config"
	"github.com/soaringjerry/bemestar/internal/middleware"
	"github.com/soaringjerry/bemestar/internal/services"
	"github.com/soaringjerry/bemestar/internal/store"
)

var version = "dev"

func newLogger(cfg config.Config) *slog.Logger {
	if cfg.LogJSON {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	sessions, closeSessions, err := openSessions(cfg, logger)
	if err != nil {
		logger.Error("open session store", "backend", cfg.SessionBackend, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeSessions(); err != nil {
			logger.Warn("close session store", "error", err)
		}
	}()

	repo := store.NewSeeded(time.Now().UTC())
	latency := services.DefaultLatency().Scale(cfg.LatencyScale)

	authSvc, err := services.NewAuthService(repo, services.DefaultCredentials, latency)
	if err != nil {
		logger.Error("init auth service", "error", err)
		os.Exit(1)
	}
	authCtx := auth.New(authSvc, sessions, logger)
	go authCtx.Start(context.Background())

	rt := api.NewRouter(api.Deps{
		Auth:           authCtx,
		Companies:      services.NewCompanyService(repo, latency),
		Users:          services.NewUserService(repo, latency),
		Questions:      services.NewQuestionService(repo, latency),
		Questionnaires: services.NewQuestionnaireService(repo, latency),
		Logger:         logger,
		Version:        version,
	})

	handler := middleware.Chain(rt.Handler(),
		middleware.Logging(logger),
		middleware.Locale(cfg.DefaultLocale),
		middleware.Recover(logger),
		middleware.CORS(cfg.CORSOrigin),
		middleware.SecureHeaders,
		middleware.NoStore,
	)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Error("listen", "addr", cfg.Addr, "error", err)
		os.Exit(1)
	}

	// signal.Notify requires the channel to be buffered
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	logger.Info("bemestar listening",
		"addr", ln.Addr().String(),
		"env", cfg.Env,
		"session_backend", cfg.SessionBackend,
		"latency_scale", cfg.LatencyScale,
		"version", version,
	)
	if err := serve(server, ln, stop, cfg.ShutdownTimeout, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
	logger.Info("server closed")
}

// serve runs srv on ln until stop fires, then returns only once Shutdown
// has drained in-flight requests or timeout has passed.
func serve(srv *http.Server, ln net.Listener, stop <-chan os.Signal, timeout time.Duration, logger *slog.Logger) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("shutdown", "error", err)
		}
	}()
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done
	return nil
}
