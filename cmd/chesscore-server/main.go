// chesscore-server hosts one game over HTTP and websockets for rendering
// clients.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/game"
	"github.com/lgbarn/chesscore-go/internal/web"
)

var configFile = flag.String("config", "", "YAML configuration file (default: ./chesscore.yaml if present)")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log.Logger = newLogger(os.Stdout, cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log.Logger); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("server exited")
}

// newLogger writes JSON log lines, or console lines when cfg.Pretty is set.
func newLogger(w io.Writer, cfg config.LogConfig) zerolog.Logger {
	level, err := cfg.ZerologLevel()
	if err != nil {
		level = zerolog.InfoLevel
	}
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// newHTTPServer builds the session, hub and handler for cfg.
func newHTTPServer(cfg *config.Config, hub *web.Hub, logger zerolog.Logger) (*http.Server, error) {
	session, err := game.New(
		game.WithStartFEN(cfg.Game.StartFEN),
		game.WithRules(cfg.Rules),
		game.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	handler := web.NewServer(session, web.WithHub(hub), web.WithLogger(logger))
	return &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, nil
}

// run serves until ctx is done, then shuts down gracefully.
func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	hubCtx, cancelHub := context.WithCancel(context.Background())
	defer cancelHub()

	hub := web.NewHub(logger)
	go hub.Run(hubCtx)

	srv, err := newHTTPServer(cfg, hub, logger)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down server")
	cancelHub()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	return nil
}
