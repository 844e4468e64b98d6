package main

import (
	"context"
	"embed"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/patrol-server/internal/config"
	"github.com/vancomm/patrol-server/internal/database"
	"github.com/vancomm/patrol-server/internal/middleware"
	"github.com/vancomm/patrol-server/internal/repository"
)

//go:embed migrations
var migrations embed.FS

func main() {
	var logger *slog.Logger
	if config.Development() {
		logger = slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}),
		)
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	db, err := database.ConnectAndMigrate(ctx, migrations)
	if err != nil {
		logger.Error("failed to connect and migrate db", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ws, err := config.NewWebSocket()
	if err != nil {
		logger.Error("failed to read ws config", "error", err)
		os.Exit(1)
	}

	jwt, err := config.NewJWT()
	if err != nil {
		logger.Error("failed to read jwt config", "error", err)
		os.Exit(1)
	}

	app := &application{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
		jwt:    jwt,
	}

	addr := config.Addr()
	server := &http.Server{
		Addr: addr,
		Handler: middleware.Wrap(
			app.ServeMux(),
			middleware.Auth(logger, jwt),
			middleware.Cors(),
			middleware.Logging(logger),
		),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	logger.Info("patrol server online", slog.String("addr", addr))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe()
	})
	g.Go(func() error {
		<-gCtx.Done()
		return server.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		logger.Info("exit", "reason", err)
	}
}
