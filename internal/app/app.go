// Package app wires the core, the display host and the HTTP transport into
// one runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"ctchen222/BoardGameKit/internal/api/controller"
	"ctchen222/BoardGameKit/internal/binding"
	"ctchen222/BoardGameKit/internal/config"
	"ctchen222/BoardGameKit/internal/display"
	"ctchen222/BoardGameKit/internal/server"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	Config     *config.Config
	Screen     *display.Screen
	Registry   *binding.Registry
	Menu       *binding.Menu
	Dispatcher *binding.Dispatcher
	Server     *server.Server
}

// Games returns the registry entries offered on the menu, in button order.
func Games(screen *display.Screen, cfg *config.Config) []binding.Entry {
	return []binding.Entry{
		{
			ID:    "tictactoe",
			Title: "Tic Tac Toe",
			NewPane: func() binding.GamePane {
				return binding.NewTicTacToe(screen, cfg.Starting())
			},
		},
	}
}

// New builds the application. The registry is frozen before New returns.
func New(cfg *config.Config, terminator binding.Terminator) (*App, error) {
	screen := display.NewScreen()

	registry, err := binding.NewRegistry(Games(screen, cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to build game registry: %w", err)
	}
	registry.Freeze()

	menu := binding.NewMenu(registry, screen)
	dispatcher := binding.NewDispatcher(menu, terminator)
	ctrl := controller.NewScreenController(dispatcher, screen, registry)
	srv := server.NewServer(ctrl, dispatcher, screen, cfg.WebDir)

	return &App{
		Config:     cfg,
		Screen:     screen,
		Registry:   registry,
		Menu:       menu,
		Dispatcher: dispatcher,
		Server:     srv,
	}, nil
}

// Run serves HTTP and handles events until ctx is cancelled, then shuts the
// HTTP server down gracefully.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.Dispatcher.Run(ctx)
	}()

	httpServer := &http.Server{
		Addr:    a.Config.HTTPAddr,
		Handler: a.Server.Engine(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "http server started", "http.addr", a.Config.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			runErr = fmt.Errorf("http server: %w", err)
		}
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("server forced to shutdown: %w", err))
	}

	stop()
	wg.Wait()
	return runErr
}
