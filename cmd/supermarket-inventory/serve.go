package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/freshmart/supermarket-inventory/internal/api/handlers"
	"github.com/freshmart/supermarket-inventory/internal/api/middleware"
	"github.com/freshmart/supermarket-inventory/internal/health"
	"github.com/freshmart/supermarket-inventory/internal/metrics"
	repository "github.com/freshmart/supermarket-inventory/internal/repositories"
	service "github.com/freshmart/supermarket-inventory/internal/services"
	"github.com/freshmart/supermarket-inventory/internal/web"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		return err
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("database connection closed")
		}
	}()

	templates, err := web.New()
	if err != nil {
		return err
	}

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		return err
	}

	categoryService := service.NewCategoryService(repos.Category, repos.Item)
	itemService := service.NewItemService(repos.Item, repos.Category)

	homeHandler := handlers.NewHomeHandler(categoryService, templates)
	categoryHandler := handlers.NewCategoryHandler(categoryService, templates)
	itemHandler := handlers.NewItemHandler(itemService, templates)

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /{$}", homeHandler.Home())
	routerMux.HandleFunc("GET /categories", categoryHandler.List())
	routerMux.HandleFunc("GET /categories/new", categoryHandler.NewForm())
	routerMux.HandleFunc("GET /categories/{id}", categoryHandler.Get())
	routerMux.HandleFunc("POST /categories", categoryHandler.Create())
	routerMux.HandleFunc("PUT /categories/{id}", categoryHandler.Update())
	routerMux.HandleFunc("DELETE /categories/{id}", categoryHandler.Delete())
	routerMux.HandleFunc("GET /items", itemHandler.List())
	routerMux.HandleFunc("GET /items/new", itemHandler.NewForm())
	routerMux.HandleFunc("GET /items/{id}", itemHandler.Get())
	routerMux.HandleFunc("GET /items/{id}/edit", itemHandler.EditForm())
	routerMux.HandleFunc("POST /items", itemHandler.Create())
	routerMux.HandleFunc("PUT /items/{id}", itemHandler.Update())
	routerMux.HandleFunc("DELETE /items/{id}", itemHandler.Delete())
	routerMux.Handle("GET /css/", web.Static())
	routerMux.Handle("GET /images/", web.Static())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Default page for every unmatched route
	routerMux.HandleFunc("/", handlers.NotFoundPage(templates))

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Recover(templates)(handler)
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = middleware.MethodOverride(handler)

	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("server is starting", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("shutdown signal received, stopping the server")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown encountered an issue", slog.String("error", err.Error()))

		return err
	}

	slog.Info("server shut down gracefully, all connections closed")

	return nil
}
