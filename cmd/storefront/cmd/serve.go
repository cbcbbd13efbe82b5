package cmd

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

	"github.com/clonecoding/storefront/internal/api"
	"github.com/clonecoding/storefront/internal/config"
	"github.com/clonecoding/storefront/internal/repository"
	"github.com/clonecoding/storefront/internal/repository/memory"
	"github.com/clonecoding/storefront/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the catalog and comment HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to run the server on")
	serveCmd.Flags().String("host", "0.0.0.0", "Host to bind the server to")
	_ = viper.BindPFlag(config.KeyPort, serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag(config.KeyHost, serveCmd.Flags().Lookup("host"))
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	db, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = db.Shutdown(ctx) }()

	// Repositories
	productRepo := repository.NewProductRepository(db)
	var commentStore service.CommentStore = repository.NewCommentRepository(db)
	if cfg.CommentStore == config.CommentStoreMemory {
		commentStore = memory.NewCommentStore()
	}

	// Services
	productSvc := service.NewProductService(productRepo)
	commentSvc := service.NewCommentService(commentStore)

	// Handler
	handler := api.NewHandler(productSvc, commentSvc)

	srv := &http.Server{
		Addr:           cfg.Addr(),
		Handler:        handler.Router(api.LimitsFrom(cfg)),
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   cfg.HTTPTimeout + 5*time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1048576,
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "comment_store", cfg.CommentStore)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
