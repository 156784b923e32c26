package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Eran2001/store-pro-e-commerce-store-web-service/internal/auth"
	"github.com/Eran2001/store-pro-e-commerce-store-web-service/internal/cart"
	"github.com/Eran2001/store-pro-e-commerce-store-web-service/internal/catalog"
	"github.com/Eran2001/store-pro-e-commerce-store-web-service/internal/checkout"
	"github.com/Eran2001/store-pro-e-commerce-store-web-service/internal/config"
	httpserver "github.com/Eran2001/store-pro-e-commerce-store-web-service/internal/http"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lshortfile)

	handler := httpserver.NewHandler(
		catalog.NewDefault(),
		cart.NewStore(),
		auth.NewService(cfg.AuthDelay),
		checkout.NewService(cfg.CheckoutDelay),
	)
	router := httpserver.NewRouter(handler, logger, cfg.CORSAllowOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("storefront listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Printf("shutdown signal received")
	case err := <-errCh:
		logger.Fatalf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
}
