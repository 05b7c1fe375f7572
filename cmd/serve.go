package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/franciscosanchezn/bistro-boss-api/internal/auth"
	"github.com/franciscosanchezn/bistro-boss-api/internal/cache"
	"github.com/franciscosanchezn/bistro-boss-api/internal/config"
	"github.com/franciscosanchezn/bistro-boss-api/internal/payments"
	"github.com/franciscosanchezn/bistro-boss-api/internal/router"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.LoadConfig()
		if err != nil {
			return err
		}
		return serve(cmd.Context(), conf)
	},
}

func serve(ctx context.Context, conf *config.Config) error {
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := openStore(ctx, conf)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	// a nil cache reads straight from the store
	var c *cache.Client
	if conf.RedisAddr != "" {
		c = cache.New(conf.RedisAddr, conf.RedisPassword, conf.RedisDB, conf.CacheTTL, log.StandardLogger())
		if err := c.Ping(ctx); err != nil {
			log.WithError(err).Warn("Cache unreachable, reads will go to the store")
		}
	}

	var processor payments.Processor = payments.Unconfigured{}
	if conf.PaymentSecretKey != "" {
		processor = payments.NewStripeProcessor(conf.PaymentSecretKey)
	} else {
		log.Warn("PAYMENT_SECRET_KEY not set, payment intents will fail")
	}

	engine := router.Setup(router.Dependencies{
		Store:     s,
		Cache:     c,
		Tokens:    auth.NewTokenService(conf.TokenSecret, conf.TokenTTL),
		Processor: processor,
		Currency:  conf.PaymentCurrency,
		Logger:    log.StandardLogger(),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%v:%d", conf.Host, conf.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s:%d", conf.Host, conf.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			closeResources(s, c)
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		log.Info("Shutdown signal received, draining connections")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown did not complete")
	}
	closeResources(s, c)
	log.Info("Server stopped")
	return nil
}

type closer interface {
	Close(ctx context.Context) error
}

func closeResources(s closer, c *cache.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Close(ctx); err != nil {
		log.WithError(err).Warn("Failed to close store")
	}
	if err := c.Close(); err != nil {
		log.WithError(err).Warn("Failed to close cache")
	}
}
