// Package app assembles the checkout gateway and runs it until shutdown.
package app

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/paykit/checkout-gateway/config"
	"github.com/paykit/checkout-gateway/internal/analytics"
	"github.com/paykit/checkout-gateway/internal/auth"
	v1 "github.com/paykit/checkout-gateway/internal/controller/http/v1"
	"github.com/paykit/checkout-gateway/internal/domain/checkout"
	"github.com/paykit/checkout-gateway/internal/domain/walletauth"
	"github.com/paykit/checkout-gateway/internal/external/kafka"
	"github.com/paykit/checkout-gateway/internal/external/opensearch"
	"github.com/paykit/checkout-gateway/internal/external/paymentsapi"
	"github.com/paykit/checkout-gateway/internal/external/walletapi"
	"github.com/paykit/checkout-gateway/internal/repo/eventsink"
	"github.com/paykit/checkout-gateway/internal/repo/kvstore"
	"github.com/paykit/checkout-gateway/internal/session"
	"github.com/paykit/checkout-gateway/pkg/logger"
	"github.com/paykit/checkout-gateway/pkg/postgres"
)

//go:embed migrations/*.sql
var MigrationFS embed.FS

const shutdownTimeout = 10 * time.Second

func Run(cfg config.Config) error {
	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := ApplyMigrations(cfg.PgURL, MigrationFS); err != nil {
		return fmt.Errorf("app - Run - ApplyMigrations: %w", err)
	}

	pg, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		return fmt.Errorf("app - Run - postgres.New: %w", err)
	}
	defer pg.Close()

	kv := kvstore.NewPgKVStore(pg)
	sink := eventsink.NewPgEventSink(pg)

	walletClient := walletapi.NewClient(walletapi.Config{
		BaseURL: cfg.WalletBaseURL,
		Timeout: cfg.HTTPWalletTimeout,
	}, log)
	loginService := walletauth.NewService(walletClient, walletauth.SupportedStatesProvider{}, walletauth.Config{
		InstanceName: cfg.WalletInstanceName,
		MaxRetries:   cfg.WalletLoginMaxRetries,
	}, log)
	authService := auth.NewService(kv, loginService, auth.Config{ShopKey: cfg.ShopKey}, log)

	paymentsClient := paymentsapi.NewClient(paymentsapi.Config{
		BaseURL:   cfg.PaymentsBaseURL,
		ShopKey:   cfg.ShopKey,
		GatewayID: cfg.GatewayID,
		Timeout:   cfg.HTTPPaymentsTimeout,
	}, log)

	analyticsSink, closeSink, err := newAnalyticsSink(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("app - Run - newAnalyticsSink: %w", err)
	}
	defer closeSink()
	dispatcher := analytics.NewDispatcher(analyticsSink, cfg.AnalyticsBufferSize, log)

	// evicting an idle session also drops its tokens from the kv store
	registry := session.NewRegistry(cfg.SessionTTL, cfg.SessionSweepInterval,
		func(ctx context.Context, sessionID string) {
			if err := authService.Logout(ctx, sessionID); err != nil {
				log.WarnContext(ctx, "drop credentials of evicted session",
					"session_id", sessionID, "error", err)
			}
		}, log)

	deps := checkout.Deps{
		Tokenizer:  paymentsClient,
		Options:    paymentsClient,
		Authorizer: authService,
		Sink:       sink,
		Tracker:    dispatcher,
		Log:        log,
	}
	handler := v1.NewCheckoutHandler(registry, deps, authService, cfg.ReturnURL, log)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	v1.NewRouter(engine, handler, log)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return dispatcher.Run(gctx)
	})
	g.Go(func() error {
		return registry.Run(gctx)
	})
	g.Go(func() error {
		log.Info("checkout gateway listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newAnalyticsSink builds the sink selected by AnalyticsMode plus a cleanup
// for its underlying connection.
func newAnalyticsSink(ctx context.Context, cfg config.Config, log *slog.Logger) (analytics.Sink, func(), error) {
	switch cfg.AnalyticsMode {
	case "kafka":
		publisher := kafka.NewAnalyticsPublisher(cfg.KafkaBrokers, cfg.KafkaAnalyticsTopic, log)
		return publisher, func() {
			if err := publisher.Close(); err != nil {
				log.Error("close analytics publisher", "error", err)
			}
		}, nil
	case "opensearch":
		sink, err := opensearch.NewAnalyticsSink(cfg.OpensearchURLs, cfg.OpensearchIndexName, log)
		if err != nil {
			return nil, nil, err
		}
		if err := sink.EnsureIndex(ctx); err != nil {
			return nil, nil, err
		}
		return sink, func() {}, nil
	case "none", "":
		return analytics.NopSink{}, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown analytics mode %q", cfg.AnalyticsMode)
	}
}
