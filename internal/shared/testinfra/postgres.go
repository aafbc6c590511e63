//go:build integration
// +build integration

package testinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/paykit/checkout-gateway/internal/app"
	"github.com/paykit/checkout-gateway/pkg/postgres"
)

type PostgresContainer struct {
	Container *tcpostgres.PostgresContainer
	DSN       string
	Pool      *postgres.Postgres
}

// NewPostgres starts a disposable database with the gateway schema applied.
func NewPostgres(ctx context.Context) (*PostgresContainer, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("checkout_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("secret"),
		testcontainers.WithWaitStrategy(
			wait.ForSQL("5432/tcp", "postgres",
				func(host string, port nat.Port) string {
					return fmt.Sprintf("postgres://postgres:secret@%s:%s/checkout_test?sslmode=disable", host, port.Port())
				},
			).WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("resolve connection string: %w", err)
	}

	if err := app.ApplyMigrations(dsn, app.MigrationFS); err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	pool, err := postgres.New(dsn, postgres.MaxPoolSize(10))
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("create pool: %w", err)
	}

	return &PostgresContainer{Container: container, DSN: dsn, Pool: pool}, nil
}

func (c *PostgresContainer) Cleanup(ctx context.Context) {
	if c.Pool != nil {
		c.Pool.Close()
	}
	if c.Container != nil {
		_ = c.Container.Terminate(ctx)
	}
}
