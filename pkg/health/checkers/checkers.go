// Package checkers provides the dependency probes wired into the
// health service.
package checkers

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const checkTimeout = time.Second

type PostgresChecker struct {
	pool *pgxpool.Pool
}

func NewPostgresChecker(pool *pgxpool.Pool) *PostgresChecker {
	return &PostgresChecker{pool: pool}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	return c.pool.Ping(ctx)
}

type RedisChecker struct {
	client *redis.Client
}

func NewRedisChecker(client *redis.Client) *RedisChecker {
	return &RedisChecker{client: client}
}

func (c *RedisChecker) Name() string { return "redis" }

func (c *RedisChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	return c.client.Ping(ctx).Err()
}

// AIChecker reports whether an AI credential is configured. It never
// talks to the network.
type AIChecker struct {
	configured bool
}

func NewAIChecker(configured bool) *AIChecker { return &AIChecker{configured: configured} }

func (c *AIChecker) Name() string { return "ai_service" }

func (c *AIChecker) Check(context.Context) error {
	if !c.configured {
		return errors.New("not_configured")
	}
	return nil
}
