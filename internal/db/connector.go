package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vvka-141/marsquake/internal/retry"
	"github.com/vvka-141/marsquake/pkg/catalog"
)

// Connection pool configuration constants
const (
	// DefaultMaxConns limits concurrent connections during export.
	DefaultMaxConns = 5

	// DefaultMinConns maintains at least one connection in the pool.
	DefaultMinConns = 1

	// DefaultMaxConnIdleTime keeps connections alive across batched
	// inserts to avoid reconnection overhead.
	DefaultMaxConnIdleTime = 30 * time.Minute
)

// Retry defaults for transient connection failures.
const (
	DefaultRetryMaxAttempts  = 3
	DefaultRetryInitialDelay = 500 * time.Millisecond
	DefaultRetryMaxDelay     = 10 * time.Second
)

func configurePool(poolConfig *pgxpool.Config) {
	poolConfig.MaxConns = DefaultMaxConns
	poolConfig.MinConns = DefaultMinConns
	poolConfig.MaxConnIdleTime = DefaultMaxConnIdleTime
}

// Connector establishes connection pools against the export database.
type Connector struct {
	connStr       string
	retryExecutor *retry.Executor
}

// NewConnector creates a connector for the given PostgreSQL URI.
// Transient failures are retried with exponential backoff.
func NewConnector(connStr string) *Connector {
	classifier := retry.NewPostgreSQLErrorClassifier()
	strategy := retry.NewExponentialBackoff(DefaultRetryMaxAttempts,
		retry.WithInitialDelay(DefaultRetryInitialDelay),
		retry.WithMaxDelay(DefaultRetryMaxDelay),
	)

	return &Connector{
		connStr:       connStr,
		retryExecutor: retry.NewExecutor(classifier, strategy),
	}
}

// Connect establishes a connection pool and verifies it with a ping.
func (c *Connector) Connect(ctx context.Context) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool

	err := c.retryExecutor.Execute(ctx, func(ctx context.Context) error {
		poolConfig, err := pgxpool.ParseConfig(c.connStr)
		if err != nil {
			return fmt.Errorf("failed to parse connection config: %w", err)
		}

		configurePool(poolConfig)

		pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return wrapConnectionError(err, poolConfig.ConnConfig.Host, int(poolConfig.ConnConfig.Port))
		}

		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return wrapConnectionError(err, poolConfig.ConnConfig.Host, int(poolConfig.ConnConfig.Port))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return pool, nil
}

// wrapConnectionError wraps raw pgx connection errors with actionable
// guidance and the connection-failed classification.
func wrapConnectionError(err error, host string, port int) error {
	errStr := strings.ToLower(err.Error())
	addr := fmt.Sprintf("%s:%d", host, port)

	switch {
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "actively refused"):
		return fmt.Errorf(`connection refused to %s

Possible causes:
  - PostgreSQL is not running (check: pg_isready -h %s -p %d)
  - Wrong host or port
  - Firewall blocking the connection

Original error: %v: %w`, addr, host, port, err, catalog.ErrConnectionFailed)

	case strings.Contains(errStr, "no such host") || strings.Contains(errStr, "no host"):
		return fmt.Errorf(`cannot resolve host "%s"

Possible causes:
  - Hostname is misspelled
  - DNS is not configured or reachable

Original error: %v: %w`, host, err, catalog.ErrConnectionFailed)

	case strings.Contains(errStr, "password authentication failed"):
		return fmt.Errorf(`password authentication failed

Possible causes:
  - Wrong password (check $PGPASSWORD or ~/.pgpass)
  - Wrong username
  - User does not have access to the database

Original error: %v: %w`, err, catalog.ErrConnectionFailed)

	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "timed out"):
		return fmt.Errorf(`connection timed out to %s

Possible causes:
  - Server is overloaded or unresponsive
  - Network latency or packet loss
  - Wrong host/port (server not listening)

Original error: %v: %w`, addr, err, catalog.ErrConnectionFailed)

	default:
		return fmt.Errorf("failed to connect to database: %v: %w", err, catalog.ErrConnectionFailed)
	}
}
