package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/cenkalti/backoff/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"startconnect/internal/config"
)

const applicationName = "startconnect-api"

var (
	sqlOpen = sql.Open

	// the API usually starts alongside the database container
	connectTries   uint = 6
	connectBackOff      = func() backoff.BackOff {
		b := backoff.NewExponentialBackOff()
		b.InitialInterval = 500 * time.Millisecond
		b.MaxInterval = 5 * time.Second
		return b
	}
)

// BuildPostgresDSN renders c as a postgres:// URL. Host, port, user and
// database name are required.
func BuildPostgresDSN(c config.DatabaseConfig) (string, error) {
	var missing []string
	for _, f := range []struct{ name, val string }{
		{"host", c.Host}, {"port", c.Port}, {"user", c.User}, {"name", c.Name},
	} {
		if f.val == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("invalid database config: missing %v", missing)
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   c.Host + ":" + c.Port,
		Path:   c.Name,
		User:   url.User(c.User),
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}

	q := url.Values{}
	q.Set("application_name", applicationName)
	q.Set("connect_timeout", "5")
	if c.SSLMode != "" {
		q.Set("sslmode", c.SSLMode)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// NewPostgres opens a pooled database/sql handle over the pgx driver, traced
// by otelsql, and waits until the server answers a ping.
func NewPostgres(ctx context.Context, c config.DatabaseConfig, log logrus.FieldLogger) (*sql.DB, error) {
	dsn, err := BuildPostgresDSN(c)
	if err != nil {
		return nil, err
	}

	driverName, err := otelsql.Register("pgx",
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL, semconv.DBName(c.Name)),
		otelsql.WithSQLCommenter(true),
	)
	if err != nil {
		return nil, fmt.Errorf("register otelsql: %w", err)
	}

	db, err := sqlOpen(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	applyPool(db, c)

	if err := waitForPing(ctx, db, c.Host, log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func applyPool(db *sql.DB, c config.DatabaseConfig) {
	if c.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxIdleConns > 0 {
		db.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.ConnMaxLifetimeSec > 0 {
		db.SetConnMaxLifetime(time.Duration(c.ConnMaxLifetimeSec) * time.Second)
	}
}

func waitForPing(ctx context.Context, db *sql.DB, host string, log logrus.FieldLogger) error {
	ping := func() (struct{}, error) {
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		err := db.PingContext(pctx)
		if errors.Is(err, context.Canceled) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	}

	_, err := backoff.Retry(ctx, ping,
		backoff.WithBackOff(connectBackOff()),
		backoff.WithMaxTries(connectTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.WithError(err).WithFields(logrus.Fields{
				"db_host": host,
				"retry":   next.String(),
			}).Warn("database not ready")
		}),
	)
	return err
}

// RegisterPoolMetrics exposes database/sql pool statistics to Prometheus.
func RegisterPoolMetrics(reg prometheus.Registerer, db *sql.DB, name string) error {
	if err := reg.Register(collectors.NewDBStatsCollector(db, name)); err != nil {
		return fmt.Errorf("register db stats collector: %w", err)
	}
	return nil
}
