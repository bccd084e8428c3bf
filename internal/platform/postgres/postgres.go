package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Options tune the connection pool and instrumentation.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// Tracing registers the otelgorm plugin on the connection.
	Tracing bool
	// TraceQueryVariables includes bound values in spans.
	TraceQueryVariables bool
	LogLevel            gormlogger.LogLevel
}

// DefaultOptions returns pool settings suited to a small API process.
func DefaultOptions() Options {
	return Options{
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		Tracing:         true,
		LogLevel:        gormlogger.Warn,
	}
}

// Connect opens a PostgreSQL connection through lib/pq, wraps it in GORM and verifies connectivity.
func Connect(ctx context.Context, dsn string, opts Options) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, err
	}
	db, err := Open(sqlDB, opts)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Open wraps an existing database/sql handle in GORM using the PostgreSQL dialector.
func Open(sqlDB *sql.DB, opts Options) (*gorm.DB, error) {
	logLevel := opts.LogLevel
	if logLevel == 0 {
		logLevel = gormlogger.Warn
	}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB, DriverName: "postgres"}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}
	if opts.Tracing {
		if err := RegisterTracing(db, opts.TraceQueryVariables); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// RegisterTracing installs the otelgorm plugin so every statement produces a span.
func RegisterTracing(db *gorm.DB, withVariables bool) error {
	pluginOpts := []otelgorm.Option{otelgorm.WithDBName("postgres")}
	if !withVariables {
		pluginOpts = append(pluginOpts, otelgorm.WithoutQueryVariables())
	}
	return db.Use(otelgorm.NewPlugin(pluginOpts...))
}

// ConnectWithFallback dials PostgreSQL and returns the DB plus a cleanup function.
// An empty DSN or a failed connection is logged and yields a nil DB so callers use in-memory repositories.
func ConnectWithFallback(ctx context.Context, dsn string, opts Options, logger *slog.Logger) (*gorm.DB, func()) {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(dsn) == "" {
		logger.Warn("postgres DSN not set, falling back to in-memory repositories")
		return nil, func() {}
	}
	db, err := Connect(ctx, dsn, opts)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to in-memory repositories", slog.String("error", err.Error()))
		return nil, func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to in-memory repositories", slog.String("error", err.Error()))
		return nil, func() {}
	}
	logger.Info("postgres connection established")
	return db, func() { _ = sqlDB.Close() }
}
