package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

//go:embed migrations/*/*.sql
var migrationsFS embed.FS

// Connect opens a connection pool for driver, verifies it with a ping and
// brings the schema up to date.
func Connect(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	var (
		conn *sql.DB
		err  error
	)

	switch driver {
	case DriverMySQL:
		conn, err = openMySQL(dsn)
	case DriverSQLite:
		conn, err = openSQLite(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
	if err != nil {
		return nil, err
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	if err := Migrate(ctx, conn, driver); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

func openMySQL(dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	// timestamps are scanned into time.Time and stored as UTC
	cfg.ParseTime = true
	cfg.Loc = time.UTC

	conn, err := sql.Open(DriverMySQL, cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	conn.SetConnMaxLifetime(3 * time.Minute)
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(10)
	return conn, nil
}

func openSQLite(dsn string) (*sql.DB, error) {
	conn, err := sql.Open(DriverSQLite, sqliteDSN(dsn))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer at a time, and an in-memory database lives in a single connection
	conn.SetMaxOpenConns(1)
	return conn, nil
}

// sqliteDSN adds the foreign_keys pragma to dsn so the driver applies it to
// every connection it opens.
func sqliteDSN(dsn string) string {
	const fkPragma = "_pragma=foreign_keys(1)"
	if strings.Contains(dsn, fkPragma) {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + fkPragma
	}
	return dsn + "?" + fkPragma
}

// Migrate applies the embedded goose migrations for driver.
func Migrate(ctx context.Context, conn *sql.DB, driver string) error {
	dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, conn, "migrations/"+driver); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func gooseDialect(driver string) (string, error) {
	switch driver {
	case DriverMySQL:
		return "mysql", nil
	case DriverSQLite:
		return "sqlite3", nil
	}
	return "", fmt.Errorf("unsupported db driver %q", driver)
}

// gooseLogger routes goose output through slog at debug level.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...any) {
	slog.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
}

func (gooseLogger) Fatalf(format string, v ...any) {
	slog.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
}
