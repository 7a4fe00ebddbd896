package db

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

// Config is the resolved connection configuration for a single operation.
// DSN carries the connection URL with its query string stripped; SSLMode is
// the effective SSL policy, spelled the way the caller supplied it.
type Config struct {
	DSN     string
	SSLMode string
}

// Resolve parses a Postgres URL and determines the effective SSL mode.
//
// Precedence: a non-empty sslSelector wins outright, then an sslmode query
// parameter embedded in the DSN, then "disable".
func Resolve(dsn string, sslSelector string) (Config, error) {
	parsed, err := url.Parse(dsn)
	if err != nil {
		return Config{}, &InvalidDSNError{DSN: dsn, Err: err}
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, &InvalidDSNError{DSN: dsn, Reason: "missing scheme or host"}
	}
	if parsed.User == nil || parsed.User.Username() == "" {
		return Config{}, &InvalidDSNError{DSN: dsn, Reason: "missing user"}
	}
	if strings.Trim(parsed.Path, "/") == "" {
		return Config{}, &InvalidDSNError{DSN: dsn, Reason: "missing database name"}
	}

	mode := strings.TrimSpace(sslSelector)
	if mode == "" {
		mode = strings.TrimSpace(parsed.Query().Get("sslmode"))
	}
	if mode == "" {
		mode = "disable"
	}

	// Drop the query string so the resolved policy is the only sslmode the
	// driver ever sees.
	base, _, _ := strings.Cut(dsn, "?")

	return Config{DSN: base, SSLMode: mode}, nil
}

// RequiresTLS reports whether the resolved policy asks for an encrypted
// connection. Anything other than disable means require.
func (c Config) RequiresTLS() bool {
	return !strings.EqualFold(c.SSLMode, "disable")
}

// ConnString returns the DSN handed to the driver, with the resolved SSL
// policy re-applied as an sslmode parameter.
func (c Config) ConnString() string {
	mode := "disable"
	if c.RequiresTLS() {
		mode = "require"
	}
	return c.DSN + "?sslmode=" + mode
}

// closeTimeout bounds connection teardown when the request context is gone.
const closeTimeout = 5 * time.Second

// WithConn opens exactly one connection, runs fn against it, and closes the
// connection on every exit path. There is no retry and no reuse: the console
// surfaces the database's immediate response, and nothing outlives one
// operation.
func WithConn(ctx context.Context, cfg Config, fn func(conn *pgx.Conn) error) error {
	connCfg, err := pgx.ParseConfig(cfg.ConnString())
	if err != nil {
		return &InvalidDSNError{DSN: cfg.DSN, Err: err}
	}

	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		return &ConnectError{Err: err}
	}

	return runWithClose(conn, func() error { return fn(conn) })
}

// runWithClose runs fn and releases the connection on every exit path. The
// request context may already be canceled by then, so teardown gets its own
// context.
func runWithClose(conn interface{ Close(context.Context) error }, fn func() error) error {
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		_ = conn.Close(closeCtx)
	}()
	return fn()
}
