// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Mode selects how Open attaches to the database file.
type Mode int

const (
	// ReadOnly is used by the API server; it never writes.
	ReadOnly Mode = iota
	// ReadWrite is used by the loader and creates the file if needed.
	ReadWrite
)

// DSN builds a modernc.org/sqlite connection string for path.
func DSN(path string, mode Mode) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	if mode == ReadOnly {
		q.Set("mode", "ro")
	} else {
		q.Set("mode", "rwc")
	}
	return "file:" + path + "?" + q.Encode()
}

// Open opens and pings the SQLite database at path.
func Open(ctx context.Context, path string, mode Mode) (*sql.DB, error) {
	conn, err := sql.Open(DriverName, DSN(path, mode))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if mode == ReadWrite {
		// one writer at a time
		conn.SetMaxOpenConns(1)
	}
	conn.SetConnMaxIdleTime(5 * time.Minute)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}
