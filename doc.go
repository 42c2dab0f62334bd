// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the NM draw odds API server.

The server answers questions about New Mexico big-game draws from a
SQLite database: draw odds per hunt, the best hunts to apply for, and
whether a three-choice application is ordered sensibly.

# Starting the Server

	go run . -d nm_hunts.db

Or with environment variables (a .env file is read if present):

	DATABASE_PATH=nm_hunts.db PORT=5000 go run .

The database is opened read-only. Fill it with the loader first:

	go run ./cmd/loader -init -seed -d nm_hunts.db -data data

# Configuration

  - PORT (-p): Server port (default: 5000)
  - DATABASE_PATH (-d): SQLite file (default: nm_hunts.db)
  - STATIC_DIR (-s): Frontend files served at / (default: static)

# Architecture

  - draw: pools, query templates, odds, notes and application plans
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: request IDs, logging, metrics, CORS, JSON helpers
  - metrics: Prometheus collectors
  - models: Request/response types
  - db: Open, schema and lookup seed
  - loader: CSV to SQLite batch load (cmd/loader)
  - cliparse: Configuration parsing

Draw year 2025 and season year 2026 are fixed in package draw.
*/
package main
