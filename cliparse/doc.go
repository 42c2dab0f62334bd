// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns the API server Config:

	cliparse.LoadDotEnv(".env")
	cfg, err := cliparse.ParseFlags(os.Args[1:])

ParseLoaderFlags returns the LoaderConfig for cmd/loader.

# Server Flags

	-p  Server port (default: 5000)
	-d  SQLite database path (default: nm_hunts.db)
	-s  Static files directory (default: static)

# Loader Flags

	-d     SQLite database path (default: nm_hunts.db)
	-data  CSV directory (default: data)
	-seed  Upsert bundled species and bag limits
	-init  Create the schema first

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_PATH → -d
	STATIC_DIR    → -s
	DATA_DIR      → -data

CLI flags take precedence over environment variables, which take
precedence over a .env file loaded with LoadDotEnv.
*/
package cliparse
