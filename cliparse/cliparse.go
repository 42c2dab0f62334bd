package cliparse

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort         = 5000
	DefaultDatabasePath = "nm_hunts.db"
	DefaultStaticDir    = "static"
	DefaultDataDir      = "data"
)

type Config struct {
	Port         int
	DatabasePath string
	StaticDir    string
}

type LoaderConfig struct {
	DatabasePath string
	DataDir      string
	Seed         bool
	InitSchema   bool
}

// LoadDotEnv reads a .env file into the environment when one exists.
// Variables already set win over the file.
func LoadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		slog.Warn("failed to load env file", "path", path, "error", err)
	}
}

// ParseFlags validates server flags and fills in env fallbacks and defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("nm-draw-odds", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabasePath, "d", "", "SQLite database path")
	fs.StringVar(&cfg.StaticDir, "s", "", "Static files directory")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := envInt("PORT", DefaultPort)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, errors.New("port must be between 1 and 65535")
	}

	cfg.DatabasePath = firstNonEmpty(cfg.DatabasePath, os.Getenv("DATABASE_PATH"), DefaultDatabasePath)
	cfg.StaticDir = firstNonEmpty(cfg.StaticDir, os.Getenv("STATIC_DIR"), DefaultStaticDir)

	return cfg, nil
}

// ParseLoaderFlags parses flags for the CSV loader.
func ParseLoaderFlags(args []string) (LoaderConfig, error) {
	var cfg LoaderConfig

	fs := flag.NewFlagSet("nm-draw-loader", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", "", "SQLite database path")
	fs.StringVar(&cfg.DataDir, "data", "", "Directory holding the CSV snapshots")
	fs.BoolVar(&cfg.Seed, "seed", false, "Upsert the bundled species and bag limit lookups first")
	fs.BoolVar(&cfg.InitSchema, "init", false, "Create tables and views before loading")

	if err := fs.Parse(args); err != nil {
		return LoaderConfig{}, err
	}

	cfg.DatabasePath = firstNonEmpty(cfg.DatabasePath, os.Getenv("DATABASE_PATH"), DefaultDatabasePath)
	cfg.DataDir = firstNonEmpty(cfg.DataDir, os.Getenv("DATA_DIR"), DefaultDataDir)

	return cfg, nil
}

func envInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("invalid " + key + " env variable")
	}
	return n, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
