// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed holds the canonical lookup rows hunts point at.
type Seed struct {
	Species   []SeedSpecies  `yaml:"species"`
	BagLimits []SeedBagLimit `yaml:"bag_limits"`
}

type SeedSpecies struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

type SeedBagLimit struct {
	Code       string `yaml:"code"`
	Label      string `yaml:"label"`
	Definition string `yaml:"definition"`
}

// ParseSeed decodes a seed document.
func ParseSeed(data []byte) (Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Seed{}, fmt.Errorf("failed to parse seed: %w", err)
	}
	for i, sp := range s.Species {
		if sp.Code == "" || sp.Name == "" {
			return Seed{}, fmt.Errorf("seed species %d: code and name are required", i)
		}
	}
	for i, bl := range s.BagLimits {
		if bl.Code == "" || bl.Label == "" {
			return Seed{}, fmt.Errorf("seed bag limit %d: code and label are required", i)
		}
	}
	return s, nil
}

// DefaultSeed returns the species and bag limits bundled with the binary.
func DefaultSeed() (Seed, error) {
	return ParseSeed(defaultSeed)
}

// ApplySeed upserts the seed rows by code. Existing ids are kept so hunts
// that reference them stay valid.
func ApplySeed(ctx context.Context, db *sql.DB, s Seed) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, sp := range s.Species {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO species (species_code, common_name)
			VALUES (?, ?)
			ON CONFLICT(species_code) DO UPDATE SET common_name = excluded.common_name
		`, sp.Code, sp.Name)
		if err != nil {
			return fmt.Errorf("failed to seed species %s: %w", sp.Code, err)
		}
	}

	for _, bl := range s.BagLimits {
		var def sql.NullString
		if bl.Definition != "" {
			def = sql.NullString{String: bl.Definition, Valid: true}
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO bag_limits (bag_code, label, plain_definition)
			VALUES (?, ?, ?)
			ON CONFLICT(bag_code) DO UPDATE SET
				label = excluded.label,
				plain_definition = excluded.plain_definition
		`, bl.Code, bl.Label, def)
		if err != nil {
			return fmt.Errorf("failed to seed bag limit %s: %w", bl.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}
