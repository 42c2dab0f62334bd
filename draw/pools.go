// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"encoding/json"
	"errors"
)

// Draw and season years baked into every query. The loader must keep the
// database in sync with these.
const (
	DrawYear   = 2025
	SeasonYear = 2026
)

// Pool is an applicant category with its own application and license quotas.
type Pool string

const (
	PoolResident    Pool = "resident"
	PoolNonresident Pool = "nonresident"
	PoolOutfitter   Pool = "outfitter"
)

// DefaultPool is used when a request omits the pool.
const DefaultPool = PoolResident

var (
	ErrInvalidPool      = errors.New("Invalid pool")
	ErrSpeciesRequired  = errors.New("species_code is required")
	ErrGMURequired      = errors.New("gmu is required")
	ErrChoiceCount      = errors.New("Exactly three choices are required")
	ErrUnknownPoolQuery = errors.New("no query template for pool")
)

type poolConfig struct {
	applicationsCol string
	licensesCol     string
	label           string
}

var poolConfigs = map[Pool]poolConfig{
	PoolResident: {
		applicationsCol: "resident_applications",
		licensesCol:     "resident_licenses",
		label:           "Resident",
	},
	PoolNonresident: {
		applicationsCol: "nonresident_applications",
		licensesCol:     "nonresident_licenses",
		label:           "Nonresident",
	},
	PoolOutfitter: {
		applicationsCol: "outfitter_applications",
		licensesCol:     "outfitter_licenses",
		label:           "Outfitter",
	},
}

// Pools lists every pool in display order.
var Pools = []Pool{PoolResident, PoolNonresident, PoolOutfitter}

// ParsePool validates a pool name. The empty name is not a pool.
func ParsePool(s string) (Pool, error) {
	p := Pool(s)
	if _, ok := poolConfigs[p]; !ok {
		return "", ErrInvalidPool
	}
	return p, nil
}

// ParsePoolParam validates a pool query parameter. DefaultPool is used only
// when the parameter is absent; "?pool=" is invalid.
func ParsePoolParam(value string, present bool) (Pool, error) {
	if !present {
		return DefaultPool, nil
	}
	return ParsePool(value)
}

// ParsePoolJSON validates the raw "pool" member of a request body. An
// absent member selects DefaultPool; null, "" and non-strings are invalid.
func ParsePoolJSON(raw json.RawMessage) (Pool, error) {
	if len(raw) == 0 {
		return DefaultPool, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", ErrInvalidPool
	}
	return ParsePool(s)
}

// Label returns the display label, e.g. "Nonresident".
func (p Pool) Label() string {
	return poolConfigs[p].label
}

// Valid reports whether p is one of the known pools.
func (p Pool) Valid() bool {
	_, ok := poolConfigs[p]
	return ok
}

// weaponDigits maps a weapon name to the digit embedded in hunt codes.
var weaponDigits = map[string]string{
	"rifle":        "1",
	"archery":      "2",
	"muzzleloader": "3",
}

// WeaponDigit returns the hunt code digit for a weapon. ok is false for
// "all" and any unrecognized value, which means no weapon filter applies.
func WeaponDigit(weapon string) (digit string, ok bool) {
	digit, ok = weaponDigits[weapon]
	return digit, ok
}

// WeaponFilter returns the hunt code predicate and its parameter for a
// weapon, or ok=false when the weapon does not restrict the results.
func WeaponFilter(weapon string) (clause string, param string, ok bool) {
	digit, ok := WeaponDigit(weapon)
	if !ok {
		return "", "", false
	}
	return "h.hunt_code LIKE ?", "%-" + digit + "-%", true
}
