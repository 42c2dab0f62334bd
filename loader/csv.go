// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jszwec/csvutil"
)

var (
	ErrMissingFile    = errors.New("CSV not found")
	ErrMissingColumns = errors.New("CSV missing columns")
)

// readCSV decodes every row of a headered CSV file into T after checking
// that all required columns are present. Extra columns are ignored.
func readCSV[T any](path string, required []string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return decodeCSV[T](f, filepath.Base(path), required)
}

func decodeCSV[T any](r io.Reader, name string, required []string) ([]T, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	dec, err := csvutil.NewDecoder(cr)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s is empty, need %s", ErrMissingColumns, name, strings.Join(required, ", "))
		}
		return nil, fmt.Errorf("failed to read %s header: %w", name, err)
	}

	header := dec.Header()
	slog.Info("CSV columns", "file", name, "columns", header)

	if missing := missingColumns(header, required); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s missing %s", ErrMissingColumns, name, strings.Join(missing, ", "))
	}

	var rows []T
	for {
		var row T
		if err := dec.Decode(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to decode %s: %w", name, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func missingColumns(header, required []string) []string {
	var missing []string
	for _, col := range required {
		if !slices.Contains(header, col) {
			missing = append(missing, col)
		}
	}
	slices.Sort(missing)
	return missing
}
