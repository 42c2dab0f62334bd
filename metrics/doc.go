// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus metrics for the API server on its own
// registry. A nil *Metrics is valid and records nothing.
package metrics
