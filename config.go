package kdtree

import (
	"fmt"
	"log"
	"runtime"
)

// Config controls tree-wide defaults. Start with [DefaultConfig] and
// override the fields you need.
type Config struct {
	// Metric is the distance used by FindClosest and PopClosest when no
	// metric is given per call. Built-in: EuclideanMetric, ManhattanMetric,
	// ChebyshevMetric. Default: EuclideanMetric.
	Metric Metric

	// Workers controls the number of goroutines FindClosestBatch uses when
	// the caller passes workers <= 0. 0 means use runtime.NumCPU().
	// Must be >= 0. Default: 0 (auto).
	Workers int

	// Logger receives one line per Rebalance. nil disables logging.
	Logger *log.Logger
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Metric: EuclideanMetric{},
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	switch cfg.Metric.(type) {
	case EuclideanMetric, ManhattanMetric, ChebyshevMetric:
		// valid
	default:
		return fmt.Errorf("kdtree: unsupported Metric %T", cfg.Metric)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("kdtree: Workers must be >= 0 (0 means runtime.NumCPU()), got %d", cfg.Workers)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// logf writes to the configured logger, if any.
func (c *Config) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
