package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.DataDir) == "" {
		return fmt.Errorf("server: data_dir is required")
	}

	if err := c.Dictionary.validate(c.Database); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}

	if err := c.Engine.validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	if c.Importer.BatchSize < 1 {
		return fmt.Errorf("importer: batch_size must be >= 1 (got %d)", c.Importer.BatchSize)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log: format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (d *DictionaryConfig) validate(db DatabaseConfig) error {
	switch d.Driver {
	case DriverSQLite:
		if strings.TrimSpace(d.Path) == "" {
			return fmt.Errorf("path is required for the sqlite driver")
		}
	case DriverPostgres:
		if strings.TrimSpace(db.DSN) == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
	case DriverNone:
	default:
		return fmt.Errorf("unknown driver %q (want sqlite, postgres or none)", d.Driver)
	}

	if d.BatchCapacity < 1 {
		return fmt.Errorf("batch_capacity must be >= 1 (got %d)", d.BatchCapacity)
	}
	if d.BatchWait < 0 {
		return fmt.Errorf("batch_wait must be >= 0 (got %v)", d.BatchWait)
	}
	return nil
}

func (e *EngineConfig) validate() error {
	if e.BNCThreshold < 1 {
		return fmt.Errorf("bnc_threshold must be >= 1 (got %d)", e.BNCThreshold)
	}
	if e.FRQThreshold < 1 {
		return fmt.Errorf("frq_threshold must be >= 1 (got %d)", e.FRQThreshold)
	}
	if e.LoadConcurrency < 1 {
		return fmt.Errorf("load_concurrency must be >= 1 (got %d)", e.LoadConcurrency)
	}
	return nil
}
