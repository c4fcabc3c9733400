// Package config loads tuning parameters for fill runs from JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// TuningConfig represents the root configuration for a fill run. Fields
// are pointers so that partial config files are safe: anything omitted
// from the JSON falls back to the defaults provided by the Get* methods.
type TuningConfig struct {
	// Grid params
	GridSize  *int   `json:"grid_size,omitempty"`
	BlockSize *int   `json:"block_size,omitempty"`
	Seed      *int64 `json:"seed,omitempty"`

	// Pool params
	Workers *int `json:"workers,omitempty"` // 0 means one worker per CPU

	// Output params
	DBPath  *string `json:"db_path,omitempty"`
	PlotDir *string `json:"plot_dir,omitempty"` // empty disables heatmap output
}

// Helper functions to create pointers
func ptrInt(v int) *int          { return &v }
func ptrInt64(v int64) *int64    { return &v }
func ptrString(v string) *string { return &v }

// DefaultTuningConfig returns a TuningConfig populated with the default
// value for every field.
func DefaultTuningConfig() *TuningConfig {
	return &TuningConfig{
		GridSize:  ptrInt(256),
		BlockSize: ptrInt(16),
		Seed:      ptrInt64(1),
		Workers:   ptrInt(0),
		DBPath:    ptrString("tilefill.db"),
		PlotDir:   ptrString(""),
	}
}

// LoadTuningConfig loads a TuningConfig from a JSON file. The file is
// validated to ensure it has a .json extension and is under the max file
// size. Fields omitted from the JSON file fall back to defaults via the
// Get* methods, so partial configs are safe.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &TuningConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *TuningConfig) Validate() error {
	if c.GridSize != nil && *c.GridSize <= 0 {
		return fmt.Errorf("grid_size must be positive, got %d", *c.GridSize)
	}
	if c.BlockSize != nil && *c.BlockSize <= 0 {
		return fmt.Errorf("block_size must be positive, got %d", *c.BlockSize)
	}
	// Reject a non-dividing block size here rather than at dispatch time;
	// a remainder block would read past the grid edge.
	if c.GridSize != nil && c.BlockSize != nil && *c.GridSize%*c.BlockSize != 0 {
		return fmt.Errorf("block_size %d does not divide grid_size %d", *c.BlockSize, *c.GridSize)
	}
	if c.Workers != nil && *c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", *c.Workers)
	}
	return nil
}

// GetGridSize returns the grid_size value or the default.
func (c *TuningConfig) GetGridSize() int {
	if c.GridSize == nil {
		return 256
	}
	return *c.GridSize
}

// GetBlockSize returns the block_size value or the default.
func (c *TuningConfig) GetBlockSize() int {
	if c.BlockSize == nil {
		return 16
	}
	return *c.BlockSize
}

// GetSeed returns the seed value or the default.
func (c *TuningConfig) GetSeed() int64 {
	if c.Seed == nil {
		return 1
	}
	return *c.Seed
}

// GetWorkers returns the workers value or the default (0, meaning one
// worker per CPU).
func (c *TuningConfig) GetWorkers() int {
	if c.Workers == nil {
		return 0
	}
	return *c.Workers
}

// GetDBPath returns the db_path value or the default.
func (c *TuningConfig) GetDBPath() string {
	if c.DBPath == nil {
		return "tilefill.db"
	}
	return *c.DBPath
}

// GetPlotDir returns the plot_dir value or the default (empty, meaning
// heatmap output is disabled).
func (c *TuningConfig) GetPlotDir() string {
	if c.PlotDir == nil {
		return ""
	}
	return *c.PlotDir
}
