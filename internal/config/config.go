// Package config holds the application configuration for the terrain tools:
// defaults, YAML file loading, and CLI-flag precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the viewer/baker configuration.
type Config struct {
	Addr string `yaml:"addr"`

	Seed            int64   `yaml:"seed"`
	Preset          string  `yaml:"preset"` // "default", "islands", "mountains", "dunes"
	ChunkWorldSize  float64 `yaml:"chunk_world_size"`
	ChunkResolution int     `yaml:"chunk_resolution"`
	ViewDistance    int     `yaml:"view_distance"`
	MaxHeight       float64 `yaml:"max_height"`
	LodLevels       int     `yaml:"lod_levels"`
	LodBaseDistance float64 `yaml:"lod_base_distance"`

	// TickRate is how many streaming ticks the view server runs per second.
	TickRate int `yaml:"tick_rate"`
	// Compress enables zstd-compressed binary mesh frames.
	Compress bool `yaml:"compress"`
	// PresetPack optionally names a material preset pack to fetch (URL or
	// local path, go-getter syntax).
	PresetPack string `yaml:"preset_pack"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:            ":8571",
		Seed:            1,
		Preset:          "default",
		ChunkWorldSize:  64,
		ChunkResolution: 64,
		ViewDistance:    4,
		MaxHeight:       80,
		LodLevels:       4,
		LodBaseDistance: 128,
		TickRate:        20,
	}
}

// Load reads a YAML config file. Unknown fields are an error so typos in
// config files surface instead of silently falling back to defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := unmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func unmarshalStrict(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil // empty file keeps defaults
		}
		return err
	}
	return nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["addr"] {
		cfg.Addr = fromFile.Addr
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["preset"] {
		cfg.Preset = fromFile.Preset
	}
	if !explicitFlags["chunk-size"] {
		cfg.ChunkWorldSize = fromFile.ChunkWorldSize
	}
	if !explicitFlags["resolution"] {
		cfg.ChunkResolution = fromFile.ChunkResolution
	}
	if !explicitFlags["view-distance"] {
		cfg.ViewDistance = fromFile.ViewDistance
	}
	if !explicitFlags["max-height"] {
		cfg.MaxHeight = fromFile.MaxHeight
	}
	if !explicitFlags["lod-levels"] {
		cfg.LodLevels = fromFile.LodLevels
	}
	if !explicitFlags["lod-base"] {
		cfg.LodBaseDistance = fromFile.LodBaseDistance
	}
	if !explicitFlags["tick-rate"] {
		cfg.TickRate = fromFile.TickRate
	}
	if !explicitFlags["compress"] {
		cfg.Compress = fromFile.Compress
	}
	if !explicitFlags["preset-pack"] {
		cfg.PresetPack = fromFile.PresetPack
	}
}
