// SPDX-License-Identifier: MIT
// Package config loads campusnav settings.
//
// Precedence, lowest first: Default(), the YAML file, a .env file in the
// working directory, then CAMPUSNAV_* environment variables. The result is
// validated before it is returned.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CAMPUSNAV_"

// Config is the root of the configuration tree.
type Config struct {
	Map     MapConfig     `yaml:"map"`
	Meeting MeetingConfig `yaml:"meeting"`
	Locator LocatorConfig `yaml:"locator"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// MapConfig selects the OSM extract and the tags that matter in it.
type MapConfig struct {
	Path           string   `yaml:"path" validate:"required"`
	BuildingValues []string `yaml:"building_values" validate:"required,min=1,dive,required"`
	FootwayValues  []string `yaml:"footway_values" validate:"required,min=1,dive,required"`
}

// MeetingConfig tunes the meeting-point search. MaxCandidates 0 means no limit.
type MeetingConfig struct {
	MaxCandidates          int  `yaml:"max_candidates" validate:"gte=0"`
	ParallelLegs           bool `yaml:"parallel_legs"`
	RequireConnectedStarts bool `yaml:"require_connected_starts"`
}

// LocatorConfig picks the nearest-node strategy.
type LocatorConfig struct {
	Kind      string `yaml:"kind" validate:"oneof=scan quadtree"`
	Neighbors int    `yaml:"neighbors" validate:"gte=1"`
}

// ServerConfig configures `campusnav serve`.
type ServerConfig struct {
	Addr         string        `yaml:"addr" validate:"required"`
	AllowOrigins []string      `yaml:"allow_origins"`
	ReadTimeout  time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"gt=0"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Map: MapConfig{
			Path:           "map.osm",
			BuildingValues: []string{"university"},
			FootwayValues:  []string{"footway"},
		},
		Locator: LocatorConfig{Kind: "scan", Neighbors: 8},
		Server: ServerConfig{
			Addr:         ":8080",
			AllowOrigins: []string{"*"},
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

var validate = validator.New()

// Validate checks every field constraint.
func (c Config) Validate() error {
	return validate.Struct(c)
}

// Load builds the configuration. An empty path or a missing file keeps the
// defaults; a missing .env file is ignored.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("config: .env: %w", err)
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid: %w", err)
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

type lookupFunc func(string) (string, bool)

func applyEnv(cfg *Config, lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	list := func(key string, dst *[]string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = splitList(v)
		}
	}
	var errs []error
	num := func(key string, dst *int) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))

				return
			}
			*dst = n
		}
	}
	flag := func(key string, dst *bool) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))

				return
			}
			*dst = b
		}
	}
	dur := func(key string, dst *time.Duration) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))

				return
			}
			*dst = d
		}
	}

	str("MAP_PATH", &cfg.Map.Path)
	list("MAP_BUILDING_VALUES", &cfg.Map.BuildingValues)
	list("MAP_FOOTWAY_VALUES", &cfg.Map.FootwayValues)
	num("MEETING_MAX_CANDIDATES", &cfg.Meeting.MaxCandidates)
	flag("MEETING_PARALLEL_LEGS", &cfg.Meeting.ParallelLegs)
	flag("MEETING_REQUIRE_CONNECTED_STARTS", &cfg.Meeting.RequireConnectedStarts)
	str("LOCATOR_KIND", &cfg.Locator.Kind)
	num("LOCATOR_NEIGHBORS", &cfg.Locator.Neighbors)
	str("SERVER_ADDR", &cfg.Server.Addr)
	list("SERVER_ALLOW_ORIGINS", &cfg.Server.AllowOrigins)
	dur("SERVER_READ_TIMEOUT", &cfg.Server.ReadTimeout)
	dur("SERVER_WRITE_TIMEOUT", &cfg.Server.WriteTimeout)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)

	return errors.Join(errs...)
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
