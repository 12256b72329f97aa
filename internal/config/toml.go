// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Scroll     ScrollConfig     `toml:"scroll"`
	Playground PlaygroundConfig `toml:"playground"`
	Stats      StatsConfig      `toml:"stats"`
	Log        LogConfig        `toml:"log"`
}

// ScrollConfig maps scroll physics settings. Durations are milliseconds.
type ScrollConfig struct {
	ScrollX                *bool    `toml:"scroll-x"`
	ScrollY                *bool    `toml:"scroll-y"`
	FreeScroll             *bool    `toml:"free-scroll"`
	DirectionLockThreshold *float64 `toml:"direction-lock-threshold"`
	Momentum               *bool    `toml:"momentum"`
	MomentumLimitTime      *int     `toml:"momentum-limit-time"`
	MomentumLimitDistance  *float64 `toml:"momentum-limit-distance"`
	Deceleration           *float64 `toml:"deceleration"`
	SwipeTime              *int     `toml:"swipe-time"`
	SwipeBounceTime        *int     `toml:"swipe-bounce-time"`
	BounceTime             *int     `toml:"bounce-time"`
	BounceTop              *bool    `toml:"bounce-top"`
	BounceBottom           *bool    `toml:"bounce-bottom"`
	BounceLeft             *bool    `toml:"bounce-left"`
	BounceRight            *bool    `toml:"bounce-right"`
}

// PlaygroundConfig maps playground content and animation settings.
type PlaygroundConfig struct {
	Lines    *int    `toml:"lines"`
	MinWords *int    `toml:"min-words"`
	MaxWords *int    `toml:"max-words"`
	Seed     *int64  `toml:"seed"`
	File     *string `toml:"file"`
	Settle   *string `toml:"settle"`
	FPS      *int    `toml:"fps"`
}

// StatsConfig maps stats report settings.
type StatsConfig struct {
	Last        *int `toml:"last"`
	CurveWindow *int `toml:"curve-window"`
}

// LogConfig maps log file settings.
type LogConfig struct {
	File   *string `toml:"file"`
	Format *string `toml:"format"`
	Level  *string `toml:"level"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
