// SPDX-License-Identifier: EPL-2.0

// Package config loads the YAML settings of a render and playback run.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/ik5/pluck/scale"
	"github.com/ik5/pluck/synth"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	SampleRate      int            `yaml:"sample_rate"`
	Attenuation     float64        `yaml:"attenuation"`
	DurationSamples int            `yaml:"duration_samples"`
	OutputRate      int            `yaml:"output_rate"`
	OutputDir       string         `yaml:"output_dir"`
	Workers         int            `yaml:"workers"`
	ObserveEvery    int            `yaml:"observe_every"`
	Seed            uint64         `yaml:"seed"`
	Preset          string         `yaml:"preset"`
	Presets         []scale.Preset `yaml:"presets"`
	Playback        PlaybackConfig `yaml:"playback"`
	Logging         LoggingConfig  `yaml:"logging"`
}

type PlaybackConfig struct {
	IntervalMs int `yaml:"interval_ms"`
	DeviceRate int `yaml:"device_rate"`
}

// Interval is the pause between clips in the playback loop.
func (p PlaybackConfig) Interval() time.Duration {
	return time.Duration(p.IntervalMs) * time.Millisecond
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

func Default() *Config {
	return &Config{
		SampleRate:      44100,
		Attenuation:     synth.DefaultAttenuation,
		DurationSamples: 44100,
		OutputDir:       ".",
		Workers:         runtime.NumCPU(),
		ObserveEvery:    1000,
		Preset:          scale.Full.Name,
		Playback: PlaybackConfig{
			IntervalMs: 1000,
			DeviceRate: 44100,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults, so a file only needs the keys it
// changes, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample_rate %d must be positive", ErrInvalidConfig, c.SampleRate)
	case !(c.Attenuation > 0 && c.Attenuation <= 1):
		return fmt.Errorf("%w: attenuation %v outside (0, 1]", ErrInvalidConfig, c.Attenuation)
	case c.DurationSamples <= 0:
		return fmt.Errorf("%w: duration_samples %d must be positive", ErrInvalidConfig, c.DurationSamples)
	case c.OutputRate < 0:
		return fmt.Errorf("%w: output_rate %d is negative", ErrInvalidConfig, c.OutputRate)
	case c.OutputDir == "":
		return fmt.Errorf("%w: output_dir is empty", ErrInvalidConfig)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers %d must be positive", ErrInvalidConfig, c.Workers)
	case c.ObserveEvery <= 0:
		return fmt.Errorf("%w: observe_every %d must be positive", ErrInvalidConfig, c.ObserveEvery)
	case c.Playback.IntervalMs <= 0:
		return fmt.Errorf("%w: playback.interval_ms %d must be positive", ErrInvalidConfig, c.Playback.IntervalMs)
	case c.Playback.DeviceRate <= 0:
		return fmt.Errorf("%w: playback.device_rate %d must be positive", ErrInvalidConfig, c.Playback.DeviceRate)
	}

	for i, p := range c.Presets {
		if p.Name == "" {
			return fmt.Errorf("%w: presets[%d] has no name", ErrInvalidConfig, i)
		}
		if _, err := p.Notes(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if _, err := scale.Lookup(c.Preset, c.Presets); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// SynthConfig is the part of the configuration every note shares.
func (c *Config) SynthConfig() synth.Config {
	return synth.Config{SampleRate: c.SampleRate, Attenuation: c.Attenuation}
}

// Notes expands the selected preset.
func (c *Config) Notes() ([]scale.Note, error) {
	p, err := scale.Lookup(c.Preset, c.Presets)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return p.Notes()
}
