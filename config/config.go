// Package config loads the flat transition.Config from a YAML file,
// flattening whatever tree-shaped source a deployment uses into the five
// numeric knobs the transition cost functor accepts at construction.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/corvidlabs/mapmatch/transition"
)

// Defaults mirror values commonly used for automobile-mode map matching.
const (
	DefaultBeta                   = 5.0
	DefaultBreakageDistance       = 2000.0
	DefaultMaxRouteDistanceFactor = 5.0
	DefaultMaxRouteTimeFactor     = 5.0
	DefaultTurnPenaltyFactor      = 1.0
)

// fileConfig mirrors the on-disk YAML shape. Every field is an optional
// pointer so a file may override only the knobs it cares about; omitted
// fields fall back to the package defaults.
type fileConfig struct {
	Beta                   *float64 `yaml:"beta" mapstructure:"beta"`
	BreakageDistance       *float64 `yaml:"breakage_distance" mapstructure:"breakage_distance"`
	MaxRouteDistanceFactor *float64 `yaml:"max_route_distance_factor" mapstructure:"max_route_distance_factor"`
	MaxRouteTimeFactor     *float64 `yaml:"max_route_time_factor" mapstructure:"max_route_time_factor"`
	TurnPenaltyFactor      *float64 `yaml:"turn_penalty_factor" mapstructure:"turn_penalty_factor"`
}

// Default returns the transition.Config built entirely from package
// defaults.
func Default() (*transition.Config, error) {
	return (&fileConfig{}).resolve()
}

// Load reads path as YAML and constructs a transition.Config, merging any
// present fields over the defaults and deferring numeric validation to
// transition.NewConfig.
func Load(path string) (*transition.Config, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	raw := &fileConfig{}
	if err := vp.Unmarshal(raw); err != nil {
		return nil, fmt.Errorf("config: unmarshal via viper: %w", err)
	}

	// Round-trip the viper-decoded struct through yaml.v3 as well,
	// matching the double-hop this binding style is grounded on.
	spec, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("config: re-marshal: %w", err)
	}
	resolved := &fileConfig{}
	if err := yaml.Unmarshal(spec, resolved); err != nil {
		return nil, fmt.Errorf("config: re-unmarshal: %w", err)
	}

	return resolved.resolve()
}

func (c *fileConfig) resolve() (*transition.Config, error) {
	return transition.NewConfig(
		floatOrDefault(c.Beta, DefaultBeta),
		floatOrDefault(c.BreakageDistance, DefaultBreakageDistance),
		floatOrDefault(c.MaxRouteDistanceFactor, DefaultMaxRouteDistanceFactor),
		floatOrDefault(c.MaxRouteTimeFactor, DefaultMaxRouteTimeFactor),
		floatOrDefault(c.TurnPenaltyFactor, DefaultTurnPenaltyFactor),
	)
}

func floatOrDefault(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
