package movement

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"negative walk speed":   func(c *Config) { c.MaxWalkSpeed = -1 },
		"negative acceleration": func(c *Config) { c.MaxAcceleration = -1 },
		"zero braking sub step": func(c *Config) { c.BrakingSubStepTime = 0 },
		"min jump scale":        func(c *Config) { c.MinJumpScale = 1.5 },
		"upward fast fall":      func(c *Config) { c.FastFallZVelocity = 100 },
		"zero mass":             func(c *Config) { c.Mass = 0 },
		"floor angle":           func(c *Config) { c.WalkableFloorAngle = 95 },
		"no sub steps":          func(c *Config) { c.MaxSimulationIterations = 0 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
