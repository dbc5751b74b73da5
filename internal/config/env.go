package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment override, e.g. VECDRAW_SAVE_FILE or
// VECDRAW_STEPS_MOVE.
const EnvPrefix = "VECDRAW"

// ApplyEnv overlays environment variables onto c. Variables that are not set
// leave the current value alone.
func (c *Config) ApplyEnv() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return c.validate()
}
