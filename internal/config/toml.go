package config

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/example/vecdraw/internal/theme"
)

// ParseTOML reads configuration in TOML format. The keys match the RC format;
// theme definitions live in [themes.NAME] tables because the root "theme" key
// already selects one.
func ParseTOML(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cfg := New()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}

	var extra struct {
		Themes map[string]map[string]string `toml:"themes"`
	}
	if err := toml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}
	for name, fields := range extra.Themes {
		t := theme.Default()
		t.Name = name
		for k, v := range fields {
			if err := theme.Set(t, k, v); err != nil {
				return nil, fmt.Errorf("error in table [themes.%s]: %w", name, err)
			}
		}
		cfg.Themes[name] = t
	}
	return cfg, cfg.validate()
}

// MarshalTOML encodes c in the layout read by ParseTOML.
func (c *Config) MarshalTOML() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode toml: %w", err)
	}
	if len(c.Themes) > 0 {
		themes := make(map[string]map[string]string, len(c.Themes))
		for name, t := range c.Themes {
			fields := make(map[string]string)
			for _, f := range theme.Fields(t) {
				fields[f.Name] = theme.ToHex(f.Color)
			}
			themes[name] = fields
		}
		if err := enc.Encode(map[string]any{"themes": themes}); err != nil {
			return nil, fmt.Errorf("encode toml themes: %w", err)
		}
	}
	return buf.Bytes(), nil
}

func (c *Config) validate() error {
	for key, v := range map[string]int{"wrap_width": c.WrapWidth, "width": c.Width, "height": c.Height} {
		if v <= 0 {
			return fmt.Errorf("key %s must be positive, got %d", key, v)
		}
	}
	return nil
}
