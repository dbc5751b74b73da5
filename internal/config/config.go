package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/vecdraw/internal/theme"
)

// Steps holds the increments applied by a single edit key press or command.
type Steps struct {
	Move   int     `envconfig:"MOVE" toml:"move"`
	Scale  float32 `envconfig:"SCALE" toml:"scale"`
	Rotate float32 `envconfig:"ROTATE" toml:"rotate"`
	Pan    int     `envconfig:"PAN" toml:"pan"`
	Zoom   float32 `envconfig:"ZOOM" toml:"zoom"`
	Turn   float32 `envconfig:"TURN" toml:"turn"`
}

// Notify holds notification settings.
type Notify struct {
	Save bool `envconfig:"SAVE" toml:"save"`
	Load bool `envconfig:"LOAD" toml:"load"`
	Copy bool `envconfig:"COPY" toml:"copy"`
}

// Config holds the application configuration.
type Config struct {
	SaveFile  string `envconfig:"SAVE_FILE" toml:"save_file"`
	Theme     string `envconfig:"THEME" toml:"theme"`
	WrapWidth int    `envconfig:"WRAP_WIDTH" toml:"wrap_width"`
	Width     int    `envconfig:"WIDTH" toml:"width"`
	Height    int    `envconfig:"HEIGHT" toml:"height"`
	LogLevel  string `envconfig:"LOG_LEVEL" toml:"log_level"`
	Steps     Steps  `envconfig:"STEPS" toml:"steps"`
	Notify    Notify `envconfig:"NOTIFY" toml:"notify"`

	Themes map[string]*theme.Theme `ignored:"true" toml:"-"`
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		SaveFile:  "saved_drawing.json",
		Theme:     "", // Default to empty to allow fallback to Env/Default
		WrapWidth: 1100,
		Width:     1200,
		Height:    1200,
		LogLevel:  "info",
		Steps: Steps{
			Move:   5,
			Scale:  0.1,
			Rotate: 3,
			Pan:    5,
			Zoom:   0.1,
			Turn:   3,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	fmt.Fprintf(&sb, "save_file = %s\n", c.SaveFile)
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	fmt.Fprintf(&sb, "wrap_width = %d\n", c.WrapWidth)
	fmt.Fprintf(&sb, "width = %d\n", c.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Height)
	fmt.Fprintf(&sb, "log_level = %s\n", c.LogLevel)
	sb.WriteString("\n")

	sb.WriteString("[steps]\n")
	fmt.Fprintf(&sb, "move = %d\n", c.Steps.Move)
	fmt.Fprintf(&sb, "scale = %g\n", c.Steps.Scale)
	fmt.Fprintf(&sb, "rotate = %g\n", c.Steps.Rotate)
	fmt.Fprintf(&sb, "pan = %d\n", c.Steps.Pan)
	fmt.Fprintf(&sb, "zoom = %g\n", c.Steps.Zoom)
	fmt.Fprintf(&sb, "turn = %g\n", c.Steps.Turn)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "load = %v\n", c.Notify.Load)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, theme.ToHex(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
