package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/dustin/go-humanize"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/rangeslider/internal/slider"
)

const (
	appName        = "rangeslider"
	configFileName = "config.toml"
	localFileName  = "rangeslider.toml"
)

// Value formats accepted by SliderConfig.ValueFormat.
const (
	FormatPlain   = ""
	FormatComma   = "comma"   // 1,234.5
	FormatSI      = "si"      // 1.2 k
	FormatPercent = "percent" // 42%
)

type Config struct {
	StateDB string         `koanf:"state_db"` // sqlite file for saved values; empty means XDG data dir
	Sliders []SliderConfig `koanf:"sliders"`  // one [[sliders]] table per slider
}

// SliderConfig describes one slider. Engine settings are kept untyped and
// handed to slider.Config.Set, so a TOML file accepts the same shapes as the
// API: a number or a pair for value, a string or a pair for aria_label.
type SliderConfig struct {
	Name        string `koanf:"name"`
	Title       string `koanf:"title"`
	Persist     bool   `koanf:"persist"`      // save and restore the last value
	ValueFormat string `koanf:"value_format"` // "", "comma", "si" or "percent"

	Min      any `koanf:"min"`
	Max      any `koanf:"max"`
	Step     any `koanf:"step"`
	Range    any `koanf:"range"`
	Disabled any `koanf:"disabled"`
	Value    any `koanf:"value"`

	Ticks      bool `koanf:"ticks"`
	MajorEvery int  `koanf:"major_every"` // every n-th tick is major; 0 means none
	TickLabels bool `koanf:"tick_labels"` // label major ticks, or every tick when major_every is 0

	TabOrder        any `koanf:"tab_order"`
	AriaLabel       any `koanf:"aria_label"`
	AriaLabelledBy  any `koanf:"aria_labelledby"`
	AriaDescribedBy any `koanf:"aria_describedby"`
}

// Load reads the user config then ./rangeslider.toml, the last one winning.
// Without any slider definition the built-in demo sliders are used.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order, skipping missing ones.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.StateDB != "" {
		cfg.StateDB = expandPath(cfg.StateDB)
	}

	if len(cfg.Sliders) == 0 {
		cfg.Sliders = DefaultSliders()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.Sliders))
	for i := range c.Sliders {
		sc := &c.Sliders[i]
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("slider-%d", i+1)
		}
		if seen[sc.Name] {
			return fmt.Errorf("duplicate slider name %q", sc.Name)
		}
		seen[sc.Name] = true
		if sc.Title == "" {
			sc.Title = sc.Name
		}
	}
	return nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/rangeslider/config.toml
		filepath.Join(xdg.ConfigHome, appName, configFileName),
		// 2. ./rangeslider.toml (pwd, highest priority)
		localFileName,
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// StateDBPath returns the sqlite file for saved values.
func (c *Config) StateDBPath() (string, error) {
	if c.StateDB != "" {
		return c.StateDB, nil
	}
	return xdg.DataFile(filepath.Join(appName, "state.db"))
}

// HasPersistence reports whether any slider saves its value.
func (c *Config) HasPersistence() bool {
	for _, sc := range c.Sliders {
		if sc.Persist {
			return true
		}
	}
	return false
}

// Build turns the slider description into an engine config.
func (sc SliderConfig) Build() (slider.Config, error) {
	cfg := slider.DefaultConfig()

	format, err := valueFormatter(sc.ValueFormat)
	if err != nil {
		return slider.Config{}, fmt.Errorf("slider %q: %w", sc.Name, err)
	}
	cfg.ValueTextFormatter = format

	for _, s := range []struct {
		name  string
		value any
	}{
		{slider.SettingMin, sc.Min},
		{slider.SettingMax, sc.Max},
		{slider.SettingStep, sc.Step},
		{slider.SettingIsRange, sc.Range},
		{slider.SettingDisabled, sc.Disabled},
		{slider.SettingInitialValue, sc.Value},
		{slider.SettingTabOrder, sc.TabOrder},
		{slider.SettingAriaLabel, sc.AriaLabel},
		{slider.SettingAriaLabelledBy, sc.AriaLabelledBy},
		{slider.SettingAriaDescribedBy, sc.AriaDescribedBy},
	} {
		if s.value == nil {
			continue
		}
		if err := cfg.Set(s.name, s.value); err != nil {
			return slider.Config{}, fmt.Errorf("slider %q: %w", sc.Name, err)
		}
	}

	cfg.Ticks = sc.ticks(cfg, format)
	return cfg, nil
}

// ticks builds the tick setting. Plain ticks need no formatter; majors and
// labels are assigned by one.
func (sc SliderConfig) ticks(cfg slider.Config, format slider.ValueTextFormatter) slider.Ticks {
	if !sc.Ticks {
		return slider.Ticks{}
	}
	if sc.MajorEvery <= 0 && !sc.TickLabels {
		return slider.Ticks{Enabled: true}
	}

	every := sc.MajorEvery
	labels := sc.TickLabels
	return slider.Ticks{Formatter: func(t *slider.Tick, value, _ float64) bool {
		major := every <= 0
		if every > 0 {
			n := int(math.Round((value - cfg.Min) / cfg.Step))
			major = n%every == 0
		}
		t.Major = major && every > 0
		if labels && major {
			t.Label = format(value)
		}
		return true
	}}
}

func valueFormatter(name string) (slider.ValueTextFormatter, error) {
	switch name {
	case FormatPlain:
		return slider.FormatValue, nil
	case FormatComma:
		return humanize.Commaf, nil
	case FormatSI:
		return func(v float64) string {
			return strings.TrimSpace(humanize.SIWithDigits(v, 2, ""))
		}, nil
	case FormatPercent:
		return func(v float64) string {
			return slider.FormatValue(v) + "%"
		}, nil
	}
	return nil, fmt.Errorf("unknown value_format %q", name)
}
