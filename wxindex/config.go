package wxindex

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Columns maps the logical inputs of the calculators to CSV column names.
type Columns struct {
	Tmax     string `yaml:"tmax"`
	Tmin     string `yaml:"tmin"`
	RH       string `yaml:"rh"`
	Tdew     string `yaml:"tdew"`
	Pressure string `yaml:"pressure"`
	TA       string `yaml:"ta"`
}

// Settings is the optional YAML configuration of the command line tool.
type Settings struct {
	Columns   Columns `yaml:"columns"`
	RangeMode string  `yaml:"range_mode"`
	Workers   int     `yaml:"workers"`
	Log       string  `yaml:"log"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		Columns: Columns{
			Tmax:     "tmax",
			Tmin:     "tmin",
			RH:       "rh",
			Tdew:     "tdew",
			Pressure: "pressure",
			TA:       "ta",
		},
		RangeMode: IntegerRange.String(),
		Workers:   0,
		Log:       "ERROR",
	}
}

// ReadSettings decodes YAML from r on top of DefaultSettings, so omitted keys
// keep their defaults.
func ReadSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if _, ok := ParseRangeMode(s.RangeMode); !ok {
		return Settings{}, fmt.Errorf("range_mode must be integer or continuous, got %q", s.RangeMode)
	}
	if s.Workers < 0 {
		return Settings{}, fmt.Errorf("workers must not be negative, got %d", s.Workers)
	}
	return s, nil
}

// LoadSettings reads settings from a YAML file.
func LoadSettings(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, err
	}
	defer f.Close()
	s, err := ReadSettings(f)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Options converts the settings into batch calculation options.
func (s Settings) Options() []Option {
	mode, _ := ParseRangeMode(s.RangeMode)
	opts := []Option{WithRangeMode(mode)}
	if s.Workers > 0 {
		opts = append(opts, WithWorkers(s.Workers))
	}
	return opts
}
