package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultInput        = "power_values.txt"
	DefaultOutput       = "/tmp/power_plot.png"
	DefaultDPI          = 220
	DefaultWidthInches  = 8.0
	DefaultHeightInches = 8.0
	DefaultMarkerArea   = 2.0
	DefaultAlpha        = 0.1
	DefaultPower        = 5
	DefaultMax          = 400000
	DefaultTableSize    = 10
	DefaultPairIndex    = 100000
	DefaultHexStart     = 144
)

type Config struct {
	PowerPlot   PowerPlot   `yaml:"power_plot"`
	DigitPowers DigitPowers `yaml:"digit_powers"`
	Pentagonal  Pentagonal  `yaml:"pentagonal"`
	PairSearch  PairSearch  `yaml:"pair_search"`
}

type PowerPlot struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	DPI    int    `yaml:"dpi"`
	// Figure size in inches.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Marker area in points squared.
	MarkerArea float64 `yaml:"marker_area"`
	Alpha      float64 `yaml:"alpha"`
	Preview    bool    `yaml:"preview"`
}

type DigitPowers struct {
	Power   uint64 `yaml:"power"`
	Max     uint64 `yaml:"max"`
	Workers int    `yaml:"workers"`
	Output  string `yaml:"output"`
}

type Pentagonal struct {
	TableSize int  `yaml:"table_size"`
	ShowTable bool `yaml:"show_table"`
}

type PairSearch struct {
	MaxIndex int    `yaml:"max_index"`
	HexStart uint64 `yaml:"hex_start"`
}

func DefaultConfig() *Config {
	return &Config{
		PowerPlot: PowerPlot{
			Input:      DefaultInput,
			Output:     DefaultOutput,
			DPI:        DefaultDPI,
			Width:      DefaultWidthInches,
			Height:     DefaultHeightInches,
			MarkerArea: DefaultMarkerArea,
			Alpha:      DefaultAlpha,
		},
		DigitPowers: DigitPowers{
			Power:  DefaultPower,
			Max:    DefaultMax,
			Output: DefaultInput,
		},
		Pentagonal: Pentagonal{
			TableSize: DefaultTableSize,
		},
		PairSearch: PairSearch{
			MaxIndex: DefaultPairIndex,
			HexStart: DefaultHexStart,
		},
	}
}

// Load reads a YAML file on top of DefaultConfig; keys missing from the
// file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
