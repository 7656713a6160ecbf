package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/namap/internal/coord"
)

// Converter holds all configuration for the coordinate converters.
type Converter struct {
	// Map calibration (transform coefficients, map size, travel factors)
	Calibration coord.Calibration `yaml:"calibration"`

	// Input
	APIDir      string `yaml:"api_dir"`
	PortsExport string `yaml:"ports_export"` // file name inside APIDir

	// Output
	OutputDir     string `yaml:"output_dir"`
	PortsFile     string `yaml:"ports_file"`
	DistancesFile string `yaml:"distances_file"`

	// Flip Y for renderers with a top-left origin
	FlipY bool `yaml:"flip_y"`

	// Goroutines used for the distance table
	Workers int `yaml:"workers"`
}

// DefaultConverter returns Converter config with the shipped map calibration.
func DefaultConverter() Converter {
	return Converter{
		Calibration:   coord.DefaultCalibration(),
		APIDir:        filepath.Join("build", "API"),
		PortsExport:   "Ports.json",
		OutputDir:     "lib",
		PortsFile:     "ports.json",
		DistancesFile: "distances.json",
		FlipY:         false,
		Workers:       4,
	}
}

// PortsExportPath returns the path of the port export to read.
func (c Converter) PortsExportPath() string {
	return filepath.Join(c.APIDir, c.PortsExport)
}

// PortsPath returns the path of the generated ports file.
func (c Converter) PortsPath() string {
	return filepath.Join(c.OutputDir, c.PortsFile)
}

// DistancesPath returns the path of the generated distances file.
func (c Converter) DistancesPath() string {
	return filepath.Join(c.OutputDir, c.DistancesFile)
}

// Validate checks values that the converters cannot work without.
func (c Converter) Validate() error {
	if err := c.Calibration.Validate(); err != nil {
		return fmt.Errorf("calibration: %w", err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.PortsExport == "" || c.PortsFile == "" || c.DistancesFile == "" {
		return fmt.Errorf("file names must not be empty")
	}
	return nil
}

// LoadConverter loads converter config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadConverter(path string) (Converter, error) {
	cfg := DefaultConverter()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}
