package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SysConfig holds process-level settings.
type SysConfig struct {
	// Workdir is where the store data file and log file live.
	Workdir  string `yaml:"workdir" json:"workdir"`
	Location string `yaml:"location" json:"location"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Mode selects the zap preset, "development" or "production".
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

// StorageConfig holds persistence settings.
type StorageConfig struct {
	// Filename is the store data file, relative to Workdir unless absolute.
	Filename string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System  SysConfig     `yaml:"system" json:"system"`
	Logger  LogConfig     `yaml:"logger" json:"logger"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
}

// StorePath returns the resolved store data file path.
func (c *AppConfig) StorePath() string {
	if filepath.IsAbs(c.Storage.Filename) {
		return c.Storage.Filename
	}
	return filepath.Join(c.System.Workdir, c.Storage.Filename)
}

func DefaultConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Workdir:  ".",
			Location: "Local",
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "grocerstore.log",
		},
		Storage: StorageConfig{
			Filename: "storedata.db",
		},
	}
}

// Load returns the defaults overlaid with the yaml file at path. An empty
// path yields the defaults unchanged.
func Load(path string) (*AppConfig, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	return cfg, nil
}
