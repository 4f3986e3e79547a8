package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vango-dev/headless/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "headless.json"

	// DefaultPort is the default gallery port.
	DefaultPort = 7070

	// DefaultHost is the default gallery host.
	DefaultHost = "localhost"

	// DefaultMetricsPath is where the gallery serves Prometheus metrics.
	DefaultMetricsPath = "/metrics"

	// DefaultReadLimit caps the size of one websocket message from a client.
	DefaultReadLimit = 64 * 1024

	// DefaultScenarioGlob matches scenario files inside the scenario directory.
	DefaultScenarioGlob = "*.yaml"

	// DefaultOutput is the default static build directory.
	DefaultOutput = "dist"

	// DefaultRegion is used for publishing when no region is configured.
	DefaultRegion = "us-east-1"
)

// Config represents headless.json.
type Config struct {
	// Gallery configures the story gallery server.
	Gallery GalleryConfig `json:"gallery,omitempty"`

	// Scenarios configures where play scenarios are read from.
	Scenarios ScenariosConfig `json:"scenarios,omitempty"`

	// Build configures the static gallery build.
	Build BuildConfig `json:"build,omitempty"`

	// Publish configures uploading the static build.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath is the path the config was loaded from.
	configPath string
}

// GalleryConfig configures the gallery server.
type GalleryConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`

	// MetricsPath is the route for Prometheus metrics. "-" disables it.
	MetricsPath string `json:"metricsPath,omitempty"`

	// ReadLimit is the largest websocket message accepted, in bytes.
	ReadLimit int64 `json:"readLimit,omitempty"`
}

// ScenariosConfig locates scenario files. An empty Dir means only the
// built-in scenarios are used.
type ScenariosConfig struct {
	Dir  string `json:"dir,omitempty"`
	Glob string `json:"glob,omitempty"`
}

// BuildConfig configures the static build.
type BuildConfig struct {
	Output string `json:"output,omitempty"`
	Pretty bool   `json:"pretty,omitempty"`
}

// PublishConfig configures S3 publishing.
type PublishConfig struct {
	Bucket string `json:"bucket,omitempty"`
	Prefix string `json:"prefix,omitempty"`
	Region string `json:"region,omitempty"`

	// Endpoint overrides the S3 endpoint, for S3-compatible stores.
	Endpoint string `json:"endpoint,omitempty"`
}

// New returns a configuration with defaults applied.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads headless.json from dir. A missing file is not an error: the
// defaults are returned.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if !Exists(dir) {
		cfg := New()
		cfg.configPath = path
		return cfg, nil
	}
	return LoadFile(path)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to read " + path).
			Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E101").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E101").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

func (c *Config) applyDefaults() {
	if c.Gallery.Host == "" {
		c.Gallery.Host = DefaultHost
	}
	if c.Gallery.Port == 0 {
		c.Gallery.Port = DefaultPort
	}
	if c.Gallery.MetricsPath == "" {
		c.Gallery.MetricsPath = DefaultMetricsPath
	}
	if c.Gallery.ReadLimit == 0 {
		c.Gallery.ReadLimit = DefaultReadLimit
	}

	if c.Scenarios.Glob == "" {
		c.Scenarios.Glob = DefaultScenarioGlob
	}

	if c.Build.Output == "" {
		c.Build.Output = DefaultOutput
	}

	if c.Publish.Region == "" {
		c.Publish.Region = DefaultRegion
	}
}

// Validate checks the settings every command relies on.
func (c *Config) Validate() error {
	if c.Gallery.Port < 1 || c.Gallery.Port > 65535 {
		return errors.New("E102").
			WithDetail("Port " + strconv.Itoa(c.Gallery.Port) + " is outside 1-65535")
	}
	if c.Scenarios.Dir != "" {
		info, err := os.Stat(c.ScenariosPath())
		if err != nil || !info.IsDir() {
			return errors.New("E103").
				WithDetail("No directory at " + c.ScenariosPath())
		}
	}
	return nil
}

// ValidatePublish checks the settings needed for publishing.
func (c *Config) ValidatePublish() error {
	if c.Publish.Bucket == "" {
		return errors.New("E104")
	}
	return nil
}

// GalleryAddress returns the listen address of the gallery server.
func (c *Config) GalleryAddress() string {
	return c.Gallery.Host + ":" + strconv.Itoa(c.Gallery.Port)
}

// MetricsEnabled reports whether the gallery should serve metrics.
func (c *Config) MetricsEnabled() bool {
	return c.Gallery.MetricsPath != "-"
}

// ScenariosPath returns the absolute path of the scenario directory, or ""
// when none is configured.
func (c *Config) ScenariosPath() string {
	return c.resolve(c.Scenarios.Dir)
}

// OutputPath returns the absolute path to the build output directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.Build.Output)
}

func (c *Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up from startDir to the first directory holding
// headless.json. It returns startDir itself when there is none.
func FindProjectRoot(startDir string) (string, error) {
	start, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for dir := start; ; {
		if Exists(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration for the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}
	return Load(root)
}
