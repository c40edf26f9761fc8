package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"galleria/internal/eventbus"
)

// DefaultBaseURL is the public artwork listing API used when no
// override is configured.
const DefaultBaseURL = "https://api.artic.edu/api/v1"

// Page size bounds enforced when loading and when the user resizes
// pages at runtime.
const (
	MinPageSize     = 5
	MaxPageSize     = 100
	DefaultPageSize = 12
)

// Config represents the application configuration
type Config struct {
	Version int       `toml:"version"`
	API     APIConfig `toml:"api"`
	UI      UIConfig  `toml:"ui"`
}

// APIConfig holds remote catalog settings
type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	PageSize       int    `toml:"page_size"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// UIConfig holds display settings
type UIConfig struct {
	ShowInscriptions bool `toml:"show_inscriptions"`
	CompactDates     bool `toml:"compact_dates"`
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(cfg *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(cfg *Config, path string) error
	Path() string
}

// service is the concrete implementation
type service struct {
	bus      eventbus.EventBus
	filePath string
}

// NewService creates a new config service storing its file under the
// user config directory.
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	dir := filepath.Join(configDir, "galleria")
	_ = os.MkdirAll(dir, 0755)

	return &service{
		filePath: filepath.Join(dir, "config.toml"),
	}
}

// NewServiceWithBus creates a config service with event bus support
func NewServiceWithBus(bus eventbus.EventBus) Service {
	s := NewService().(*service)
	s.bus = bus
	return s
}

// Path returns the file the service loads from and saves to.
func (s *service) Path() string { return s.filePath }

// Load loads the configuration, falling back to defaults when no file
// exists yet.
func (s *service) Load() (*Config, error) {
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		cfg := Default()
		s.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := s.LoadFromPath(s.filePath)
	if err != nil {
		return nil, err
	}
	s.publishLoaded(cfg)
	return cfg, nil
}

// Save saves the configuration to the default path
func (s *service) Save(cfg *Config) error {
	if err := s.SaveToPath(cfg, s.filePath); err != nil {
		return err
	}
	if s.bus != nil {
		s.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (s *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	normalize(&cfg)
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (s *service) SaveToPath(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (s *service) publishLoaded(cfg *Config) {
	if s.bus != nil {
		s.bus.Publish(eventbus.ConfigLoadedEvent{
			BaseURL:  cfg.API.BaseURL,
			PageSize: cfg.API.PageSize,
		})
	}
}

// normalize fills gaps and clamps out-of-range values from hand-edited
// files.
func normalize(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	if cfg.API.PageSize < MinPageSize || cfg.API.PageSize > MaxPageSize {
		cfg.API.PageSize = DefaultPageSize
	}
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = 15
	}
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version: 1,
		API: APIConfig{
			BaseURL:        DefaultBaseURL,
			PageSize:       DefaultPageSize,
			TimeoutSeconds: 15,
		},
		UI: UIConfig{
			ShowInscriptions: true,
			CompactDates:     false,
		},
	}
}
