// Package config lê a configuração de inicialização: valores padrão, depois
// um arquivo YAML opcional, depois variáveis de ambiente.
//
// A capacidade é fixa durante toda a execução; não há recarga.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Capacity     int           `yaml:"capacity"`
	PollInterval time.Duration `yaml:"poll_interval"`
	Debounce     time.Duration `yaml:"debounce"`

	BeepLevel int           `yaml:"beep_level"`
	BeepOn    time.Duration `yaml:"beep_on"`
	BeepOff   time.Duration `yaml:"beep_off"`

	DisplayTimeout time.Duration `yaml:"display_timeout"`

	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Capacity:     9,
		PollInterval: 100 * time.Millisecond,
		Debounce:     200 * time.Millisecond,
		BeepLevel:    50,
		BeepOn:       100 * time.Millisecond,
		BeepOff:      100 * time.Millisecond,
		LogLevel:     "info",
	}
}

// Load aplica o arquivo (se path != "") e as variáveis de ambiente sobre Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Capacity = getenvIntDefault("CAPACITY", c.Capacity)
	c.PollInterval = getenvDurationDefault("POLL_INTERVAL", c.PollInterval)
	c.Debounce = getenvDurationDefault("DEBOUNCE", c.Debounce)
	c.BeepLevel = getenvIntDefault("BEEP_LEVEL", c.BeepLevel)
	c.BeepOn = getenvDurationDefault("BEEP_ON", c.BeepOn)
	c.BeepOff = getenvDurationDefault("BEEP_OFF", c.BeepOff)
	c.DisplayTimeout = getenvDurationDefault("DISPLAY_TIMEOUT", c.DisplayTimeout)
	c.LogLevel = getenvDefault("LOG_LEVEL", c.LogLevel)
}

func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return errors.New("CAPACITY must be > 0")
	}
	if c.PollInterval <= 0 {
		return errors.New("POLL_INTERVAL must be > 0")
	}
	if c.Debounce < 0 {
		return errors.New("DEBOUNCE must be >= 0")
	}
	if c.BeepLevel < 0 || c.BeepLevel > 255 {
		return errors.New("BEEP_LEVEL must be in [0, 255]")
	}
	if c.BeepOn <= 0 || c.BeepOff <= 0 {
		return errors.New("BEEP_ON and BEEP_OFF must be > 0")
	}
	if c.DisplayTimeout < 0 {
		return errors.New("DISPLAY_TIMEOUT must be >= 0")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getenvDurationDefault(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
