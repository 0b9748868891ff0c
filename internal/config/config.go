package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "JASKCART"

// Config holds application configuration.
type Config struct {
	UI  UIConfig  `mapstructure:"ui"`
	Log LogConfig `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol  string `mapstructure:"currency_symbol"`
	DateFormat      string `mapstructure:"date_format"`
	Timezone        string `mapstructure:"timezone"`
	FuzzySearch     bool   `mapstructure:"fuzzy_search"`
	KeybindingsPath string `mapstructure:"keybindings_path"`
}

// LogConfig holds logger settings. An empty Path disables logging.
type LogConfig struct {
	Path   string `mapstructure:"path"`
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func home() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}

// DefaultPath is where the config file lives when none is given.
func DefaultPath() string {
	return filepath.Join(home(), ".config", "jaskcart", "config.toml")
}

// Load reads configuration from path (or the default location) and env.
// Env var overrides use prefix JASKCART_. A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.currency_symbol", "R$")
	v.SetDefault("ui.date_format", "02/01/2006")
	v.SetDefault("ui.timezone", "Local")
	v.SetDefault("ui.fuzzy_search", true)
	v.SetDefault("ui.keybindings_path", filepath.Join(home(), ".config", "jaskcart", "keybindings.toml"))
	v.SetDefault("log.path", filepath.Join(home(), ".local", "share", "jaskcart", "jaskcart.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetConfigType("toml")
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	c.UI.CurrencySymbol = strings.TrimSpace(c.UI.CurrencySymbol)
	if strings.TrimSpace(c.UI.DateFormat) == "" {
		c.UI.DateFormat = "02/01/2006"
	}
	return c, nil
}

// Location resolves the configured timezone, falling back to time.Local.
func (c Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.UI.Timezone)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local, errors.Wrapf(err, "load timezone %q", name)
	}
	return loc, nil
}
