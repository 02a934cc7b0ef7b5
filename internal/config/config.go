package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the site-level configuration, loaded from vellum.yaml and
// VELLUM_* environment variables.
type Config struct {
	SiteTitle       string `mapstructure:"site_title"`
	SiteDescription string `mapstructure:"site_description"`
	BaseURL         string `mapstructure:"base_url"`

	ContentDir string `mapstructure:"content_dir"`
	DataDir    string `mapstructure:"data_dir"`
	StaticDir  string `mapstructure:"static_dir"`
	OutputDir  string `mapstructure:"output_dir"`

	Stylesheet string `mapstructure:"stylesheet"`
	LogLevel   string `mapstructure:"log_level"`
	Port       int    `mapstructure:"port"`
}

// Load reads configuration. cfgFile overrides the conventional lookup
// (./vellum.yaml); a missing config file is fine, defaults apply.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("site_title", "Vellum")
	v.SetDefault("site_description", "")
	v.SetDefault("base_url", "")
	v.SetDefault("content_dir", "content")
	v.SetDefault("data_dir", "data")
	v.SetDefault("static_dir", "static")
	v.SetDefault("output_dir", "public")
	v.SetDefault("stylesheet", "/static/css/site.css")
	v.SetDefault("log_level", "info")
	v.SetDefault("port", 1414)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("vellum")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("VELLUM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if cfgFile != "" {
			return nil, fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
