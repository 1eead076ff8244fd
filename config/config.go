package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	"github.com/reusedev/draw-lite/internal/consts"
	"gopkg.in/yaml.v3"
)

var GConfig *Config

func Init(config []byte) {
	// .env is optional; the real environment wins over it.
	_ = godotenv.Load()
	initFromYaml(config)
	GConfig.FullWithDefault()
	err := GConfig.Verify()
	if err != nil {
		panic(err)
	}
}

func initFromYaml(config []byte) {
	GConfig = &Config{}
	err := yaml.Unmarshal(config, GConfig)
	if err != nil {
		panic(err)
	}
}

type Config struct {
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	LogMaxSize    int    `yaml:"log_max_size"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAge     int    `yaml:"log_max_age"`
	Provider      `yaml:"provider"`
}

type Provider struct {
	BaseURL   string `yaml:"base_url"`
	Model     string `yaml:"model"`
	Quality   string `yaml:"quality"`
	APIKeyEnv string `yaml:"api_key_env"`
}

// APIKey is looked up on every call so a key exported after startup is picked up.
// An empty result is reported by the provider on first use, not here.
func (p Provider) APIKey() string {
	return os.Getenv(p.APIKeyEnv)
}

func (c *Config) FullWithDefault() {
	if c.LogFile == "" {
		c.LogFile = "logs/draw-lite.log"
	}
	if c.LogMaxSize == 0 {
		c.LogMaxSize = 100
	}
	if c.LogMaxBackups == 0 {
		c.LogMaxBackups = 7
	}
	if c.LogMaxAge == 0 {
		c.LogMaxAge = 30
	}
	if c.Provider.BaseURL == "" {
		c.Provider.BaseURL = consts.NebiusBaseURL
	}
	if c.Provider.Model == "" {
		c.Provider.Model = consts.FluxDev.String()
	}
	if c.Provider.Quality == "" {
		c.Provider.Quality = consts.QualityStandard
	}
	if c.Provider.APIKeyEnv == "" {
		c.Provider.APIKeyEnv = consts.APIKeyEnv
	}
}

func (c *Config) Verify() error {
	u, err := url.Parse(c.Provider.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid provider base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("provider base_url must be http or https, got %q", c.Provider.BaseURL)
	}
	if c.LogMaxSize < 0 || c.LogMaxBackups < 0 || c.LogMaxAge < 0 {
		return fmt.Errorf("log rotation values must be non-negative")
	}
	return nil
}
