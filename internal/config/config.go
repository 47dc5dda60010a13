package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultAppName       = "ODIN"
	DefaultListenAddr    = ":3000"
	DefaultSessionMaxAge = 24 * time.Hour
	DefaultCookieName    = "odin_session"
)

type SessionConfig struct {
	SessionMaxAge  time.Duration `yaml:"sessionMaxAge"`
	CookieName     string        `yaml:"cookieName"`
	CookieHttpOnly bool          `yaml:"cookieHttpOnly"`
	CookieSecure   bool          `yaml:"cookieSecure"`
}

type Config struct {
	Debug       bool          `yaml:"debug"`
	AppName     string        `yaml:"appName"`
	ListenAddr  string        `yaml:"listenAddr"`
	TemplateDir string        `yaml:"templateDir"`
	RedisURL    string        `yaml:"redisURL"`
	Session     SessionConfig `yaml:"session"`
}

func (c *Config) Sanitize() error {
	if c.AppName == "" {
		c.AppName = DefaultAppName
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.Session.SessionMaxAge == 0 {
		c.Session.SessionMaxAge = DefaultSessionMaxAge
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = DefaultCookieName
	}
	return nil
}

func LoadConfig(filename string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filename)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Sanitize(); err != nil {
		return nil, err
	}
	return &config, nil
}
