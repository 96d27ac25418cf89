// Package config carga la configuración desde defaults, archivo YAML opcional,
// .env y variables de entorno.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "MEDSCHED"

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Seed   SeedConfig   `mapstructure:"seed"`
	API    APIConfig    `mapstructure:"api"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SeedConfig: si File está vacío se usa la lista mock integrada.
type SeedConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	File    string `mapstructure:"file"`
}

// APIConfig la usa la TUI en modo remoto (URL vacía => en proceso).
type APIConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// Load lee configPath (opcional) y el entorno. Los .env no pisan variables ya
// definidas.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load() // .env es opcional

	v := viper.New()
	setDefaults(v)

	if strings.TrimSpace(configPath) != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	// MEDSCHED_SERVER_PORT, MEDSCHED_LOG_LEVEL, ...
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Variables sin prefijo heredadas (PORT, LOG_LEVEL, LOG_FORMAT, APP_NAME)
	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT")
	_ = v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("log.format", EnvPrefix+"_LOG_FORMAT", "LOG_FORMAT")
	_ = v.BindEnv("app.name", EnvPrefix+"_APP_NAME", "APP_NAME")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "med-schedule")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("seed.enabled", true)
	v.SetDefault("seed.file", "")

	v.SetDefault("api.url", "")
	v.SetDefault("api.timeout", 5*time.Second)
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", cfg.Server.Port)
	}
	if f := strings.TrimSpace(cfg.Seed.File); f != "" {
		if _, err := os.Stat(f); err != nil {
			return fmt.Errorf("seed.file: %w", err)
		}
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = 5 * time.Second
	}
	return nil
}
