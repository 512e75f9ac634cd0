package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Players  Players `yaml:"players"`
	Redis    Redis   `yaml:"redis"`
	Console  Console `yaml:"console"`
}

type Players struct {
	First  Player `yaml:"first"`
	Second Player `yaml:"second"`
}

type Player struct {
	ID    string `yaml:"id"`
	Color string `yaml:"color"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Console struct {
	NoColor bool `yaml:"no-color" env:"CONSOLE_NO_COLOR"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if config.Players.First.ID == "" {
		config.Players.First = Player{ID: "PlayerA", Color: "R"}
	}

	if config.Players.Second.ID == "" {
		config.Players.Second = Player{ID: "PlayerB", Color: "G"}
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
