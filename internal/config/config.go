package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Simulation Simulation `yaml:"simulation"`
	Redis      Redis      `yaml:"redis"`
}

type Simulation struct {
	Games          int    `yaml:"games" env:"SIMULATION_GAMES" env-default:"1000"`
	Engine         string `yaml:"engine" env:"SIMULATION_ENGINE" env-default:"perfect"`
	StartingMarker string `yaml:"starting-marker" env:"SIMULATION_STARTING_MARKER" env-default:"X"`
	Workers        int    `yaml:"workers" env:"SIMULATION_WORKERS" env-default:"1"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:""`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations from the config file, falling back to
// environment variables when the file does not exist.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment config: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// IsConfigured - reports whether report persistence is enabled.
func (that *Redis) IsConfigured() bool {
	return that.Host != ""
}
