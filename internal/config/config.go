package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Backend    Backend    `yaml:"backend"`
	Board      Board      `yaml:"board"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8082"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Backend points at the activities API the board signs people up against.
// A zero Timeout leaves requests unbounded.
type Backend struct {
	BaseURL string        `yaml:"base_url" env:"BACKEND_URL" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env:"BACKEND_TIMEOUT" env-default:"0s"`
}

type Board struct {
	MessageTTL time.Duration `yaml:"message_ttl" env:"MESSAGE_TTL" env-default:"5s"`
	// Anchors lists the page elements to mount. Empty mounts all of them.
	Anchors []string `yaml:"anchors" env:"BOARD_ANCHORS" env-separator:","`
}

func MustLoad() *Config {
	cfg, err := Load(fetchConfigPath())
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}

// Load reads the YAML file at path and applies environment overrides.
// An empty path reads the environment only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read config from env: %w", err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	return &cfg, nil
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
