package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/davidjames6775-beep/Supervisor-Task-Herding/game"
)

// Config is the process-level configuration, read from the environment.
// A .env file is honored when present.
type Config struct {
	Addr       string // listen address, HERD_ADDR
	TuningPath string // optional yaml tuning file, HERD_TUNING
}

func Load() Config {
	_ = godotenv.Load() // .env is optional outside dev

	cfg := Config{Addr: ":8080"}
	if v := os.Getenv("HERD_ADDR"); v != "" {
		cfg.Addr = v
	}
	cfg.TuningPath = os.Getenv("HERD_TUNING")
	return cfg
}

// LoadTuning reads a yaml tuning file layered over the defaults, or returns
// the defaults when path is empty.
func LoadTuning(path string) (game.Tuning, error) {
	t := game.DefaultTuning()
	if path == "" {
		return t, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(b, &t); err != nil {
		return t, fmt.Errorf("parse tuning file %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return t, nil
}
