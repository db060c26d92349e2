// Package config reads server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/meikuraledutech/automata"
)

const (
	DefaultListenAddr = ":3000"
	DefaultMaxStates  = 4096
)

// Config holds the server settings.
type Config struct {
	// DatabaseURL selects the postgres store. Empty means in-memory.
	DatabaseURL string
	ListenAddr  string
	// MaxStates caps DFA states per conversion; 0 disables the cap.
	MaxStates int
	Lenient   bool
}

// Load reads DATABASE_URL, LISTEN_ADDR, MAX_DFA_STATES and LENIENT.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		DatabaseURL: getenv("DATABASE_URL"),
		ListenAddr:  getenv("LISTEN_ADDR"),
		MaxStates:   DefaultMaxStates,
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	if v := getenv("MAX_DFA_STATES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("config: MAX_DFA_STATES %q: must be a non-negative integer", v)
		}
		cfg.MaxStates = n
	}
	if v := getenv("LENIENT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: LENIENT %q: %w", v, err)
		}
		cfg.Lenient = b
	}
	return cfg, nil
}

// Options translates the settings into conversion options.
func (c Config) Options() []automata.Option {
	opts := []automata.Option{automata.WithMaxStates(c.MaxStates)}
	if c.Lenient {
		opts = append(opts, automata.WithLenient())
	}
	return opts
}
