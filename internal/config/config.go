package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Solver  SolverConfig
	Editor  EditorConfig
	Puzzles PuzzlesConfig
}

// SolverConfig holds search settings.
type SolverConfig struct {
	TimeLimit time.Duration
}

// EditorConfig holds external editor settings.
type EditorConfig struct {
	Command string
}

// PuzzlesConfig holds puzzle file settings.
type PuzzlesConfig struct {
	Dir string
}

func defaultEditor() string {
	if e := strings.TrimSpace(os.Getenv("EDITOR")); e != "" {
		return e
	}
	return "nano"
}

// Load reads configuration from file and env. Env var overrides use
// prefix SUDOTUI_. A zero or negative solver.time_limit falls back to
// the 5s default; the solver treats the limit literally and would time
// out every run otherwise.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("solver.time_limit", 5*time.Second)
	v.SetDefault("editor.command", defaultEditor())
	v.SetDefault("puzzles.dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "sudotui", "puzzles"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SUDOTUI_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "sudotui"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SUDOTUI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Solver.TimeLimit <= 0 {
		c.Solver.TimeLimit = 5 * time.Second
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("SUDOTUI_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "sudotui", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("solver.time_limit", cfg.Solver.TimeLimit.String())
	v.Set("editor.command", cfg.Editor.Command)
	v.Set("puzzles.dir", cfg.Puzzles.Dir)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
