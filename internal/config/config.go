// Package config provides functionality for loading interpreter
// configuration parameters from a config file using the Viper library.
// It defines terminal behavior and prompt appearance settings. The
// defaults reproduce the interpreter's stock behavior, so running without
// a config file is the normal case, not an error the user sees twice.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configurable settings for the interpreter, including
// terminal behavior and prompt appearance.
type Config struct {
	Terminal Terminal `mapstructure:"terminal"` // Terminal-related settings
	Prompt   Prompt   `mapstructure:"prompt"`   // Prompt appearance settings
}

// Terminal defines settings related to terminal behavior: history file and
// limit, interrupt and exit prompts, and whether to clear the screen when
// the interpreter starts.
type Terminal struct {
	HistoryFile     string `mapstructure:"history_file"`     // Path to the history file
	HistoryLimit    int    `mapstructure:"history_limit"`    // Maximum number of history entries
	InterruptPrompt string `mapstructure:"interrupt_prompt"` // Text shown on Ctrl-C
	EOFPrompt       string `mapstructure:"exit_message"`     // Text shown on EOF/exit
	ClearOnStartup  bool   `mapstructure:"clear_on_startup"` // Clear the screen at startup
}

// Prompt defines settings related to the prompt appearance: the prompt
// text itself, its colour, and bold styling.
type Prompt struct {
	Text   string `mapstructure:"text"`   // Prompt text printed before each read
	Colour string `mapstructure:"colour"` // Colour name for the prompt, empty for none
	Bold   bool   `mapstructure:"bold"`   // Bold style for the prompt
}

// Load reads configuration from a file named "config" in the current
// directory using Viper, and unmarshals it into a Config instance. Returns
// a partial Config and an error if loading or unmarshaling fails; callers
// fall back to Default in that case.
func Load() (*Config, error) {

	viper.AddConfigPath(".")
	viper.SetConfigName("config")

	cfg := new(Config)

	if err := viper.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("failed to load config: %v", err)
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	return cfg, nil
}

// Default returns a Config matching the interpreter's stock behavior:
// the plain "QWERTYSH> " prompt with no colour, a cleared screen at
// startup, and history kept under the user's home directory. It is used
// as a fallback when loading a configuration file fails.
func Default() *Config {

	cfg := new(Config)

	cfg.Terminal.HistoryFile = filepath.Join(os.Getenv("HOME"), ".qwertysh_history")
	cfg.Terminal.HistoryLimit = 1000
	cfg.Terminal.InterruptPrompt = "^C"
	cfg.Terminal.EOFPrompt = "exit"
	cfg.Terminal.ClearOnStartup = true

	cfg.Prompt.Text = "QWERTYSH> "
	cfg.Prompt.Colour = ""
	cfg.Prompt.Bold = false

	return cfg
}
