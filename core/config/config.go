package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

const (
	DefaultDemoValue    = 5
	DefaultHistoryFile  = "/tmp/factorial_history"
	DefaultConfirmAbove = 10000

	configDirName  = ".factorial"
	configFileName = "config.json"
)

type Config struct {
	DemoValue    int64  `json:"demo_value"`
	Verbose      bool   `json:"verbose"`
	HistoryFile  string `json:"history_file"`
	ConfirmAbove int64  `json:"confirm_above"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DemoValue:    DefaultDemoValue,
		HistoryFile:  DefaultHistoryFile,
		ConfirmAbove: DefaultConfirmAbove,
	}
}

// FilePath builds the path to ~/.factorial/config.json.
func FilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to detect home directory: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// LoadConfigFile reads configuration from ~/.factorial/config.json.
// Returns an error if the file does not exist or cannot be parsed.
func LoadConfigFile() (Config, error) {
	path, err := FilePath()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(path)
}

// LoadFrom reads configuration from path. Fields absent from the file keep
// their defaults.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// SaveTo writes cfg to path, creating parent directories.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}

// InteractiveSetup launches a CLI wizard to collect configuration from the user
// and saves the result to ~/.factorial/config.json.
func InteractiveSetup() (Config, error) {
	fmt.Println("🔧 Configuration (factorial)")

	cfg := Default()

	demoPrompt := promptui.Prompt{
		Label:    "Demo value",
		Default:  strconv.FormatInt(cfg.DemoValue, 10),
		Validate: validateNonNegative,
	}
	demo, err := demoPrompt.Run()
	if err != nil {
		return cfg, err
	}
	cfg.DemoValue, _ = strconv.ParseInt(strings.TrimSpace(demo), 10, 64)

	verboseSel := promptui.Select{
		Label: "Log every computation",
		Items: []string{"no", "yes"},
	}
	_, verbose, err := verboseSel.Run()
	if err != nil {
		return cfg, err
	}
	cfg.Verbose = verbose == "yes"

	confirmPrompt := promptui.Prompt{
		Label:    "Ask for confirmation above (0 disables)",
		Default:  strconv.FormatInt(cfg.ConfirmAbove, 10),
		Validate: validateNonNegative,
	}
	confirm, err := confirmPrompt.Run()
	if err != nil {
		return cfg, err
	}
	cfg.ConfirmAbove, _ = strconv.ParseInt(strings.TrimSpace(confirm), 10, 64)

	historyPrompt := promptui.Prompt{
		Label:   "History file",
		Default: cfg.HistoryFile,
	}
	history, err := historyPrompt.Run()
	if err != nil {
		return cfg, err
	}
	cfg.HistoryFile = strings.TrimSpace(history)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	path, err := FilePath()
	if err != nil {
		return cfg, err
	}
	if err := SaveTo(path, cfg); err != nil {
		return cfg, err
	}

	fmt.Printf("Configuration saved to %s ✅\n", path)

	return cfg, nil
}

func validateNonNegative(input string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n < 0 {
		return fmt.Errorf("value must not be negative")
	}
	return nil
}

// Validate validates the configuration and applies necessary fixes
func (c *Config) Validate() error {
	if c.DemoValue < 0 {
		return fmt.Errorf("demo_value must not be negative, got %d", c.DemoValue)
	}

	if c.ConfirmAbove < 0 {
		return fmt.Errorf("confirm_above must not be negative, got %d", c.ConfirmAbove)
	}

	if strings.TrimSpace(c.HistoryFile) == "" {
		c.HistoryFile = DefaultHistoryFile
	}

	return nil
}

// NeedsConfirmation reports whether computing n! should be confirmed first.
func (c *Config) NeedsConfirmation(n int64) bool {
	return c.ConfirmAbove > 0 && n > c.ConfirmAbove
}
