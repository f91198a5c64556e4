// Package config holds the command-line tool's settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NethermindEth/eth-rlp-verify/eras"
)

const MaxWorkers = 256

type Config struct {
	Chain      string `yaml:"chain"`
	LogLevel   string `yaml:"log_level"`
	LogPath    string `yaml:"log_path"`
	Workers    int    `yaml:"workers"`
	LedgerPath string `yaml:"ledger_path"`
}

var allowedLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// DefaultLedgerPath is where verdicts are recorded when ledger_path is set
// to "default".
func DefaultLedgerPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".eth-rlp-verify"
	}
	return filepath.Join(home, ".eth-rlp-verify")
}

func Default() Config {
	return Config{
		Chain:    "mainnet",
		LogLevel: "info",
		Workers:  4,
	}
}

// Load reads a YAML file on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LedgerPath == "default" {
		cfg.LedgerPath = DefaultLedgerPath()
	}
	return cfg, Validate(cfg)
}

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Chain) == "" {
		return errors.New("chain is required")
	}
	if _, err := ChainID(cfg); err != nil {
		return fmt.Errorf("invalid chain: %w", err)
	}
	logLevel := strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if _, ok := allowedLogLevels[logLevel]; !ok {
		return fmt.Errorf("invalid log_level %q", cfg.LogLevel)
	}
	if cfg.Workers <= 0 {
		return errors.New("workers must be > 0")
	}
	if cfg.Workers > MaxWorkers {
		return fmt.Errorf("workers must be <= %d", MaxWorkers)
	}
	return nil
}

// ChainID resolves the configured chain name or id.
func ChainID(cfg Config) (uint64, error) {
	return eras.ParseChain(cfg.Chain)
}
