package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileName is the config file name searched in the lookup directories.
const FileName = "ordtree.toml"

// applyTomlFile decodes path and copies every key the file defines onto
// cfg. Keys absent from the file leave cfg untouched, so defaults survive.
func applyTomlFile(path string, cfg *Config) error {
	var fileCfg Config
	md, err := toml.DecodeFile(path, &fileCfg)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: %s: unknown key %q", ErrInvalidConfig, path, undecoded[0].String())
	}

	if md.IsDefined("keys") {
		cfg.Keys = fileCfg.Keys
	}
	if md.IsDefined("root") {
		cfg.Root = fileCfg.Root
	}
	if md.IsDefined("gen") {
		cfg.Gen = fileCfg.Gen
	}
	if md.IsDefined("count") {
		cfg.Count = fileCfg.Count
	}
	if md.IsDefined("seed") {
		cfg.Seed = fileCfg.Seed
	}
	if md.IsDefined("order") {
		cfg.Order = fileCfg.Order
	}
	if md.IsDefined("format") {
		cfg.Format = fileCfg.Format
	}
	if md.IsDefined("log-level") {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if md.IsDefined("debug") {
		cfg.Debug = fileCfg.Debug
	}

	return nil
}

// searchTomlFile returns customPath if given (it must exist), otherwise the
// first existing path in lookupPaths, otherwise "".
func searchTomlFile(customPath string, lookupPaths []string) (string, error) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err != nil {
			return "", fmt.Errorf("no such file: %s", customPath)
		}

		return customPath, nil
	}

	for _, p := range lookupPaths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	// A missing config file is not an error.
	return "", nil
}
