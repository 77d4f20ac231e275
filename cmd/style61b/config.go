package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dhamidi/style61b/config"
)

// configCandidates are tried in order when no configuration file is named.
var configCandidates = []string{"style61b.yaml", "style61b.yml", "style61b.toml"}

func loadConfig(path, suppressionsPath string) (*config.Config, error) {
	cfg := config.Default()
	if path == "" {
		for _, candidate := range configCandidates {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			} else if !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		log.Debugf("using configuration %s", path)
		cfg = loaded
	}

	if suppressionsPath != "" {
		suppressions, err := config.LoadSuppressions(suppressionsPath)
		if err != nil {
			return nil, err
		}
		cfg.Suppressions = append(cfg.Suppressions, suppressions...)
	}
	return cfg, nil
}
