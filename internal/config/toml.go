package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors the on-disk layout:
//
//	[search]
//	ignorecase = false
//	hlsearch = true
//
// Pointer fields distinguish an absent key from an explicit false, so a
// reload never clobbers a setting the file does not mention.
type fileConfig struct {
	Search searchSection `toml:"search"`
}

type searchSection struct {
	IgnoreCase      *bool `toml:"ignorecase"`
	HighlightSearch *bool `toml:"hlsearch"`
}

// LoadFile reads settings from a TOML file and applies them through the
// store's setters, so observers fire for any value that changes. A missing
// file is not an error.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if cfg.Search.IgnoreCase != nil {
		s.SetIgnoreCase(*cfg.Search.IgnoreCase)
	}
	if cfg.Search.HighlightSearch != nil {
		s.SetHighlightSearch(*cfg.Search.HighlightSearch)
	}

	return nil
}
