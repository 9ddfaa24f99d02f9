// Package config reads the optional cardgen.toml that sits next to the
// card assets.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/AnyUserName/cardgen/internal/profile"
	"github.com/BurntSushi/toml"
)

// FileName is looked up in the assets directory when no --config is given.
const FileName = "cardgen.toml"

// Config mirrors the build flags. Zero values mean "not set".
type Config struct {
	Font     string  `toml:"font"`
	Profile  string  `toml:"profile"`
	FontSize float64 `toml:"font_size"`
	OriginX  *int    `toml:"origin_x"`
	OriginY  *int    `toml:"origin_y"`
	DPI      int     `toml:"dpi"`
	Out      string  `toml:"out"`
	Workers  int     `toml:"workers"`

	// Path is the file the config was read from, empty if none.
	Path string `toml:"-"`
}

// Load reads the config. With an explicit path the file must exist;
// otherwise <assetsDir>/cardgen.toml is used when present.
func Load(explicit, assetsDir string) (*Config, error) {
	path := explicit
	if path == "" {
		path = filepath.Join(assetsDir, FileName)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undec[0].String())
	}
	cfg.Path = path

	// Paths in the file are relative to the file itself.
	dir := filepath.Dir(path)
	if cfg.Font != "" && !filepath.IsAbs(cfg.Font) {
		cfg.Font = filepath.Join(dir, cfg.Font)
	}
	if cfg.Out != "" && !filepath.IsAbs(cfg.Out) {
		cfg.Out = filepath.Join(dir, cfg.Out)
	}
	return &cfg, nil
}

// Apply overlays the config onto a profile.
func (c *Config) Apply(p profile.Profile) profile.Profile {
	if c.FontSize > 0 {
		p.FontSize = c.FontSize
	}
	if c.DPI > 0 {
		p.DPI = c.DPI
	}
	if c.OriginX != nil {
		p.Origin.X = *c.OriginX
	}
	if c.OriginY != nil {
		p.Origin.Y = *c.OriginY
	}
	return p
}

// Save writes the config as TOML.
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
