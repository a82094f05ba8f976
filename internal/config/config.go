// Package config loads host settings. The canvas model itself reads no
// configuration; the host passes the relevant values in.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"ShapeBoard/internal/board"

	"github.com/BurntSushi/toml"
)

type Config struct {
	CircleRadius float64 `toml:"circle_radius"`
	RectWidth    float64 `toml:"rect_width"`
	RectHeight   float64 `toml:"rect_height"`
	ExportDir    string  `toml:"export_dir"`
	Share        bool    `toml:"share"`
	SharePort    int     `toml:"share_port"`
	Advertise    bool    `toml:"advertise"`
}

func Default() Config {
	return Config{
		CircleRadius: board.DefaultSizes.CircleRadius,
		RectWidth:    board.DefaultSizes.RectWidth,
		RectHeight:   board.DefaultSizes.RectHeight,
		ExportDir:    ".",
		SharePort:    8888,
		Advertise:    true,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.CircleRadius <= 0 {
		return fmt.Errorf("circle_radius must be positive, got %g", c.CircleRadius)
	}
	if c.RectWidth <= 0 || c.RectHeight <= 0 {
		return fmt.Errorf("rect size must be positive, got %gx%g", c.RectWidth, c.RectHeight)
	}
	if c.SharePort <= 0 || c.SharePort > 65535 {
		return fmt.Errorf("share_port out of range: %d", c.SharePort)
	}
	return nil
}

func (c Config) Sizes() board.Defaults {
	return board.Defaults{CircleRadius: c.CircleRadius, RectWidth: c.RectWidth, RectHeight: c.RectHeight}
}
