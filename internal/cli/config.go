package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/dotgrid-tools/dotgrid/pkg/overlay"
)

// fileConfig mirrors the optional TOML configuration file. Pointer
// fields distinguish "absent" from zero values.
//
// Example file:
//
//	spacing = 10.0     # millimeters between dot centers
//	diameter = 0.4     # dot diameter in millimeters
//	color = "#dddddd"  # dot color
//	opacity = 1.0      # fill and stroke alpha
type fileConfig struct {
	Spacing  *float64 `toml:"spacing"`
	Diameter *float64 `toml:"diameter"`
	Color    *string  `toml:"color"`
	Opacity  *float64 `toml:"opacity"`
}

// defaultConfigPath returns the per-user config file location
// (e.g. ~/.config/dotgrid/config.toml on Linux). Empty if the user
// config directory cannot be determined.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dotgrid", "config.toml")
}

// loadConfig builds the overlay configuration from defaults and the
// TOML file at path. Configuration problems are never fatal: a missing
// file is ignored, a malformed file or out-of-range value is logged as
// a warning and the default is kept. The returned value is always
// fully valid.
func loadConfig(logger *log.Logger, path string) overlay.Config {
	cfg := overlay.Default()
	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debugf("No config file at %s, using defaults", path)
		} else {
			logger.Warnf("Ignoring unreadable config %s: %v", path, err)
		}
		return cfg
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		logger.Warnf("Ignoring malformed config %s: %v", path, err)
		return cfg
	}

	source := filepath.Base(path)
	if fc.Spacing != nil {
		applySpacing(logger, &cfg, *fc.Spacing, source)
	}
	if fc.Diameter != nil {
		applyDiameter(logger, &cfg, *fc.Diameter, source)
	}
	if fc.Color != nil {
		applyColor(logger, &cfg, *fc.Color, source)
	}
	if fc.Opacity != nil {
		applyOpacity(logger, &cfg, *fc.Opacity, source)
	}
	return cfg
}

// applySpacing sets the dot spacing, keeping the default for
// non-positive values.
func applySpacing(logger *log.Logger, cfg *overlay.Config, v float64, source string) {
	if v <= 0 {
		logger.Warnf("%s: spacing must be positive, got %g; using default %g mm", source, v, overlay.DefaultSpacingMM)
		cfg.SpacingMM = overlay.DefaultSpacingMM
		return
	}
	cfg.SpacingMM = v
}

// applyDiameter sets the dot diameter, keeping the default for
// non-positive values.
func applyDiameter(logger *log.Logger, cfg *overlay.Config, v float64, source string) {
	if v <= 0 {
		logger.Warnf("%s: diameter must be positive, got %g; using default %g mm", source, v, overlay.DefaultDiameterMM)
		cfg.DiameterMM = overlay.DefaultDiameterMM
		return
	}
	cfg.DiameterMM = v
}

// applyColor sets the dot color, keeping the default for strings that
// are not #RRGGBB.
func applyColor(logger *log.Logger, cfg *overlay.Config, v, source string) {
	if _, _, _, err := overlay.ParseHexColor(v); err != nil {
		logger.Warnf("%s: color must be in #RRGGBB format, got %q; using default %s", source, v, overlay.DefaultColorHex)
		cfg.ColorHex = overlay.DefaultColorHex
		return
	}
	cfg.ColorHex = v
}

// applyOpacity sets the opacity, keeping the default for values
// outside [0.0, 1.0].
func applyOpacity(logger *log.Logger, cfg *overlay.Config, v float64, source string) {
	if v < 0 || v > 1 {
		logger.Warnf("%s: opacity must be within [0.0, 1.0], got %g; using default %g", source, v, overlay.DefaultOpacity)
		cfg.Opacity = overlay.DefaultOpacity
		return
	}
	cfg.Opacity = v
}
