// Package overlay renders single-page PDF drawables: the centered dot
// grid, an optional center border line, and half-page white masks used
// by split mode.
//
// Drawables are produced as in-memory PDF buffers and are meant to be
// merged onto source pages by the compose package. The package never
// inspects or rewrites existing page content.
package overlay

import (
	"strconv"
	"strings"

	"github.com/dotgrid-tools/dotgrid/pkg/errors"
)

// Default configuration values.
const (
	DefaultSpacingMM  = 10.0      // 1 cm between dot centers
	DefaultDiameterMM = 0.4       // 0.4 mm dot diameter
	DefaultColorHex   = "#dddddd" // light gray
	DefaultOpacity    = 1.0       // fully opaque
)

// Config describes the dot grid appearance. It is an immutable value;
// validation happens at the loading boundary, not here.
type Config struct {
	SpacingMM  float64 // center-to-center dot distance in millimeters
	DiameterMM float64 // dot diameter in millimeters
	ColorHex   string  // dot and border color as "#RRGGBB"
	Opacity    float64 // fill and stroke alpha in [0.0, 1.0]
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SpacingMM:  DefaultSpacingMM,
		DiameterMM: DefaultDiameterMM,
		ColorHex:   DefaultColorHex,
		Opacity:    DefaultOpacity,
	}
}

// RadiusMM returns the dot radius in millimeters.
func (c Config) RadiusMM() float64 { return c.DiameterMM / 2 }

// RGB returns the configured color as a 0-1 RGB triple.
func (c Config) RGB() (r, g, b float64, err error) {
	return ParseHexColor(c.ColorHex)
}

// ParseHexColor parses an "#RRGGBB" color (the leading "#" is
// optional) into a 0-1 RGB triple.
func ParseHexColor(s string) (r, g, b float64, err error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, 0, 0, errors.New(errors.ErrCodeInvalidParameter, "color must be in #RRGGBB format, got %q", s)
	}
	var channels [3]float64
	for i := range channels {
		v, perr := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if perr != nil {
			return 0, 0, 0, errors.New(errors.ErrCodeInvalidParameter, "color must be in #RRGGBB format, got %q", s)
		}
		channels[i] = float64(v) / 255
	}
	return channels[0], channels[1], channels[2], nil
}
