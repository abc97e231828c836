package overlay

import (
	"math"
	"testing"

	"github.com/dotgrid-tools/dotgrid/pkg/errors"
)

const eps = 1e-9

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.SpacingMM != 10.0 {
		t.Errorf("SpacingMM = %v, want 10.0", cfg.SpacingMM)
	}
	if cfg.DiameterMM != 0.4 {
		t.Errorf("DiameterMM = %v, want 0.4", cfg.DiameterMM)
	}
	if cfg.ColorHex != "#dddddd" {
		t.Errorf("ColorHex = %v, want #dddddd", cfg.ColorHex)
	}
	if cfg.Opacity != 1.0 {
		t.Errorf("Opacity = %v, want 1.0", cfg.Opacity)
	}
}

func TestRadiusMM(t *testing.T) {
	cfg := Config{DiameterMM: 0.4}
	if got := cfg.RadiusMM(); math.Abs(got-0.2) > eps {
		t.Errorf("RadiusMM() = %v, want 0.2", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		r, g, b float64
	}{
		{name: "light gray", input: "#dddddd", r: 221.0 / 255, g: 221.0 / 255, b: 221.0 / 255},
		{name: "without hash", input: "dddddd", r: 221.0 / 255, g: 221.0 / 255, b: 221.0 / 255},
		{name: "black", input: "#000000", r: 0, g: 0, b: 0},
		{name: "white", input: "#ffffff", r: 1, g: 1, b: 1},
		{name: "mixed channels", input: "#ff8000", r: 1, g: 128.0 / 255, b: 0},
		{name: "uppercase", input: "#FF8000", r: 1, g: 128.0 / 255, b: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, err := ParseHexColor(tt.input)
			if err != nil {
				t.Fatalf("ParseHexColor(%q) error: %v", tt.input, err)
			}
			if math.Abs(r-tt.r) > eps || math.Abs(g-tt.g) > eps || math.Abs(b-tt.b) > eps {
				t.Errorf("ParseHexColor(%q) = (%v, %v, %v), want (%v, %v, %v)",
					tt.input, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestParseHexColorInvalid(t *testing.T) {
	inputs := []string{"", "#fff", "#fffffff", "#gggggg", "not a color", "#dd dd"}

	for _, input := range inputs {
		_, _, _, err := ParseHexColor(input)
		if err == nil {
			t.Errorf("ParseHexColor(%q) should fail", input)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidParameter) {
			t.Errorf("ParseHexColor(%q) error code = %q, want %q",
				input, errors.GetCode(err), errors.ErrCodeInvalidParameter)
		}
	}
}

func TestConfigRGB(t *testing.T) {
	cfg := Config{ColorHex: "#dddddd"}
	r, g, b, err := cfg.RGB()
	if err != nil {
		t.Fatalf("RGB() error: %v", err)
	}
	want := 221.0 / 255
	if math.Abs(r-want) > eps || math.Abs(g-want) > eps || math.Abs(b-want) > eps {
		t.Errorf("RGB() = (%v, %v, %v), want all %v", r, g, b, want)
	}
}

func TestSideOpposite(t *testing.T) {
	if SideLeft.Opposite() != SideRight {
		t.Error("SideLeft.Opposite() != SideRight")
	}
	if SideRight.Opposite() != SideLeft {
		t.Error("SideRight.Opposite() != SideLeft")
	}
}
