package astro

import (
	"math"
	"testing"
)

func TestFormatRAHMS(t *testing.T) {
	tests := []struct {
		ra   float64
		want string
	}{
		{180, "12h 0m 0.0s"},
		{0, "0h 0m 0.0s"},
		{83.822083, "5h 35m 17.3s"},
		{359.9999999, "0h 0m 0.0s"}, // rounds up and wraps at 24h
		{15.25, "1h 1m 0.0s"},
	}

	for _, tt := range tests {
		if got := FormatRAHMS(tt.ra); got != tt.want {
			t.Errorf("FormatRAHMS(%v) = %q, want %q", tt.ra, got, tt.want)
		}
	}
}

func TestFormatDecDM(t *testing.T) {
	tests := []struct {
		dec  float64
		want string
	}{
		{-45.5, "-45° 30'"},
		{0, "+0° 0'"},
		{89.9999, "+90° 0'"},
		{-0.5, "-0° 30'"},
		{22.0145, "+22° 1'"},
	}

	for _, tt := range tests {
		if got := FormatDecDM(tt.dec); got != tt.want {
			t.Errorf("FormatDecDM(%v) = %q, want %q", tt.dec, got, tt.want)
		}
	}
}

func TestFormatDecDMS(t *testing.T) {
	tests := []struct {
		dec  float64
		want string
	}{
		{-45.504167, "-45° 30' 15\""},
		{0, "+0° 0' 0\""},
		{-0.25, "-0° 15' 0\""},
	}

	for _, tt := range tests {
		if got := FormatDecDMS(tt.dec); got != tt.want {
			t.Errorf("FormatDecDMS(%v) = %q, want %q", tt.dec, got, tt.want)
		}
	}
}

func TestFormatColumns(t *testing.T) {
	if got := FormatRAColumns(180.5); got != "12 02 00" {
		t.Errorf("FormatRAColumns(180.5) = %q, want %q", got, "12 02 00")
	}
	if got := FormatDecColumns(-5.125); got != "-05 07 30" {
		t.Errorf("FormatDecColumns(-5.125) = %q, want %q", got, "-05 07 30")
	}
	if got := FormatDecColumns(45.5); got != "+45 30 00" {
		t.Errorf("FormatDecColumns(45.5) = %q, want %q", got, "+45 30 00")
	}
}

func TestFormatMarked(t *testing.T) {
	if got := FormatRAHourMark(188.7333333); got != "12hr 34' 56\"" {
		t.Errorf("FormatRAHourMark = %q, want %q", got, "12hr 34' 56\"")
	}
	if got := FormatDecDegMark(45.5); got != "+45° 30' 00\"" {
		t.Errorf("FormatDecDegMark = %q, want %q", got, "+45° 30' 00\"")
	}
	if got := FormatDecDegMark(-0.5); got != "-00° 30' 00\"" {
		t.Errorf("FormatDecDegMark = %q, want %q", got, "-00° 30' 00\"")
	}
}

func TestValidators(t *testing.T) {
	if !IsValidCoordinate(0, 0) || !IsValidCoordinate(359.999, -90) {
		t.Error("valid coordinates rejected")
	}
	if IsValidCoordinate(360, 0) || IsValidCoordinate(-1, 0) ||
		IsValidCoordinate(0, 91) || IsValidCoordinate(math.NaN(), 0) ||
		IsValidCoordinate(0, math.Inf(1)) {
		t.Error("invalid coordinates accepted")
	}

	if !IsValidFOV(1.5) || IsValidFOV(0) || IsValidFOV(-2) ||
		IsValidFOV(181) || IsValidFOV(math.NaN()) {
		t.Error("IsValidFOV range check failed")
	}

	if !IsValidRotation(0) || !IsValidRotation(-180) || !IsValidRotation(360) ||
		IsValidRotation(361) || IsValidRotation(math.Inf(-1)) {
		t.Error("IsValidRotation range check failed")
	}
}

func TestParseRA(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"180", 180},
		{"187.5", 187.5},
		{"-90", 270}, // decimal degrees are normalized
		{"12h 30m", 187.5},
		{"12 30 00", 187.5},
		{"5h 35m 17.3s", 83.82208333},
		{"12:30:00", 187.5},
	}

	for _, tt := range tests {
		got, err := ParseRA(tt.in)
		if err != nil {
			t.Errorf("ParseRA(%q) error: %v", tt.in, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("ParseRA(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseRA("not an angle"); err == nil {
		t.Error("ParseRA accepted garbage")
	}
}

func TestParseDec(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"-45.5", -45.5},
		{"45 30", 45.5},
		{"-45 30 15", -45.504167},
		{"-45° 30' 15\"", -45.504167},
		{"+22 30", 22.5},
	}

	for _, tt := range tests {
		got, err := ParseDec(tt.in)
		if err != nil {
			t.Errorf("ParseDec(%q) error: %v", tt.in, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-5 {
			t.Errorf("ParseDec(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDec("95"); err == nil {
		t.Error("ParseDec accepted out-of-range declination")
	}
	if _, err := ParseDec("xx yy"); err == nil {
		t.Error("ParseDec accepted garbage")
	}
}
