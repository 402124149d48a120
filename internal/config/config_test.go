package config

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/gpsdocfg/internal/errors"
	"github.com/agbru/gpsdocfg/internal/rational"
	"github.com/agbru/gpsdocfg/internal/solver"
)

func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	var errBuf bytes.Buffer
	return ParseConfig("gpsdocfg", args, &errBuf)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parse(t, "1000")
	if err != nil {
		t.Fatalf("ParseConfig() returned unexpected error: %v", err)
	}
	if cfg.F1 != rational.FromInt(1000) {
		t.Errorf("Expected F1=1000/1, got %s", cfg.F1)
	}
	if cfg.F2 != cfg.F1 {
		t.Errorf("Single frequency should apply to both outputs, got F2=%s", cfg.F2)
	}
	if cfg.Mode != solver.FindGood {
		t.Errorf("Expected default mode good, got %s", cfg.Mode)
	}
	if cfg.Limits != solver.DefaultLimits {
		t.Errorf("Expected default limits, got %+v", cfg.Limits)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Expected default timeout, got %s", cfg.Timeout)
	}
}

func TestParseConfigTwoFrequencies(t *testing.T) {
	cfg, err := parse(t, "10M", "96k")
	if err != nil {
		t.Fatalf("ParseConfig() returned unexpected error: %v", err)
	}
	if cfg.F1 != rational.FromInt(10_000_000) {
		t.Errorf("Expected F1=10 MHz, got %s", cfg.F1)
	}
	if cfg.F2 != rational.FromInt(96_000) {
		t.Errorf("Expected F2=96 kHz, got %s", cfg.F2)
	}
}

func TestParseConfigInterleavedFlags(t *testing.T) {
	// Flags may follow the positional frequencies.
	cfg, err := parse(t, "1000.31", "2345.61", "--best", "-v")
	if err != nil {
		t.Fatalf("ParseConfig() returned unexpected error: %v", err)
	}
	if cfg.Mode != solver.FindBest {
		t.Errorf("Expected mode best, got %s", cfg.Mode)
	}
	if !cfg.Verbose {
		t.Error("Expected verbose to be set")
	}
	if cfg.F1 != rational.MustNew(100031, 100) {
		t.Errorf("Expected F1=100031/100, got %s", cfg.F1)
	}
	if cfg.F2 != rational.MustNew(234561, 100) {
		t.Errorf("Expected F2=234561/100, got %s", cfg.F2)
	}
}

func TestParseConfigModes(t *testing.T) {
	cases := []struct {
		flag string
		want solver.Mode
	}{
		{"--any", solver.FindAny},
		{"--best", solver.FindBest},
		{"--all", solver.FindAll},
	}
	for _, tc := range cases {
		t.Run(tc.flag, func(t *testing.T) {
			cfg, err := parse(t, "1000", tc.flag)
			if err != nil {
				t.Fatalf("ParseConfig() returned unexpected error: %v", err)
			}
			if cfg.Mode != tc.want {
				t.Errorf("Expected mode %s, got %s", tc.want, cfg.Mode)
			}
		})
	}
}

func TestParseConfigRejections(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"no frequency", nil},
		{"too many frequencies", []string{"1", "2", "3"}},
		{"conflicting modes", []string{"1000", "--any", "--best"}},
		{"conflicting outputs", []string{"1000", "--cmdline", "--json"}},
		{"bad frequency", []string{"1.2.3"}},
		{"bad second frequency", []string{"1000", "1kk"}},
		{"negative timeout", []string{"1000", "--timeout", "-5s"}},
		{"empty vco range", []string{"1000", "--vco-lo", "100", "--vco-hi", "50"}},
		{"unknown flag", []string{"1000", "--frobnicate"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var errBuf bytes.Buffer
			_, err := ParseConfig("gpsdocfg", tc.args, &errBuf)
			if err == nil {
				t.Fatal("ParseConfig() should have failed")
			}
			var inputErr apperrors.InputError
			if !errors.As(err, &inputErr) {
				t.Errorf("Expected InputError, got %T: %v", err, err)
			}
		})
	}
}

func TestParseConfigHelp(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := ParseConfig("gpsdocfg", []string{"--help"}, &errBuf)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("Expected flag.ErrHelp, got %v", err)
	}
	if !strings.Contains(errBuf.String(), "Usage: gpsdocfg f1 [f2]") {
		t.Errorf("Usage text missing from help output:\n%s", errBuf.String())
	}
	if !strings.Contains(errBuf.String(), "Exit status:") {
		t.Error("Exit status section missing from help output")
	}
}

func TestParseConfigLimitOverrides(t *testing.T) {
	cfg, err := parse(t, "1000", "--vco-lo", "4000000000", "--vco-hi", "5000000000", "--gps-hi", "5000000")
	if err != nil {
		t.Fatalf("ParseConfig() returned unexpected error: %v", err)
	}
	if cfg.Limits.VCOLo != 4_000_000_000 || cfg.Limits.VCOHi != 5_000_000_000 {
		t.Errorf("VCO override not applied: %+v", cfg.Limits)
	}
	if cfg.Limits.GPSHi != 5_000_000 {
		t.Errorf("GPS override not applied: %+v", cfg.Limits)
	}
	if cfg.Limits.F3Lo != solver.DefaultLimits.F3Lo {
		t.Errorf("Untouched limit changed: %+v", cfg.Limits)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Run("environment fills unset flags", func(t *testing.T) {
		t.Setenv(EnvPrefix+"TIMEOUT", "90s")
		t.Setenv(EnvPrefix+"GPS_HI", "8000000")

		cfg, err := parse(t, "1000")
		if err != nil {
			t.Fatalf("ParseConfig() returned unexpected error: %v", err)
		}
		if cfg.Timeout != 90*time.Second {
			t.Errorf("Expected timeout 90s from environment, got %s", cfg.Timeout)
		}
		if cfg.Limits.GPSHi != 8_000_000 {
			t.Errorf("Expected GPS ceiling from environment, got %d", cfg.Limits.GPSHi)
		}
	})

	t.Run("explicit flags win over environment", func(t *testing.T) {
		t.Setenv(EnvPrefix+"TIMEOUT", "90s")

		cfg, err := parse(t, "1000", "--timeout", "5s")
		if err != nil {
			t.Fatalf("ParseConfig() returned unexpected error: %v", err)
		}
		if cfg.Timeout != 5*time.Second {
			t.Errorf("Flag should beat environment, got %s", cfg.Timeout)
		}
	})

	t.Run("conventional NO_COLOR is honored", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		cfg, err := parse(t, "1000")
		if err != nil {
			t.Fatalf("ParseConfig() returned unexpected error: %v", err)
		}
		if !cfg.NoColor {
			t.Error("NO_COLOR should disable coloring")
		}
	})

	t.Run("invalid environment values are ignored", func(t *testing.T) {
		t.Setenv(EnvPrefix+"GPS_HI", "not-a-number")

		cfg, err := parse(t, "1000")
		if err != nil {
			t.Fatalf("ParseConfig() returned unexpected error: %v", err)
		}
		if cfg.Limits.GPSHi != solver.DefaultLimits.GPSHi {
			t.Errorf("Invalid environment value should be ignored, got %d", cfg.Limits.GPSHi)
		}
	})
}

func TestValidate(t *testing.T) {
	valid := AppConfig{
		F1:     rational.FromInt(1000),
		F2:     rational.FromInt(2000),
		Limits: solver.DefaultLimits,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Valid config rejected: %v", err)
	}

	zeroF := valid
	zeroF.F1 = rational.Rat{}
	if err := zeroF.Validate(); err == nil {
		t.Error("Zero frequency should be rejected")
	}

	badF3 := valid
	badF3.Limits.F3Lo = 0
	if err := badF3.Validate(); err == nil {
		t.Error("Non-positive f3 floor should be rejected")
	}
}
