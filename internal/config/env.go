// Package config provides the configuration management for the gpsdocfg
// tool. This file contains environment variable utilities for
// configuration override.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// getEnvInt64 returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as int64, or the default value if
// not set or invalid.
func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseInt(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as bool, or the default value if not
// set. Accepts "true", "1", "yes" as true; "false", "0", "no" as false
// (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// getEnvDuration returns the value of the environment variable with the
// given key (prefixed with EnvPrefix) parsed as time.Duration, or the
// default value if not set or invalid. Accepts formats like "5m", "30s".
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable
// overrides: explicit flags always win over the environment.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// applyEnvOverrides overrides configuration values from the environment
// for every flag that was not explicitly set on the command line.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "timeout") {
		config.Timeout = getEnvDuration("TIMEOUT", config.Timeout)
	}
	if !isFlagSet(fs, "quiet") && !isFlagSet(fs, "q") {
		config.Quiet = getEnvBool("QUIET", config.Quiet)
	}
	if !isFlagSet(fs, "no-color") {
		config.NoColor = getEnvBool("NO_COLOR", config.NoColor)
		// The conventional NO_COLOR variable (no prefix) is honored too.
		if os.Getenv("NO_COLOR") != "" {
			config.NoColor = true
		}
	}
	if !isFlagSet(fs, "vco-lo") {
		config.Limits.VCOLo = getEnvInt64("VCO_LO", config.Limits.VCOLo)
	}
	if !isFlagSet(fs, "vco-hi") {
		config.Limits.VCOHi = getEnvInt64("VCO_HI", config.Limits.VCOHi)
	}
	if !isFlagSet(fs, "f3-lo") {
		config.Limits.F3Lo = getEnvInt64("F3_LO", config.Limits.F3Lo)
	}
	if !isFlagSet(fs, "f3-hi") {
		config.Limits.F3Hi = getEnvInt64("F3_HI", config.Limits.F3Hi)
	}
	if !isFlagSet(fs, "gps-hi") {
		config.Limits.GPSHi = getEnvInt64("GPS_HI", config.Limits.GPSHi)
	}
}
