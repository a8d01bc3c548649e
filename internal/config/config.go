// Package config reads runtime settings from the environment, after loading
// an optional .env file from the working directory.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	game_log "github.com/ingyamilmolinar/roadsign/internal/log"
)

const (
	envLogLevel = "ROADSIGN_LOG_LEVEL"
	envAssetDir = "ROADSIGN_ASSET_DIR"
	envMute     = "ROADSIGN_MUTE"
	envSeed     = "ROADSIGN_SEED"
)

type Config struct {
	LogLevel game_log.Level
	AssetDir string // empty means generated faces
	Mute     bool
	Seed     int64

	// Warnings collects settings that could not be parsed and were defaulted.
	Warnings []string
}

// Load reads .env files (missing files are ignored) and then the process
// environment. Variables already set in the environment win over .env.
func Load(files ...string) Config {
	_ = godotenv.Load(files...)
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary lookup function.
func FromLookup(lookup func(string) (string, bool)) Config {
	get := func(k, def string) string {
		if v, ok := lookup(k); ok && v != "" {
			return v
		}
		return def
	}

	var c Config
	lvl, ok := game_log.LevelFromString(get(envLogLevel, "info"))
	if !ok {
		c.Warnings = append(c.Warnings, envLogLevel+": unknown level, using INFO")
	}
	c.LogLevel = lvl
	c.AssetDir = get(envAssetDir, "")

	if v := get(envMute, ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.Warnings = append(c.Warnings, envMute+": "+err.Error())
		}
		c.Mute = b
	}

	c.Seed = time.Now().UnixNano()
	if v := get(envSeed, ""); v != "" {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.Warnings = append(c.Warnings, envSeed+": "+err.Error())
		} else {
			c.Seed = s
		}
	}
	return c
}
