package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every variable except DEBUG.
const EnvPrefix = "TAGLOG"

// DebugEnv is the variable holding the initial enable specification.
const DebugEnv = "DEBUG"

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
}

// Load reads the configuration from the environment. When a value cannot
// be decoded the defaults are returned together with the error, keeping
// the DEBUG specification so filtering still works.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("debug", DebugEnv); err != nil {
		return Defaults(), err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		def := Defaults()
		def.Debug = v.GetString("debug")
		return def, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// LoadDotEnv loads the first existing .env file from paths (DotEnvPaths
// when empty) into the process environment. Variables already set win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = DotEnvPaths
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return nil
}

// setDefaults sets default values for every key so that AutomaticEnv
// can resolve them during Unmarshal
func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("debug", d.Debug)
	v.SetDefault("level", d.Level)
	v.SetDefault("colors", d.Colors)
	v.SetDefault("depth", d.Depth)
	v.SetDefault("trace", d.Trace)
	v.SetDefault("fd", d.FD)
	v.SetDefault("tag_width", d.TagWidth)
	v.SetDefault("level_width", d.LevelWidth)
}
