package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	flip "github.com/grindlemire/go-flip"
)

// EnvPrefix prefixes every environment override, e.g. FLIPDEMO_DURATION.
const EnvPrefix = "FLIPDEMO"

type demoConfig struct {
	Items     int
	Duration  time.Duration
	FPS       int
	Direction flip.Direction
	Wrap      bool
	DebugLog  string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("items", 6)
	v.SetDefault("duration", flip.DefaultFlipDuration)
	v.SetDefault("fps", 60)
	v.SetDefault("direction", "row")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the optional config file and resolves every setting from
// flags, environment and file, in that order of precedence.
func loadConfig(v *viper.Viper) (demoConfig, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return demoConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := demoConfig{
		Items:    v.GetInt("items"),
		Duration: v.GetDuration("duration"),
		FPS:      v.GetInt("fps"),
		Wrap:     v.GetBool("wrap"),
		DebugLog: v.GetString("debug-log"),
	}
	switch dir := strings.ToLower(v.GetString("direction")); dir {
	case "", "row":
		cfg.Direction = flip.Row
	case "column", "col":
		cfg.Direction = flip.Column
	default:
		return cfg, fmt.Errorf("unknown direction %q", dir)
	}

	if cfg.Items < 1 {
		return cfg, errors.New("items must be at least 1")
	}
	if cfg.Duration < 0 {
		return cfg, errors.New("duration must not be negative")
	}
	return cfg, nil
}
