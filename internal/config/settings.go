package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"strandsim/internal/combat"
)

// Settings are the run parameters read from sim.yaml.
type Settings struct {
	Aggression     combat.Aggression
	Seed           int64
	DurationMs     float64
	TickMs         float64
	LowHPThreshold float64
	ChargePerTick  float64
	ContactDamage  float64
	ArenaWidth     float64
	ArenaHeight    float64
	LogLevel       string
	Store          string
}

func (s Settings) Arena() combat.Vec2 { return combat.Vec2{X: s.ArenaWidth, Y: s.ArenaHeight} }

func setDefaults(v *viper.Viper) {
	v.SetDefault("aggression", "normal")
	v.SetDefault("seed", 12345)
	v.SetDefault("durationMs", 120000)
	v.SetDefault("tickMs", combat.TickMillis)
	v.SetDefault("lowHpThreshold", 0.3)
	v.SetDefault("chargePerTick", 0.05)
	v.SetDefault("contactDamage", 0.4)
	v.SetDefault("arena.width", 960)
	v.SetDefault("arena.height", 640)
	v.SetDefault("logLevel", "info")
	v.SetDefault("store", "")
}

// LoadSettings reads sim.yaml from dir on top of the defaults. The file is optional.
func LoadSettings(dir string) (Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName("sim")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var missing viper.ConfigFileNotFoundError
		if !errors.As(err, &missing) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (Settings, error) {
	agg, ok := combat.ParseAggression(v.GetString("aggression"))
	if !ok {
		return Settings{}, fmt.Errorf("unknown aggression %q", v.GetString("aggression"))
	}
	s := Settings{
		Aggression:     agg,
		Seed:           v.GetInt64("seed"),
		DurationMs:     v.GetFloat64("durationMs"),
		TickMs:         v.GetFloat64("tickMs"),
		LowHPThreshold: v.GetFloat64("lowHpThreshold"),
		ChargePerTick:  v.GetFloat64("chargePerTick"),
		ContactDamage:  v.GetFloat64("contactDamage"),
		ArenaWidth:     v.GetFloat64("arena.width"),
		ArenaHeight:    v.GetFloat64("arena.height"),
		LogLevel:       v.GetString("logLevel"),
		Store:          v.GetString("store"),
	}
	if s.TickMs <= 0 {
		return Settings{}, fmt.Errorf("tickMs must be positive, got %v", s.TickMs)
	}
	if s.LowHPThreshold < 0 || s.LowHPThreshold > 1 {
		return Settings{}, fmt.Errorf("lowHpThreshold %v outside [0,1]", s.LowHPThreshold)
	}
	return s, nil
}
