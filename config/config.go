package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Sim SimConfig `mapstructure:"sim"`
	NPC NPCConfig `mapstructure:"npc"`
}

type SimConfig struct {
	TickMs    int   `mapstructure:"tick_ms"`
	DurationS int   `mapstructure:"duration_s"`
	Seed      int64 `mapstructure:"seed"` // 0 seeds from the clock
	Debug     bool  `mapstructure:"debug"`
}

type NPCConfig struct {
	AlertDelayMs int `mapstructure:"alert_delay_ms"`
	AttackLimit  int `mapstructure:"attack_limit"`
	PatrolPoints int `mapstructure:"patrol_points"`
	SightRange   int `mapstructure:"sight_range"`
	FleeHP       int `mapstructure:"flee_hp"`
}

// Load reads config from the given YAML file path. A missing file is not an
// error; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("sim.tick_ms", 50)
	v.SetDefault("sim.duration_s", 10)
	v.SetDefault("sim.seed", 0)
	v.SetDefault("sim.debug", false)
	v.SetDefault("npc.alert_delay_ms", 500)
	v.SetDefault("npc.attack_limit", 3)
	v.SetDefault("npc.patrol_points", 4)
	v.SetDefault("npc.sight_range", 6)
	v.SetDefault("npc.flee_hp", 20)

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
