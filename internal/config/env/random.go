package env

import "house_fund/internal/config"

type randomConfig struct {
	RandomSeed int64 `env:"RANDOM_SEED"`
}

func NewRandomConfig() (config.RandomConfig, error) {
	cfg := &randomConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *randomConfig) Seed() int64 {
	return cfg.RandomSeed
}
