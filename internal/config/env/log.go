package env

import "house_fund/internal/config"

type logConfig struct {
	Lvl string `env:"LOG_LEVEL" envDefault:"info"`
}

func NewLogConfig() (config.LogConfig, error) {
	cfg := &logConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *logConfig) Level() string {
	return cfg.Lvl
}
