package env

import (
	"errors"

	"house_fund/internal/config"
)

type pgConfig struct {
	Dsn string `env:"PG_DSN"`
}

// NewPGConfig Ошибка, если PG_DSN не задан
func NewPGConfig() (config.PGConfig, error) {
	cfg := &pgConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if len(cfg.Dsn) == 0 {
		return nil, errors.New("pg dsn not found")
	}

	return cfg, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.Dsn
}
