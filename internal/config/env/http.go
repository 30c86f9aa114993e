package env

import "house_fund/internal/config"

type httpConfig struct {
	Addr string `env:"HTTP_ADDRESS" envDefault:":8080"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	cfg := &httpConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.Addr
}
