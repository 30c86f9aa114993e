package env

import (
	"time"

	"house_fund/internal/config"
)

type assetProviderConfig struct {
	Addr           string        `env:"ASSET_PROVIDER_URL"`
	RequestTimeout time.Duration `env:"ASSET_PROVIDER_TIMEOUT" envDefault:"20s"`
}

// NewAssetProviderConfig Пустой URL - генератор выключен, используются заглушки
func NewAssetProviderConfig() (config.AssetProviderConfig, error) {
	cfg := &assetProviderConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *assetProviderConfig) URL() string {
	return cfg.Addr
}

func (cfg *assetProviderConfig) Timeout() time.Duration {
	return cfg.RequestTimeout
}
