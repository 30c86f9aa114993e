package env

import (
	"fmt"

	cenv "github.com/caarlos0/env/v11"
)

// parseEnv Заполнить структуру из переменных окружения
func parseEnv(target any) error {
	if err := cenv.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
