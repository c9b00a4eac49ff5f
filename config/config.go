package config

import (
	"fmt"

	"suggestbox/model"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads config.yaml from dir, applies defaults and env overrides,
// and validates the result. A config that fails validation is a startup error.
func Load(dir string) (*model.Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	v.SetDefault("suggest.database_path", "./data/suggest.db")
	v.SetDefault("suggest.dead_letter_capacity", 64)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg model.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
