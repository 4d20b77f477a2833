// Package appconfig loads command defaults from the environment. Flags
// given on the command line take precedence over these values, so callers
// validate with Validate after flag.Parse.
package appconfig

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

type Config struct {
	MinEloDiff float64 `env:"MIXEDSTRAT_MIN_ELO_DIFF" env-default:"-500"`
	MaxEloDiff float64 `env:"MIXEDSTRAT_MAX_ELO_DIFF" env-default:"500"`
	EloStep    float64 `env:"MIXEDSTRAT_ELO_STEP" env-default:"100"`
	AllInCoef  float64 `env:"MIXEDSTRAT_ALLIN_COEF" env-default:"0.5"`
	CacheSize  int     `env:"MIXEDSTRAT_CACHE_SIZE" env-default:"1024"`
	Seed       int64   `env:"MIXEDSTRAT_SEED" env-default:"1234"`
}

// Load reads Config from environment variables. The returned Config is
// never nil: fields that could not be read keep their zero value, so flags
// can still be registered before the error is reported.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return cfg, errors.Wrap(err, "reading environment")
	}

	return cfg, nil
}

// Validate checks the fields used by sweeps.
func (c *Config) Validate() error {
	if c.EloStep <= 0 {
		return errors.Errorf("ELO step must be positive, got %v", c.EloStep)
	}
	if c.MaxEloDiff < c.MinEloDiff {
		return errors.Errorf("max ELO difference %v is below min %v", c.MaxEloDiff, c.MinEloDiff)
	}
	if c.CacheSize <= 0 {
		return errors.Errorf("cache size must be positive, got %v", c.CacheSize)
	}
	return nil
}
