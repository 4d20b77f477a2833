package appconfig

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	expected := Config{
		MinEloDiff: -500,
		MaxEloDiff: 500,
		EloStep:    100,
		AllInCoef:  0.5,
		CacheSize:  1024,
		Seed:       1234,
	}
	if *cfg != expected {
		t.Errorf("got %+v, expected %+v", *cfg, expected)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("MIXEDSTRAT_MIN_ELO_DIFF", "-200")
	t.Setenv("MIXEDSTRAT_ALLIN_COEF", "0.25")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MinEloDiff != -200 || cfg.AllInCoef != 0.25 {
		t.Errorf("environment not applied: %+v", *cfg)
	}
	if cfg.MaxEloDiff != 500 {
		t.Errorf("default not kept: %+v", *cfg)
	}
}

func TestLoad_DoesNotValidate(t *testing.T) {
	t.Setenv("MIXEDSTRAT_ELO_STEP", "0")
	t.Setenv("MIXEDSTRAT_SEED", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("sweep fields should not be validated on load: %v", err)
	}
	if cfg.Seed != 7 {
		t.Errorf("seed = %v, expected 7", cfg.Seed)
	}
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("MIXEDSTRAT_SEED", "not-a-number")

	cfg, err := Load()
	if err == nil {
		t.Error("expected error for malformed seed")
	}
	if cfg == nil {
		t.Error("config should be returned even on error")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{MinEloDiff: -500, MaxEloDiff: 500, EloStep: 100, CacheSize: 16}
	if err := valid.Validate(); err != nil {
		t.Errorf("%+v: unexpected error: %v", valid, err)
	}

	testCases := map[string]func(c *Config){
		"zero step":      func(c *Config) { c.EloStep = 0 },
		"inverted range": func(c *Config) { c.MinEloDiff, c.MaxEloDiff = 500, -500 },
		"zero cache":     func(c *Config) { c.CacheSize = 0 },
	}
	for name, modify := range testCases {
		c := valid
		modify(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: expected error for %+v", name, c)
		}
	}
}
