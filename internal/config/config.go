package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Address       string  `env:"RUN_ADDRESS"    envDefault:"localhost:8080"`
	LogLvl        string  `env:"LOG_LVL"        envDefault:"info"`
	BonusTopSize  int     `env:"BONUS_TOP_SIZE" envDefault:"50"`
	BreakdownSize int     `env:"BREAKDOWN_SIZE" envDefault:"10"`
	BonusPool     float64 `env:"BONUS_POOL"     envDefault:"50000"`
}

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.IntVar(&cfg.BonusTopSize, "k", cfg.BonusTopSize, "size of the top subset eligible for bonuses")
	flag.IntVar(&cfg.BreakdownSize, "b", cfg.BreakdownSize, "number of top players in the points breakdown")
	flag.Float64Var(&cfg.BonusPool, "p", cfg.BonusPool, "default bonus pool amount")
	flag.Parse()

	if cfg.BonusTopSize <= 0 {
		cfg.BonusTopSize = 50
	}
	if cfg.BreakdownSize <= 0 {
		cfg.BreakdownSize = 10
	}

	return cfg
}
