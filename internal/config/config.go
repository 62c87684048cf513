package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the runtime configuration, loaded from environment variables.
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// LedgerAddr is the fixed, well-known address of the external token
	// ledger.
	LedgerAddr string `env:"LEDGER_ADDR" envDefault:"localhost:50051"`
	// CustodialAccount receives pledged tokens until disbursement or
	// refund.
	CustodialAccount string `env:"CUSTODIAL_ACCOUNT" envDefault:"crowdfund-custodial"`

	RedisAddr string `env:"REDIS_ADDR"`
	MySQLDSN  string `env:"MYSQL_DSN" envDefault:"root:root@tcp(localhost:3306)/crowdfund?parseTime=true"`

	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1h"`
	WorkerCount   int           `env:"WORKER_COUNT" envDefault:"4"`
	QueueSize     int           `env:"QUEUE_SIZE" envDefault:"1024"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
