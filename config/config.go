package config

import (
	"flag"
	"os"
	"sync"
	"time"
)

const (
	defaultServerAddress = ":8080"
	defaultDatabaseDSN   = ""
	defaultRedisAddr     = ""
	defaultLogLevel      = "debug"
	defaultSweepInterval = 60 * time.Second
	defaultAuthTokenKey  = ""
)

type Config struct {
	ServerAddr    string
	DatabaseDSN   string
	RedisAddr     string
	LogLevel      string
	SweepInterval time.Duration
	AuthTokenKey  string
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		cfg := Config{}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddress, "campus eats server address")
		flag.StringVar(&cfg.DatabaseDSN, "d", defaultDatabaseDSN, "campus eats database DSN")
		flag.StringVar(&cfg.RedisAddr, "r", defaultRedisAddr, "redis address for realtime fan-out, empty for in-process hub")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
		flag.DurationVar(&cfg.SweepInterval, "s", defaultSweepInterval, "report escalation sweep interval")
		flag.StringVar(&cfg.AuthTokenKey, "k", defaultAuthTokenKey, "hex-encoded auth token signing key")

		flag.Parse()

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.ServerAddr = runAddrEnv
		}
		if dataBaseURIEnv := os.Getenv("DATABASE_URI"); dataBaseURIEnv != "" {
			cfg.DatabaseDSN = dataBaseURIEnv
		}
		if redisAddrEnv := os.Getenv("REDIS_ADDRESS"); redisAddrEnv != "" {
			cfg.RedisAddr = redisAddrEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}
		if sweepEnv := os.Getenv("SWEEP_INTERVAL"); sweepEnv != "" {
			if d, err := time.ParseDuration(sweepEnv); err == nil {
				cfg.SweepInterval = d
			}
		}
		if keyEnv := os.Getenv("AUTH_TOKEN_KEY"); keyEnv != "" {
			cfg.AuthTokenKey = keyEnv
		}

		singleton = &cfg
	})

	return singleton, nil
}
