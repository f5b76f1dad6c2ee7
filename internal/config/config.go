package config

import "os"

// Config carries the process environment read once at startup. A missing
// database configuration is tolerated; the service then runs degraded and
// every persistence endpoint fails with a storage error.
type Config struct {
	DatabaseURL  string
	DatabaseName string
	RedisAddr    string
	KafkaBrokers string
	Port         string
}

// Load reads the configuration from the environment.
func Load() *Config {
	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		Port:         os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	return cfg
}
