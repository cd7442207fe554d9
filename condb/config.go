package condb

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Endpoint holds the connection settings for one database endpoint.
type Endpoint struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
}

// DSN renders the endpoint as a keyword/value connection string for pgx.
func (e Endpoint) DSN() string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s",
		e.Host, e.Port, e.Database, e.User, e.Password)
}

// Config holds both endpoints plus the pool sizing shared between them.
type Config struct {
	Primary Endpoint
	Replica Endpoint

	MinConns       int32
	MaxConns       int32
	AcquireTimeout time.Duration
	CloseTimeout   time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenv(key string, defSeconds int) time.Duration {
	return time.Duration(atoienv(key, defSeconds)) * time.Second
}

// LoadConfig collects the pool configuration from the environment, falling
// back to local-dev defaults. Unparsable numbers fall back the same way.
func LoadConfig() Config {
	return Config{
		Primary: Endpoint{
			Host:     getenv("PRIMARY_HOST", "localhost"),
			Port:     atoienv("PRIMARY_PORT", 5432),
			Database: getenv("PRIMARY_DB", "postgres"),
			User:     getenv("PRIMARY_USER", "user"),
			Password: getenv("PRIMARY_PASSWORD", "password"),
		},
		Replica: Endpoint{
			Host:     getenv("REPLICA_HOST", "localhost"),
			Port:     atoienv("REPLICA_PORT", 5433),
			Database: getenv("REPLICA_DB", "postgres"),
			User:     getenv("REPLICA_USER", "user"),
			Password: getenv("REPLICA_PASSWORD", "password"),
		},
		MinConns:       int32(atoienv("DB_POOL_MIN", 1)),
		MaxConns:       int32(atoienv("DB_POOL_MAX", 10)),
		AcquireTimeout: durenv("DB_ACQUIRE_TIMEOUT", 5),
		CloseTimeout:   durenv("SHUTDOWN_TIMEOUT", 10),
	}
}
