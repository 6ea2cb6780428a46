package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Plaid    PlaidConfig
	Bitcoin  BitcoinConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type PlaidConfig struct {
	ClientID    string
	Secret      string
	Environment string
	ClientName  string
	RedirectURI string
}

type BitcoinConfig struct {
	RPCHost     string
	RPCUser     string
	RPCPassword string
	Network     string
}

func Load() (*Config, error) {
	jwtTTL, err := getEnvDuration("JWT_TTL", time.Hour)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvString("PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("POSTGRES_URL"),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
			TTL:    jwtTTL,
		},
		Plaid: PlaidConfig{
			ClientID:    os.Getenv("PLAID_CLIENT_ID"),
			Secret:      os.Getenv("PLAID_SECRET"),
			Environment: getEnvString("PLAID_ENV", "sandbox"),
			ClientName:  getEnvString("PLAID_CLIENT_NAME", "Exodus Custodial Wallet"),
			RedirectURI: os.Getenv("PLAID_REDIRECT_URI"),
		},
		Bitcoin: BitcoinConfig{
			RPCHost:     getEnvString("BITCOIN_RPC_HOST", "localhost:18332"),
			RPCUser:     os.Getenv("BITCOIN_RPC_USERNAME"),
			RPCPassword: os.Getenv("BITCOIN_RPC_PASSWORD"),
			Network:     getEnvString("BITCOIN_NETWORK", "testnet"),
		},
	}

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("POSTGRES_URL must be set")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	if value := os.Getenv(key); value != "" {
		duration, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid duration for %s: %q (%w)", key, value, err)
		}
		return duration, nil
	}
	return defaultValue, nil
}
