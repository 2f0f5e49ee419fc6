package config

import (
	"os"
	"time"
)

// parseEnv overlays configuration from environment variables. Only variables
// that are set override the current values.
//
// Recognized variables:
//
//	ADDRESS                  HTTP bind address
//	DATABASE_DSN             PostgreSQL DSN
//	SECRET_KEY               JWT HMAC secret
//	TOKEN_VALIDITY_DURATION  Go duration string, e.g. "2m"
//	APP_ENV                  "production" enables production mode
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY_DURATION"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("APP_ENV"); ok {
		config.Production = v == "production"
	}
}
