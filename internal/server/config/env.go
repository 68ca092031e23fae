package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from the process environment. A .env file
// in the working directory is loaded first, if present; real environment
// variables win over .env entries (godotenv.Load never overrides).
//
// Recognized variables:
//
//	ADDR                    HTTP bind address (e.g., ":8080")
//	DATABASE_DSN            PostgreSQL DSN
//	JWT_SECRET              token signing secret
//	TOKEN_VALIDITY_MINUTES  session token lifetime, minutes
//	BCRYPT_COST             bcrypt work factor
//	CORS_ALLOW_ORIGINS      comma-separated origin list
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDR"); v != "" {
		config.Addr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.TokenValidityDuration = time.Duration(n) * time.Minute
		}
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.BcryptCost = n
		}
	}
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		if len(origins) > 0 {
			config.CORSAllowOrigins = origins
		}
	}
}
