package config

import (
	"time"

	"github.com/joho/godotenv"
)

type Config interface {
	EnvConfig
	CorsConfig
	SessionConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type SessionConfig interface {
	GetSessionTTL() time.Duration
	GetSweepInterval() time.Duration
	GetCookieSecure() bool
	GetCredentials() string
	GetPasswordHashing() bool
}

type mainConfig struct {
	EnvVars
	Cors
	Session
}

// New loads an optional .env file from the working directory and returns a
// Config that reads the process environment on every call.
func New() Config {
	_ = godotenv.Load()
	return mainConfig{}
}
