package config

import "time"

const (
	sessionTTLEnvVar      = "SESSION_TTL"
	sweepIntervalEnvVar   = "SWEEP_INTERVAL"
	cookieSecureEnvVar    = "COOKIE_SECURE"
	credentialsEnvVar     = "CREDENTIALS"
	passwordHashingEnvVar = "PASSWORD_HASHING"
)

type Session struct{}

var _ SessionConfig = Session{}

// GetSessionTTL returns how long a session lives after login. Zero disables expiry.
func (Session) GetSessionTTL() time.Duration {
	return GetEnvDuration(sessionTTLEnvVar, 30*time.Minute)
}

func (Session) GetSweepInterval() time.Duration {
	return GetEnvDuration(sweepIntervalEnvVar, time.Minute)
}

func (Session) GetCookieSecure() bool {
	return GetEnvBool(cookieSecureEnvVar, false)
}

// GetCredentials returns the raw "user:pass,user:pass" table, or "" to use the demo users.
func (Session) GetCredentials() string {
	return GetEnv(credentialsEnvVar, "")
}

func (Session) GetPasswordHashing() bool {
	return GetEnvBool(passwordHashingEnvVar, true)
}
