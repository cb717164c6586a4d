package server

import (
	"fmt"

	"github.com/jrsteele09/go-session-server/credentials"
	"github.com/jrsteele09/go-session-server/internal/config"
	"github.com/rs/zerolog/log"
)

// InitialiseCredentials builds the credential store. The CREDENTIALS table is
// used when set, otherwise the built-in demo users. Passwords are bcrypt
// hashed at startup unless PASSWORD_HASHING is off.
func InitialiseCredentials(config config.SessionConfig) (credentials.Store, error) {
	creds := credentials.DemoCredentials()
	source := "demo"
	if raw := config.GetCredentials(); raw != "" {
		parsed, err := credentials.ParseList(raw)
		if err != nil {
			return nil, fmt.Errorf("[server InitialiseCredentials] failed to parse credentials: %w", err)
		}
		creds = parsed
		source = "env"
	}

	usernames := make([]string, 0, len(creds))
	for _, c := range creds {
		usernames = append(usernames, c.Username)
	}

	if !config.GetPasswordHashing() {
		log.Warn().Str("source", source).Strs("users", usernames).Msg("password hashing disabled, comparing plaintext")
		return credentials.NewStaticStore(creds...), nil
	}

	store, err := credentials.NewHashedStore(0, creds...)
	if err != nil {
		return nil, fmt.Errorf("[server InitialiseCredentials] failed to hash credentials: %w", err)
	}
	log.Info().Str("source", source).Strs("users", usernames).Msg("credential store ready")
	return store, nil
}
