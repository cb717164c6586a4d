package credentials

import (
	"crypto/subtle"
	"fmt"
	"strings"
)

// Credential is a username/password pair. Usernames are case-sensitive.
type Credential struct {
	Username string
	Password string
}

// Store answers whether a username/password pair is valid.
// An unknown user and a wrong password are indistinguishable to the caller.
type Store interface {
	Verify(username, password string) bool
}

// DemoCredentials returns the fixed demo user table.
func DemoCredentials() []Credential {
	return []Credential{
		{Username: "admin", Password: "admin123"},
		{Username: "user", Password: "password"},
		{Username: "demo", Password: "demo"},
	}
}

// ParseList reads a "user:pass,user2:pass2" table. Passwords may contain ':'.
func ParseList(raw string) ([]Credential, error) {
	var creds []Credential
	seen := make(map[string]struct{})
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		username, password, found := strings.Cut(entry, ":")
		if !found || username == "" || password == "" {
			return nil, fmt.Errorf("[ParseList] malformed credential entry %q", username)
		}
		if _, dup := seen[username]; dup {
			return nil, fmt.Errorf("[ParseList] duplicate username %q", username)
		}
		seen[username] = struct{}{}
		creds = append(creds, Credential{Username: username, Password: password})
	}
	if len(creds) == 0 {
		return nil, fmt.Errorf("[ParseList] no credentials found")
	}
	return creds, nil
}

var _ Store = (*StaticStore)(nil)

// StaticStore matches against a plaintext table held in memory.
type StaticStore struct {
	passwords map[string]string
}

func NewStaticStore(creds ...Credential) *StaticStore {
	passwords := make(map[string]string, len(creds))
	for _, c := range creds {
		passwords[c.Username] = c.Password
	}
	return &StaticStore{passwords: passwords}
}

// Verify does a constant-time comparison. Unknown users still pay for one
// comparison so response timing does not reveal which usernames exist.
func (s *StaticStore) Verify(username, password string) bool {
	stored, ok := s.passwords[username]
	if !ok {
		stored = password + "\x00"
	}
	match := subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
	return ok && match
}
