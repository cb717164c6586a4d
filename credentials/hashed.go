package credentials

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var _ Store = (*HashedStore)(nil)

// HashedStore keeps only bcrypt hashes of the configured passwords.
type HashedStore struct {
	hashes    map[string][]byte
	dummyHash []byte
}

// NewHashedStore hashes every credential with the given bcrypt cost.
// A cost of 0 uses bcrypt.DefaultCost.
func NewHashedStore(cost int, creds ...Credential) (*HashedStore, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hashes := make(map[string][]byte, len(creds))
	for _, c := range creds {
		hash, err := HashPassword(c.Password, cost)
		if err != nil {
			return nil, fmt.Errorf("[NewHashedStore] hashing password for %q: %w", c.Username, err)
		}
		hashes[c.Username] = hash
	}

	dummy, err := HashPassword("not-a-real-password", cost)
	if err != nil {
		return nil, fmt.Errorf("[NewHashedStore] hashing dummy password: %w", err)
	}

	return &HashedStore{hashes: hashes, dummyHash: dummy}, nil
}

// Verify compares against the stored hash. Unknown users are checked against
// a dummy hash so both failure paths cost one bcrypt comparison.
func (s *HashedStore) Verify(username, password string) bool {
	hash, ok := s.hashes[username]
	if !ok {
		_ = CheckPasswordHash(password, s.dummyHash)
		return false
	}
	return CheckPasswordHash(password, hash)
}

func HashPassword(password string, cost int) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), cost)
}

func CheckPasswordHash(password string, hash []byte) bool {
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	return err == nil
}
