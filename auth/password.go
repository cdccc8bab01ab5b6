package auth

import (
	"errors"
	"fmt"

	"github.com/alexedwards/argon2id"
)

// ErrMalformedHash is returned when a stored hash is not a valid argon2id PHC string.
var ErrMalformedHash = errors.New("malformed password hash")

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	// Hash returns a self-contained hash string that embeds salt and parameters.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash.
	Verify(hash, password string) (bool, error)
}

// Argon2Params are the argon2id cost parameters.
type Argon2Params struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params follow the argon2 RFC 9106 second recommended option,
// with parallelism lowered for small containers.
var DefaultArgon2Params = Argon2Params{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 2,
	SaltLength:  16,
	KeyLength:   32,
}

// Argon2Hasher implements PasswordHasher with argon2id and the PHC string format:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt>$<key>
type Argon2Hasher struct {
	params *argon2id.Params
}

var _ PasswordHasher = (*Argon2Hasher)(nil)

func NewArgon2Hasher(p Argon2Params) *Argon2Hasher {
	return &Argon2Hasher{params: &argon2id.Params{
		Memory:      p.Memory,
		Iterations:  p.Iterations,
		Parallelism: p.Parallelism,
		SaltLength:  p.SaltLength,
		KeyLength:   p.KeyLength,
	}}
}

func (h *Argon2Hasher) Hash(password string) (string, error) {
	hash, err := argon2id.CreateHash(password, h.params)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// Verify recomputes the key with the parameters stored in hash, so hashes
// made with older parameters keep verifying.
func (h *Argon2Hasher) Verify(hash, password string) (bool, error) {
	ok, err := argon2id.ComparePasswordAndHash(password, hash)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
	return ok, nil
}
