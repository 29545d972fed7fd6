package domain

import (
	"fmt"

	"github.com/alexedwards/argon2id"
)

// DefaultArgonParams follow the OWASP minimum for argon2id.
var DefaultArgonParams = &argon2id.Params{
	Memory:      19 * 1024, // 19 MB
	Iterations:  2,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

type Argon2idHasher struct {
	params *argon2id.Params
}

func NewArgon2idHasher(params *argon2id.Params) *Argon2idHasher {
	if params == nil {
		params = DefaultArgonParams
	}

	return &Argon2idHasher{
		params: params,
	}
}

func (h *Argon2idHasher) HashPassword(password string) (string, error) {
	hash, err := argon2id.CreateHash(password, h.params)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return hash, nil
}

func (h *Argon2idHasher) VerifyPassword(password, hashedPassword string) (bool, error) {
	match, err := argon2id.ComparePasswordAndHash(password, hashedPassword)
	if err != nil {
		return false, fmt.Errorf("failed to verify password: %w", err)
	}

	return match, nil
}
