package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher turns a plaintext password into the stored form
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using the given bcrypt cost; zero means the default
func NewBcryptHasher(cost int) PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// hashOptional hashes p when present, for partial updates
func hashOptional(h PasswordHasher, p *string) (*string, error) {
	if p == nil {
		return nil, nil
	}
	hash, err := h.Hash(*p)
	if err != nil {
		return nil, err
	}
	return &hash, nil
}
