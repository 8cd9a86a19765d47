package infrastructure

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordManager hashes with bcrypt at a fixed cost.
type BcryptPasswordManager struct {
	cost int
}

func NewBcryptPasswordManager(cost int) *BcryptPasswordManager {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordManager{cost: cost}
}

func (m *BcryptPasswordManager) Hash(plainTextPassword string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), m.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

func (m *BcryptPasswordManager) Check(hashedPassword, plainTextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainTextPassword))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to check password")
	}
	return true, nil
}
