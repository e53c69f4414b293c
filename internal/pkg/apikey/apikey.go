package apikey

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed = errors.New("api key hashing failed")
	ErrMismatch      = errors.New("api key mismatch")
	ErrEmptyKey      = errors.New("empty api key")
)

const DefaultCost = bcrypt.DefaultCost

// Hash is used by operators to produce AUTH_API_KEY_HASH.
func Hash(key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(key), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func Verify(hashedKey, key string) error {
	if hashedKey == "" || key == "" {
		return ErrEmptyKey
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedKey), []byte(key))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}

	return nil
}
