package password

import (
	"crypto/rand"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrRandomSource     = errors.New("random source unavailable")
)

const (
	DefaultCost = bcrypt.DefaultCost

	randomCredentialBytes = 32
)

func HashPassword(password string) (string, error) {
	return hashWithCost(password, DefaultCost)
}

func hashWithCost(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}

// Hasher produces credential hashes for accounts created on a customer's behalf.
type Hasher interface {
	RandomCredentialHash() (string, error)
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: DefaultCost}
}

// NewFastHasher uses the minimum bcrypt cost; tests only.
func NewFastHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.MinCost}
}

// RandomCredentialHash hashes a freshly generated secret that is never disclosed.
func (h *BcryptHasher) RandomCredentialHash() (string, error) {
	secret, err := RandomCredential()
	if err != nil {
		return "", err
	}
	return hashWithCost(secret, h.cost)
}

func RandomCredential() (string, error) {
	buf := make([]byte, randomCredentialBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", ErrRandomSource
	}
	// bcrypt only reads the first 72 bytes; 32 random bytes encode to 43
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
