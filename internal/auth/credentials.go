package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Verifier validates a login attempt against an account source. A real
// deployment swaps the demo implementation for one backed by a user
// store without touching the gate or the token codec.
type Verifier interface {
	Verify(creds Credentials) (Identity, error)
}

// Account is a single configured login account
type Account struct {
	ID       string
	Email    string
	Name     string
	Password string
}

// DemoAccount is the fixed account the service ships with.
var DemoAccount = Account{
	ID:       "demo-user-123",
	Email:    "admin@demo.com",
	Name:     "Demo Admin",
	Password: "admin123",
}

// StaticVerifier checks credentials against exactly one account using
// plaintext password equality. This is a deliberate stand-in for a user
// directory and is not suitable for real accounts; see HashedVerifier.
type StaticVerifier struct {
	account Account
}

// NewStaticVerifier creates a verifier for a single fixed account
func NewStaticVerifier(account Account) *StaticVerifier {
	return &StaticVerifier{account: account}
}

func (v *StaticVerifier) Verify(creds Credentials) (Identity, error) {
	if creds.Email == "" || creds.Password == "" {
		return Identity{}, ErrMissingCredentials
	}

	emailOK := subtle.ConstantTimeCompare([]byte(creds.Email), []byte(v.account.Email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(v.account.Password)) == 1
	if !emailOK || !passOK {
		return Identity{}, ErrInvalidCredentials
	}

	return Identity{
		ID:    v.account.ID,
		Email: v.account.Email,
		Name:  v.account.Name,
	}, nil
}

// HashedVerifier is the drop-in replacement for StaticVerifier once the
// account carries a bcrypt hash instead of a plaintext password.
type HashedVerifier struct {
	account Account // Password holds the bcrypt hash
}

// NewHashedVerifier creates a verifier for a single account whose
// Password field holds a bcrypt hash
func NewHashedVerifier(account Account) *HashedVerifier {
	return &HashedVerifier{account: account}
}

func (v *HashedVerifier) Verify(creds Credentials) (Identity, error) {
	if creds.Email == "" || creds.Password == "" {
		return Identity{}, ErrMissingCredentials
	}

	if subtle.ConstantTimeCompare([]byte(creds.Email), []byte(v.account.Email)) != 1 {
		return Identity{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(v.account.Password), []byte(creds.Password)); err != nil {
		return Identity{}, ErrInvalidCredentials
	}

	return Identity{
		ID:    v.account.ID,
		Email: v.account.Email,
		Name:  v.account.Name,
	}, nil
}

// HashPassword produces a bcrypt hash for use with HashedVerifier
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
