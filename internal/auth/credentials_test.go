package auth

import (
	"errors"
	"testing"
)

func TestStaticVerifier(t *testing.T) {
	verifier := NewStaticVerifier(Account{
		ID:       "demo-user-123",
		Email:    "admin@demo.com",
		Name:     "Demo Admin",
		Password: "admin123",
	})

	tests := []struct {
		name    string
		creds   Credentials
		wantErr error
	}{
		{
			name:  "valid credentials",
			creds: Credentials{Email: "admin@demo.com", Password: "admin123"},
		},
		{
			name:    "wrong password",
			creds:   Credentials{Email: "admin@demo.com", Password: "wrong"},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:    "wrong email",
			creds:   Credentials{Email: "other@demo.com", Password: "admin123"},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:    "missing email",
			creds:   Credentials{Password: "admin123"},
			wantErr: ErrMissingCredentials,
		},
		{
			name:    "missing password",
			creds:   Credentials{Email: "admin@demo.com"},
			wantErr: ErrMissingCredentials,
		},
		{
			name:    "missing both",
			creds:   Credentials{},
			wantErr: ErrMissingCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := verifier.Verify(tt.creds)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Verify() = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Verify() = %v, want success", err)
			}
			if identity.ID != "demo-user-123" || identity.Email != "admin@demo.com" || identity.Name != "Demo Admin" {
				t.Errorf("unexpected identity: %+v", identity)
			}
		})
	}
}

func TestHashedVerifier(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	verifier := NewHashedVerifier(Account{
		ID:       "demo-user-123",
		Email:    "admin@demo.com",
		Name:     "Demo Admin",
		Password: hash,
	})

	if _, err := verifier.Verify(Credentials{Email: "admin@demo.com", Password: "admin123"}); err != nil {
		t.Errorf("valid credentials rejected: %v", err)
	}
	if _, err := verifier.Verify(Credentials{Email: "admin@demo.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := verifier.Verify(Credentials{Email: "admin@demo.com"}); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("missing password: got %v, want ErrMissingCredentials", err)
	}
}
