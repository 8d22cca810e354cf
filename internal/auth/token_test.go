package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	codec, err := NewCodec([]byte("test-secret"), time.Hour)
	if err != nil {
		t.Fatalf("codec: %v", err)
	}

	identities := []Identity{
		{ID: "demo-user-123", Email: "admin@demo.com", Name: "Demo Admin"},
		{ID: "u2", Email: "someone@example.com", Name: ""},
		{ID: "u3", Email: "", Name: "No Email"},
	}

	for _, want := range identities {
		token, err := codec.Encode(want)
		if err != nil {
			t.Fatalf("encode %q: %v", want.ID, err)
		}
		if token == "" {
			t.Fatalf("encode %q: empty token", want.ID)
		}

		got, err := codec.Decode(token)
		if err != nil {
			t.Fatalf("decode %q: %v", want.ID, err)
		}
		if got != want {
			t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
		}
	}
}

func TestEncodeTwiceBothDecode(t *testing.T) {
	codec, _ := NewCodec([]byte("test-secret"), time.Hour)
	identity := Identity{ID: "u1", Email: "a@b.com", Name: "A"}

	first, err := codec.Encode(identity)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	second, err := codec.Encode(identity)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	for _, token := range []string{first, second} {
		if _, err := codec.Decode(token); err != nil {
			t.Errorf("decode: %v", err)
		}
	}
}

func TestDecodeEmptyToken(t *testing.T) {
	codec, _ := NewCodec([]byte("test-secret"), time.Hour)

	if _, err := codec.Decode(""); !errors.Is(err, ErrNoToken) {
		t.Errorf("decode(\"\") = %v, want ErrNoToken", err)
	}
}

func TestDecodeExpiredToken(t *testing.T) {
	secret := []byte("test-secret")
	codec, _ := NewCodec(secret, time.Hour)

	// Sign a token that expired an hour ago with the codec's own secret,
	// so the only defect is its age.
	claims := Claims{
		Email: "a@b.com",
		Name:  "A",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = codec.Decode(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("decode(expired) = %v, want ErrExpiredToken", err)
	}
	if errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired token must not be reported as invalid")
	}
}

func TestDecodeTamperedToken(t *testing.T) {
	codec, _ := NewCodec([]byte("test-secret"), time.Hour)

	token, err := codec.Encode(Identity{ID: "u1", Email: "a@b.com", Name: "A"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// Rewrite the payload segment with a modified email, keeping the
	// original signature. Signature verification must reject it.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal(payload, &body); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	body["email"] = "attacker@evil.com"

	forged, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	parts[1] = base64.RawURLEncoding.EncodeToString(forged)

	_, err = codec.Decode(strings.Join(parts, "."))
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("decode(tampered) = %v, want ErrInvalidToken", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	codec, _ := NewCodec([]byte("test-secret"), time.Hour)

	for _, input := range []string{"garbage", "a.b.c", "ey.ey.ey"} {
		if _, err := codec.Decode(input); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("decode(%q) = %v, want ErrInvalidToken", input, err)
		}
	}
}

func TestDecodeWrongSecret(t *testing.T) {
	signer, _ := NewCodec([]byte("secret-one"), time.Hour)
	verifier, _ := NewCodec([]byte("secret-two"), time.Hour)

	token, err := signer.Encode(Identity{ID: "u1", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if _, err := verifier.Decode(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("decode(wrong secret) = %v, want ErrInvalidToken", err)
	}
}

func TestNewCodecRejectsBadInput(t *testing.T) {
	if _, err := NewCodec(nil, time.Hour); err == nil {
		t.Error("expected error for empty secret")
	}
	if _, err := NewCodec([]byte("s"), 0); err == nil {
		t.Error("expected error for zero ttl")
	}
}
