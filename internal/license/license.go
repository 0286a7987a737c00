package license

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Claims is the signed license payload.
type Claims struct {
	Licensee  string `json:"licensee"`
	TenantID  string `json:"tenant_id"`
	Plan      string `json:"plan"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"` // Unix seconds; 0 means perpetual
}

// Status is the evaluated state of a license token.
type Status struct {
	Valid     bool    `json:"valid"`
	Reason    string  `json:"reason,omitempty"`
	Claims    *Claims `json:"claims,omitempty"`
	ExpiresAt *string `json:"expiresAt,omitempty"`
}

var (
	ErrMalformed = errors.New("malformed license token")
	ErrSignature = errors.New("invalid license signature")
)

// Signer issues and evaluates detached-signature license tokens with the
// wire shape base64url(payload).base64url(signature).
type Signer struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

// NewSigner builds a signer from a base64url raw ed25519 seed. An empty
// seed generates an ephemeral key pair for development.
func NewSigner(encodedSeed string) (*Signer, error) {
	if encodedSeed == "" {
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, err
		}
		return &Signer{priv: priv, pub: pub}, nil
	}

	seed, err := base64.RawURLEncoding.DecodeString(encodedSeed)
	if err != nil {
		return nil, fmt.Errorf("invalid license signing key: %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("license signing key must be %d bytes", ed25519.SeedSize)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return &Signer{priv: priv, pub: priv.Public().(ed25519.PublicKey)}, nil
}

// Issue signs the claims, producing payload.signature with both parts
// base64url encoded.
func (s *Signer) Issue(claims Claims) (string, error) {
	if claims.IssuedAt == 0 {
		claims.IssuedAt = time.Now().Unix()
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	sig := ed25519.Sign(s.priv, payload)
	return base64.RawURLEncoding.EncodeToString(payload) + "." + base64.RawURLEncoding.EncodeToString(sig), nil
}

// Evaluate verifies the token and reports its state. Tampered or malformed
// tokens come back invalid with a reason rather than an error, since the
// admin UI renders the status either way.
func (s *Signer) Evaluate(token string) Status {
	claims, err := s.verify(token)
	if err != nil {
		return Status{Valid: false, Reason: err.Error()}
	}

	status := Status{Valid: true, Claims: claims}
	if claims.ExpiresAt > 0 {
		exp := time.Unix(claims.ExpiresAt, 0).UTC().Format(time.RFC3339)
		status.ExpiresAt = &exp
		if time.Now().Unix() > claims.ExpiresAt {
			status.Valid = false
			status.Reason = "license expired"
		}
	}
	return status
}

func (s *Signer) verify(token string) (*Claims, error) {
	parts := strings.Split(strings.TrimSpace(token), ".")
	if len(parts) != 2 {
		return nil, ErrMalformed
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, ErrMalformed
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrMalformed
	}

	if !ed25519.Verify(s.pub, payload, sig) {
		return nil, ErrSignature
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, ErrMalformed
	}
	return &claims, nil
}
