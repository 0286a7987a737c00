package license

import (
	"crypto/ed25519"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueEvaluateRoundTrip(t *testing.T) {
	signer, err := NewSigner("")
	require.NoError(t, err)

	token, err := signer.Issue(Claims{
		Licensee: "Aurelia Concierge Ltd",
		TenantID: "default",
		Plan:     "professional",
	})
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 2)

	status := signer.Evaluate(token)
	assert.True(t, status.Valid)
	require.NotNil(t, status.Claims)
	assert.Equal(t, "Aurelia Concierge Ltd", status.Claims.Licensee)
	assert.Equal(t, "professional", status.Claims.Plan)
	assert.NotZero(t, status.Claims.IssuedAt)
	assert.Nil(t, status.ExpiresAt, "perpetual license carries no expiry")
}

func TestSeededSignerIsDeterministic(t *testing.T) {
	seed := base64.RawURLEncoding.EncodeToString(make([]byte, ed25519.SeedSize))
	a, err := NewSigner(seed)
	require.NoError(t, err)
	b, err := NewSigner(seed)
	require.NoError(t, err)

	token, err := a.Issue(Claims{Licensee: "x", TenantID: "default", Plan: "starter", IssuedAt: 1})
	require.NoError(t, err)

	// Same seed, same key pair: the second signer verifies tokens from the first.
	assert.True(t, b.Evaluate(token).Valid)
}

func TestInvalidSigningKey(t *testing.T) {
	_, err := NewSigner("not-base64!!")
	assert.Error(t, err)

	_, err = NewSigner(base64.RawURLEncoding.EncodeToString([]byte("short")))
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	signer, err := NewSigner("")
	require.NoError(t, err)

	token, err := signer.Issue(Claims{Licensee: "x", TenantID: "default", Plan: "starter"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	forged := Claims{Licensee: "mallory", TenantID: "default", Plan: "enterprise", IssuedAt: 1}
	payload, _ := signer.Issue(forged)
	forgedPayload := strings.Split(payload, ".")[0]

	status := signer.Evaluate(forgedPayload + "." + parts[1])
	assert.False(t, status.Valid)
	assert.Equal(t, ErrSignature.Error(), status.Reason)
}

func TestMalformedTokens(t *testing.T) {
	signer, err := NewSigner("")
	require.NoError(t, err)

	for _, token := range []string{"", "nodot", "a.b.c", "!!!.???"} {
		status := signer.Evaluate(token)
		assert.False(t, status.Valid, "token %q", token)
		assert.Equal(t, ErrMalformed.Error(), status.Reason)
	}
}

func TestExpiredLicense(t *testing.T) {
	signer, err := NewSigner("")
	require.NoError(t, err)

	token, err := signer.Issue(Claims{
		Licensee:  "x",
		TenantID:  "default",
		Plan:      "starter",
		ExpiresAt: time.Now().Add(-time.Hour).Unix(),
	})
	require.NoError(t, err)

	status := signer.Evaluate(token)
	assert.False(t, status.Valid)
	assert.Equal(t, "license expired", status.Reason)
	require.NotNil(t, status.ExpiresAt)

	future, err := signer.Issue(Claims{
		Licensee:  "x",
		TenantID:  "default",
		Plan:      "starter",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)
	assert.True(t, signer.Evaluate(future).Valid)
}

func TestVerifierRejectsForeignKey(t *testing.T) {
	a, err := NewSigner("")
	require.NoError(t, err)
	b, err := NewSigner("")
	require.NoError(t, err)

	token, err := a.Issue(Claims{Licensee: "x", TenantID: "default", Plan: "starter"})
	require.NoError(t, err)

	assert.False(t, b.Evaluate(token).Valid)
}
