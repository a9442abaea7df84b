package ratelimit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieSigner_RoundTrip(t *testing.T) {
	signer, err := NewCookieSigner("test-secret")
	require.NoError(t, err)

	value, err := signer.NewID()
	require.NoError(t, err)
	assert.Contains(t, value, ".")

	id, err := signer.Verify(value)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.True(t, strings.HasPrefix(value, id+"."))
}

func TestCookieSigner_IDsAreUnique(t *testing.T) {
	signer, err := NewCookieSigner("test-secret")
	require.NoError(t, err)

	first, err := signer.NewID()
	require.NoError(t, err)
	second, err := signer.NewID()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCookieSigner_RejectsTamperedValue(t *testing.T) {
	signer, err := NewCookieSigner("test-secret")
	require.NoError(t, err)

	value, err := signer.NewID()
	require.NoError(t, err)

	// Swap the id while keeping the signature.
	_, sig, ok := strings.Cut(value, ".")
	require.True(t, ok)

	_, err = signer.Verify("deadbeefdeadbeefdeadbeefdeadbeef." + sig)
	assert.Error(t, err)
}

func TestCookieSigner_RejectsForeignSignature(t *testing.T) {
	signer, err := NewCookieSigner("test-secret")
	require.NoError(t, err)
	other, err := NewCookieSigner("another-secret")
	require.NoError(t, err)

	value, err := other.NewID()
	require.NoError(t, err)

	_, err = signer.Verify(value)
	assert.Error(t, err)
}

func TestCookieSigner_RejectsMalformedValue(t *testing.T) {
	signer, err := NewCookieSigner("test-secret")
	require.NoError(t, err)

	for _, value := range []string{"", "no-separator", ".signature-only"} {
		_, err := signer.Verify(value)
		assert.Error(t, err, "value %q should be rejected", value)
	}
}

func TestNewCookieSigner_RequiresSecret(t *testing.T) {
	_, err := NewCookieSigner("")
	assert.Error(t, err)
}
