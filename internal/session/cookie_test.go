package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieRoundTrip(t *testing.T) {
	value := SignCookie("abc-123", "secret")

	sid, ok := VerifyCookie(value, "secret")
	require.True(t, ok)
	assert.Equal(t, "abc-123", sid)
}

func TestCookieTamperRejected(t *testing.T) {
	value := SignCookie("abc-123", "secret")

	tampered := strings.Replace(value, "abc-123", "abc-124", 1)
	_, ok := VerifyCookie(tampered, "secret")
	assert.False(t, ok)
}

func TestCookieWrongSecretRejected(t *testing.T) {
	value := SignCookie("abc-123", "secret")

	_, ok := VerifyCookie(value, "other-secret")
	assert.False(t, ok)
}

func TestCookieMalformedRejected(t *testing.T) {
	for _, value := range []string{"", "no-dot", ".signature-only", "abc-123."} {
		_, ok := VerifyCookie(value, "secret")
		assert.False(t, ok, "value %q", value)
	}
}
