package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, IsHashed(hash))
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPassword("s3cret", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestCheckPassword_LegacyCleartext(t *testing.T) {
	assert.True(t, CheckPassword("plain", "plain"))
	assert.False(t, CheckPassword("plain", "Plain"))
	assert.False(t, CheckPassword("", ""))
}

func TestHashPassword_LongPassword(t *testing.T) {
	long := strings.Repeat("a", 80)

	hash, err := HashPassword(long)
	require.NoError(t, err)

	assert.True(t, CheckPassword(long, hash))
	// Differs only past byte 72.
	assert.False(t, CheckPassword(strings.Repeat("a", 79)+"b", hash))
	assert.False(t, CheckPassword(strings.Repeat("a", 72), hash))
}
