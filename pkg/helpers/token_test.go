package helpers

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenVerificationToken(t *testing.T) {
	tok, err := GenVerificationToken()
	require.NoError(t, err)

	// 32 random bytes, hex encoded.
	assert.Len(t, tok, 64)
	_, err = hex.DecodeString(tok)
	assert.NoError(t, err)

	other, err := GenVerificationToken()
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)
}
