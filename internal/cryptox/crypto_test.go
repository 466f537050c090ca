package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_DeterministicPerSalt(t *testing.T) {
	pin := []byte("2580")
	salt1 := []byte("salt-salt-salt-salt-salt-salt-32")
	salt2 := []byte("SALT-SALT-SALT-SALT-SALT-SALT-32")

	k1 := DeriveKey(pin, salt1)
	k2 := DeriveKey(pin, salt1)
	k3 := DeriveKey(pin, salt2)

	require.Len(t, k1, 32)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}

func TestMakeVerifier_DoesNotExposeKey(t *testing.T) {
	key := DeriveKey([]byte("2580"), []byte("salt"))
	v := MakeVerifier(key)

	require.Len(t, v, 32)
	assert.NotEqual(t, key, v)
	assert.Equal(t, v, MakeVerifier(key))
}
