package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	key := DeriveKey([]byte("hunter2"), salt)

	sealed, err := Seal([]byte("secret password"), key)
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "secret password")

	opened, err := Open(sealed, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret password"), opened)
}

func TestOpen_WrongKey(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)

	sealed, err := Seal([]byte("payload"), DeriveKey([]byte("right"), salt))
	require.NoError(t, err)

	_, err = Open(sealed, DeriveKey([]byte("wrong"), salt))
	assert.Error(t, err)
}

func TestOpen_TooShort(t *testing.T) {
	_, err := Open([]byte("tiny"), DeriveKey([]byte("k"), []byte("salt")))
	assert.Error(t, err)
}

func TestDeriveKey_DeterministicPerSalt(t *testing.T) {
	a := DeriveKey([]byte("pw"), []byte("salt-a"))
	b := DeriveKey([]byte("pw"), []byte("salt-a"))
	c := DeriveKey([]byte("pw"), []byte("salt-b"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
