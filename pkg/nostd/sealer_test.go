package nostd

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealerRoundTrip(t *testing.T) {
	s := NewSealer("credential-key")

	sealed, err := s.Seal("api-secret-value")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "api-secret-value")

	plain, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "api-secret-value", plain)
}

func TestSealerNonceVaries(t *testing.T) {
	s := NewSealer("credential-key")
	a, err := s.Seal("same")
	require.NoError(t, err)
	b, err := s.Seal("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSealerWrongKey(t *testing.T) {
	sealed, err := NewSealer("one").Seal("value")
	require.NoError(t, err)

	_, err = NewSealer("two").Open(sealed)
	assert.ErrorIs(t, err, ErrUnseal)

	_, err = NewSealer("one").Open("not base64!")
	assert.ErrorIs(t, err, ErrUnseal)

	_, err = NewSealer("one").Open("c2hvcnQ=")
	assert.ErrorIs(t, err, ErrUnseal)
}

func TestMask(t *testing.T) {
	assert.Equal(t, "abcd********", Mask("abcdefghijkl"))
	assert.Equal(t, "***", Mask("abc"))
	assert.Equal(t, "", Mask(""))
}

func TestMaskKeepsWholeRunes(t *testing.T) {
	hint := Mask("ключ-доступа")
	assert.Equal(t, "ключ********", hint)
	assert.True(t, utf8.ValidString(hint))
	assert.Equal(t, "**", Mask("ключ"[:4]))
}
