package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	a := map[string]any{"name": "shop", "components": []string{"a", "b"}}
	b := map[string]any{"components": []string{"a", "b"}, "name": "shop"}

	fa, err := Fingerprint(a)
	require.NoError(t, err)
	fb, err := Fingerprint(b)
	require.NoError(t, err)
	assert.Equal(t, fa, fb)
	assert.Len(t, fa, 64)

	fc, err := Fingerprint(map[string]any{"name": "shop", "components": []string{"b", "a"}})
	require.NoError(t, err)
	assert.NotEqual(t, fa, fc)

	_, err = Fingerprint(func() {})
	assert.Error(t, err)
}
