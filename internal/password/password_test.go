package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_Format(t *testing.T) {
	stored, err := Hash("pw")
	require.NoError(t, err)

	// 64 hex chars of salt + 128 hex chars of digest
	assert.Len(t, stored, 192)
	assert.Regexp(t, "^[0-9a-f]+$", stored)
}

func TestHash_UniqueSalts(t *testing.T) {
	a, err := Hash("pw")
	require.NoError(t, err)
	b, err := Hash("pw")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "same password must hash differently under fresh salts")
	assert.NotEqual(t, a[:64], b[:64])
}

func TestVerify(t *testing.T) {
	stored, err := Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, Verify(stored, "correct horse battery staple"))
	assert.False(t, Verify(stored, "correct horse battery stapler"))
	assert.False(t, Verify(stored, ""))
}

func TestVerify_MalformedStored(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{name: "empty", stored: ""},
		{name: "too short", stored: "abcdef"},
		{name: "salt only", stored: string(make([]byte, 64))},
		{name: "too long", stored: string(make([]byte, 300))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, Verify(tt.stored, "pw"))
		})
	}
}
