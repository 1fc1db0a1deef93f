package auth

import (
	"strings"
	"testing"

	"sensorhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasherConfig(cost int) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{BcryptCost: cost}}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	hash, err := hasher.Hash("secret-token-1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-token-1", hash)

	assert.True(t, hasher.Check("secret-token-1", hash))
	assert.False(t, hasher.Check("secret-token-2", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	first, err := hasher.Hash("secret-token-1")
	require.NoError(t, err)
	second, err := hasher.Hash("secret-token-1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "configured", cfg: newTestHasherConfig(bcrypt.MinCost + 1), want: bcrypt.MinCost + 1},
		{name: "out of range", cfg: newTestHasherConfig(99), want: bcrypt.DefaultCost},
		{name: "nil config", cfg: nil, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cfg)
			hash, err := hasher.Hash("secret")
			require.NoError(t, err)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cost)
		})
	}
}

func TestBcryptHasher_CheckRejectsGarbageHash(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	assert.False(t, hasher.Check("secret", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("secret", ""))
}

func TestBcryptHasher_RejectsOverlongSecret(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	_, err := hasher.Hash(strings.Repeat("x", 73))
	assert.Error(t, err)
}
