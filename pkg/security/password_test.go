package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("segredo123")
	require.NoError(t, err)
	assert.NotEqual(t, "segredo123", hash)

	assert.NoError(t, hasher.Compare(hash, "segredo123"))
	assert.Error(t, hasher.Compare(hash, "senha-errada"))
}

func TestInvalidCostFallsBackToDefault(t *testing.T) {
	hasher := NewBcryptHasher(99)

	hash, err := hasher.Hash("segredo123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
