package passwordservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := &Hasher{cost: bcrypt.MinCost}

	hash, err := h.HashPassword("Secr3t!pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Secr3t!pass", hash)

	assert.NoError(t, h.ComparePasswordHash("Secr3t!pass", hash))
	assert.Error(t, h.ComparePasswordHash("wrong", hash))
}
