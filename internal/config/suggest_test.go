package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNetwork(t *testing.T) {
	cfg := Load(MapLookup(map[string]string{"GOERLI_INFURA_URL": "https://x"}))

	t.Run("known network", func(t *testing.T) {
		p, err := ResolveNetwork(cfg, "goerli")
		require.NoError(t, err)
		assert.Equal(t, "https://x", p.RPCURL)
	})

	t.Run("returned profile is a copy", func(t *testing.T) {
		p, err := ResolveNetwork(cfg, "hardhat")
		require.NoError(t, err)
		p.Forking.BlockNumber = 1
		assert.Equal(t, uint64(14032174), cfg.Networks["hardhat"].Forking.BlockNumber)
	})

	t.Run("unknown network with suggestion", func(t *testing.T) {
		_, err := ResolveNetwork(cfg, "gorli")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownNetwork)

		var unknown *UnknownNetworkError
		require.True(t, errors.As(err, &unknown))
		assert.Contains(t, unknown.Suggestions, "goerli")
		assert.Contains(t, err.Error(), "did you mean")
	})

	t.Run("unknown network without suggestion", func(t *testing.T) {
		_, err := ResolveNetwork(cfg, "xyz")
		require.Error(t, err)
		assert.Equal(t, "network 'xyz' not found", err.Error())
	})
}
