package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
	require.NoError(t, Config{MaxDepth: 0}.Validate())
	assert.Error(t, Config{MaxDepth: -1}.Validate())
}

func TestNewSearcherClampsDepth(t *testing.T) {
	assert.Equal(t, 0, NewSearcher(Config{MaxDepth: -3}).Config().MaxDepth)
	assert.Equal(t, DefaultMaxDepth, NewSearcher(DefaultConfig()).Config().MaxDepth)
}

func TestMinMaxAbs(t *testing.T) {
	assert.Equal(t, 2, Min(2, 5))
	assert.Equal(t, 5.5, Max(2.0, 5.5))
	assert.Equal(t, 3, abs(-3))
	assert.Equal(t, 0.5, abs(0.5))
}
