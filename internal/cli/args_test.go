package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prodgraph/demand"
	"github.com/katalvlaran/prodgraph/partition"
)

func TestParseTargets(t *testing.T) {
	ts, err := parseTargets([]string{"bar=10", " circuit = 2.5", "a=b=3"})
	require.NoError(t, err)
	assert.Equal(t, []demand.Target{
		{Item: "bar", Rate: 10},
		{Item: "circuit", Rate: 2.5},
		{Item: "a=b", Rate: 3},
	}, ts)

	for _, bad := range []string{"bar", "=3", "bar=", "bar=fast"} {
		_, err = parseTargets([]string{bad})
		assert.ErrorIs(t, err, ErrBadTarget, bad)
	}
}

func TestParsePairs(t *testing.T) {
	ps, err := parsePairs([]string{"ore:bar", " sand : glass "})
	require.NoError(t, err)
	assert.Equal(t, []partition.Pair{{A: "ore", B: "bar"}, {A: "sand", B: "glass"}}, ps)

	for _, bad := range []string{"ore", ":bar", "ore:"} {
		_, err = parsePairs([]string{bad})
		assert.ErrorIs(t, err, ErrBadPair, bad)
	}
}
