package blocks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesAliases(t *testing.T) {
	b, err := New(Ref{BaseName: "grass_path", Properties: map[string]any{}})
	require.NoError(t, err)
	assert.Equal(t, "dirt_path", b.BaseName)

	b, err = New(Ref{BaseName: "stained_terracotta", Properties: map[string]any{"color": "red"}})
	require.NoError(t, err)
	assert.Equal(t, "terracotta", b.BaseName)
	assert.Equal(t, "red", b.Property("color"))
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, n := range []string{"grass_path", "dirt_path", "stained_terracotta", "stone", "water"} {
		once := Normalize(n)
		assert.Equal(t, once, Normalize(once), n)
	}
	assert.Equal(t, "stone", Normalize("stone"))
}

func TestNewRejectsMissingData(t *testing.T) {
	_, err := New(Ref{BaseName: "", Properties: map[string]any{}})
	assert.True(t, errors.Is(err, ErrInvalidBlock))
	_, err = New(Ref{BaseName: "stone"})
	assert.True(t, errors.Is(err, ErrInvalidBlock))
}

func TestPropertiesCoercedToStrings(t *testing.T) {
	b, err := New(Ref{BaseName: "snow", Properties: map[string]any{"layers": 3, "waterlogged": false}})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"layers": "3", "waterlogged": "false"}, b.Properties)
}

func TestJSONSortedKeys(t *testing.T) {
	b, err := New(Ref{BaseName: "fence", Properties: map[string]any{"material": "oak", "east": "true"}})
	require.NoError(t, err)
	assert.Equal(t, `{"base_name":"fence","properties":{"east":"true","material":"oak"}}`, b.JSON())
}
