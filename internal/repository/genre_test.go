package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreListScanBracedBlob(t *testing.T) {
	var g GenreList
	require.NoError(t, g.Scan([]byte("{rock,jazz}")))
	assert.Equal(t, GenreList{"rock", "jazz"}, g)
}

func TestGenreListScanEmptyAndNull(t *testing.T) {
	var g GenreList
	require.NoError(t, g.Scan("{}"))
	assert.Empty(t, g)
	assert.NotNil(t, g)

	require.NoError(t, g.Scan(nil))
	assert.Nil(t, g)
}

func TestGenreListValue(t *testing.T) {
	v, err := GenreList{"rock", "jazz"}.Value()
	require.NoError(t, err)
	assert.Equal(t, "{rock,jazz}", v)
}
