package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterstace/quadtree"
)

func TestParse(t *testing.T) {
	t.Run("Full", func(t *testing.T) {
		cfg, err := Parse([]byte(`
bounds: {x: 10, y: 20, w: 100, h: 50}
maxChildren: 3
maxDepth: 0
`))
		require.NoError(t, err)
		assert.Equal(t, quadtree.Rect{X: 10, Y: 20, W: 100, H: 50}, cfg.Rect())
		assert.Equal(t, 3, cfg.MaxChildren)
		require.NotNil(t, cfg.MaxDepth)
		assert.Equal(t, 0, *cfg.MaxDepth)
		assert.Len(t, cfg.Options(), 2)

		// An explicit zero depth reaches the tree.
		tr, err := quadtree.New[quadtree.Rect](cfg.Rect(), cfg.Options()...)
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			require.NoError(t, tr.Insert(quadtree.Rect{X: 10 + float64(i), Y: 20, W: 1, H: 1}))
		}
		assert.True(t, tr.Root().IsLeaf())
	})

	t.Run("Defaults", func(t *testing.T) {
		cfg, err := Parse([]byte("bounds: {w: 1, h: 1}\n"))
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.MaxChildren)
		assert.Nil(t, cfg.MaxDepth)
		assert.Len(t, cfg.Options(), 1)
	})

	t.Run("Invalid", func(t *testing.T) {
		for name, doc := range map[string]string{
			"MissingBounds":    "maxChildren: 2\n",
			"ZeroWidth":        "bounds: {w: 0, h: 1}\n",
			"NegativeChildren": "bounds: {w: 1, h: 1}\nmaxChildren: -1\n",
			"NegativeDepth":    "bounds: {w: 1, h: 1}\nmaxDepth: -2\n",
			"UnknownKey":       "bounds: {w: 1, h: 1}\ncapacity: 4\n",
			"NotYAML":          "bounds: [\n",
		} {
			t.Run(name, func(t *testing.T) {
				_, err := Parse([]byte(doc))
				assert.Error(t, err)
			})
		}
	})

	t.Run("ReportsEveryProblem", func(t *testing.T) {
		_, err := Parse([]byte("maxChildren: -1\nmaxDepth: -1\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bounds")
		assert.Contains(t, err.Error(), "maxChildren")
		assert.Contains(t, err.Error(), "maxDepth")
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bounds: {w: 8, h: 8}\nmaxDepth: 2\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, quadtree.Rect{W: 8, H: 8}, cfg.Rect())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
