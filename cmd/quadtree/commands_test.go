package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterstace/quadtree"
	"github.com/peterstace/quadtree/internal/dataset"
)

const testConfig = `
bounds: {x: 0, y: 0, w: 100, h: 100}
maxChildren: 2
maxDepth: 4
`

const testItems = `[
	{"id": "a", "x": 0, "y": 0, "w": 10, "h": 10},
	{"id": "b", "x": 60, "y": 60, "w": 10, "h": 10},
	{"id": "c", "x": 5, "y": 5, "w": 5, "h": 5},
	{"id": "d", "x": 45, "y": 10, "w": 20, "h": 5}
]`

func writeFixtures(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "tree.yaml")
	items := filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(cfg, []byte(testConfig), 0o644))
	require.NoError(t, os.WriteFile(items, []byte(testItems), 0o644))
	return cfg, items
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeIDs(t *testing.T, out string) []string {
	t.Helper()
	items, err := dataset.Decode(strings.NewReader(out))
	require.NoError(t, err)
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func TestQueryCmd(t *testing.T) {
	cfg, items := writeFixtures(t)

	t.Run("Candidates", func(t *testing.T) {
		out, err := run(t, "query", "-c", cfg, "-i", items, "--rect", "0,0,20,20")
		require.NoError(t, err)
		// d straddles the root's vertical midline, so it is a candidate for
		// every query.
		assert.Equal(t, []string{"d", "a", "c"}, decodeIDs(t, out))
	})

	t.Run("Exact", func(t *testing.T) {
		out, err := run(t, "query", "-c", cfg, "-i", items, "--rect", "0,0,20,20", "--exact")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c"}, decodeIDs(t, out))
	})

	t.Run("Empty", func(t *testing.T) {
		out, err := run(t, "query", "-c", cfg, "-i", items, "--rect", "80,10,5,5", "--exact")
		require.NoError(t, err)
		assert.Empty(t, decodeIDs(t, out))
	})

	t.Run("MetricsOut", func(t *testing.T) {
		prom := filepath.Join(t.TempDir(), "quadtree.prom")
		_, err := run(t, "query", "-c", cfg, "-i", items, "--rect", "0,0,20,20", "--metrics-out", prom)
		require.NoError(t, err)

		data, err := os.ReadFile(prom)
		require.NoError(t, err)
		assert.Contains(t, string(data), `quadtree_inserts_total{kind="batch",result="ok"} 1`)
		assert.Contains(t, string(data), "quadtree_retrieves_total 1")
	})

	t.Run("BadRect", func(t *testing.T) {
		_, err := run(t, "query", "-c", cfg, "-i", items, "--rect", "0,0,20")
		assert.ErrorContains(t, err, "want x,y,w,h")

		_, err = run(t, "query", "-c", cfg, "-i", items, "--rect", "0,0,x,20")
		assert.Error(t, err)
	})

	t.Run("MissingRect", func(t *testing.T) {
		_, err := run(t, "query", "-c", cfg, "-i", items)
		assert.Error(t, err)
	})

	t.Run("InvalidItem", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`[{"id":"z","x":0,"y":0,"w":-1,"h":1}]`), 0o644))
		_, err := run(t, "query", "-c", cfg, "-i", bad, "--rect", "0,0,1,1")
		assert.ErrorIs(t, err, quadtree.ErrInvalidItem)
	})
}

func TestTreeCmd(t *testing.T) {
	cfg, items := writeFixtures(t)

	out, err := run(t, "tree", "-c", cfg, "-i", items)
	require.NoError(t, err)

	var got struct {
		Stats quadtree.Stats `json:"stats"`
		Root  nodeView       `json:"root"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, quadtree.Stats{Nodes: 5, Leaves: 4, Items: 4, Height: 1}, got.Stats)
	assert.Equal(t, quadtree.Rect{W: 100, H: 100}, got.Root.Bounds)
	assert.Equal(t, []string{"d"}, got.Root.Items)
	require.Len(t, got.Root.Children, 4)
	assert.Equal(t, []string{"a", "c"}, got.Root.Children[0].Items)
	assert.Equal(t, []string{"b"}, got.Root.Children[3].Items)
	assert.Empty(t, got.Root.Children[1].Items)
}

func TestParseRect(t *testing.T) {
	r, err := parseRect(" 1, 2.5 ,3,4")
	require.NoError(t, err)
	assert.Equal(t, quadtree.Rect{X: 1, Y: 2.5, W: 3, H: 4}, r)
}
