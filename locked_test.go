package quadtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestLocked(t *testing.T) {
	tr, err := New[*box](square100, WithMaxChildren(4), WithMaxDepth(6))
	require.NoError(t, err)
	l := NewLocked(tr)

	const (
		writers   = 4
		perWriter = 250
		readers   = 4
	)

	var g errgroup.Group
	for w := 0; w < writers; w++ {
		g.Go(func() error {
			rnd := rand.New(rand.NewSource(int64(w)))
			for i := 0; i < perWriter; i++ {
				b := newBox(w*perWriter+i, rnd.Float64()*95, rnd.Float64()*95, rnd.Float64()*5, rnd.Float64()*5)
				if err := l.Insert(b); err != nil {
					return err
				}
			}
			return nil
		})
	}
	for r := 0; r < readers; r++ {
		g.Go(func() error {
			for i := 0; i < 100; i++ {
				got := l.Collect(Rect{X: 10, Y: 10, W: 30, H: 30})
				assert.LessOrEqual(t, len(got), writers*perWriter)
				_ = l.Stats()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, writers*perWriter, l.Len())
	assert.Len(t, l.Collect(square100), writers*perWriter)

	seen := make(map[int]bool)
	l.Retrieve(square100, func(b *box) {
		assert.False(t, seen[b.id], "item %d visited twice", b.id)
		seen[b.id] = true
	})
	assert.Len(t, seen, writers*perWriter)

	require.NoError(t, l.InsertAll([]*box{newBox(-1, 1, 1, 1, 1)}))
	assert.Equal(t, writers*perWriter+1, l.Len())

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Collect(square100))
}
