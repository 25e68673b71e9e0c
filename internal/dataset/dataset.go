// Package dataset reads and writes the JSON item files used by the quadtree
// command.
package dataset

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	"github.com/peterstace/quadtree"
)

// Item is a named rectangle.
type Item struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	W  float64 `json:"w"`
	H  float64 `json:"h"`
}

// Bounds implements quadtree.Item.
func (it *Item) Bounds() quadtree.Rect {
	return quadtree.Rect{X: it.X, Y: it.Y, W: it.W, H: it.H}
}

// Decode reads a JSON array of items. Items without an id are given their
// position in the array.
func Decode(r io.Reader) ([]*Item, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var items []*Item
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	for i, it := range items {
		if it == nil {
			return nil, fmt.Errorf("decode items: item %d is null", i)
		}
		if it.ID == "" {
			it.ID = fmt.Sprint(i)
		}
	}
	return items, nil
}

// Load reads the item file at path.
func Load(path string) ([]*Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	items, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Encode writes v as indented JSON followed by a newline.
func Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
