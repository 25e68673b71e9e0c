package quadtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidItem is returned when an item's bounds cannot be placed in the
	// tree (non-finite coordinates or a negative size).
	ErrInvalidItem = errors.New("invalid item")

	// ErrInvalidBounds is returned by New when the tree's own bounding box is
	// unusable.
	ErrInvalidBounds = errors.New("invalid tree bounds")

	// ErrInvalidOption is returned by New when an option carries a value out of
	// range.
	ErrInvalidOption = errors.New("invalid option")
)

// InvalidItemError describes an item rejected by Insert or InsertAll.
//
// It matches ErrInvalidItem with errors.Is.
type InvalidItemError struct {
	Bounds Rect
	Reason string
	// Index is the position of the item within an InsertAll batch, or -1 for
	// a single Insert.
	Index int
}

func (e *InvalidItemError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid item %d %v: %s", e.Index, e.Bounds, e.Reason)
	}
	return fmt.Sprintf("invalid item %v: %s", e.Bounds, e.Reason)
}

func (e *InvalidItemError) Unwrap() error { return ErrInvalidItem }

func validateItem(r Rect, index int) error {
	if reason := checkRect(r); reason != "" {
		return &InvalidItemError{Bounds: r, Reason: reason, Index: index}
	}
	return nil
}
