package quadtree

import "fmt"

const (
	// DefaultMaxChildren is the number of items a leaf holds before it is
	// divided.
	DefaultMaxChildren = 2

	// DefaultMaxDepth is the depth below which nodes are never divided.
	DefaultMaxDepth = 4
)

type options struct {
	maxChildren int
	maxDepth    int
	logger      *Logger
	metrics     MetricsCollector
}

// Option configures a Tree at construction.
type Option func(*options)

// WithMaxChildren sets how many items a leaf may hold before it divides. Zero
// selects DefaultMaxChildren.
func WithMaxChildren(n int) Option {
	return func(o *options) {
		if n == 0 {
			n = DefaultMaxChildren
		}
		o.maxChildren = n
	}
}

// WithMaxDepth sets the deepest level a node can be created at. Leaves at this
// depth keep accepting items without dividing. Zero is honoured and produces a
// tree that never divides.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		o.maxDepth = d
	}
}

// WithLogger sets the logger used for division and validation events. If nil
// is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets a collector for operation metrics. Pass nil to
// disable metrics collection.
//
// Example:
//
//	metrics := &quadtree.BasicMetricsCollector{}
//	tr, err := quadtree.New[quadtree.Rect](bounds, quadtree.WithMetricsCollector(metrics))
func WithMetricsCollector(c MetricsCollector) Option {
	return func(o *options) {
		if c == nil {
			c = NoopMetricsCollector{}
		}
		o.metrics = c
	}
}

func newOptions(opts []Option) (options, error) {
	o := options{
		maxChildren: DefaultMaxChildren,
		maxDepth:    DefaultMaxDepth,
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxChildren < 0 {
		return options{}, fmt.Errorf("%w: max children must not be negative, got %d", ErrInvalidOption, o.maxChildren)
	}
	if o.maxDepth < 0 {
		return options{}, fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidOption, o.maxDepth)
	}
	return o, nil
}
