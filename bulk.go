package quadtree

import "time"

// InsertAll adds a batch of items in order. The whole batch is validated
// first: if any item is invalid an error naming its index is returned and no
// item is inserted.
func (t *Tree[T]) InsertAll(items []T) error {
	start := time.Now()
	err := t.insertAll(items)
	t.hooks.logger.LogBatchInsert(len(items), err)
	t.hooks.metrics.RecordBatchInsert(len(items), time.Since(start), err)
	return err
}

func (t *Tree[T]) insertAll(items []T) error {
	for i, item := range items {
		if err := validateItem(item.Bounds(), i); err != nil {
			return err
		}
	}
	for _, item := range items {
		t.root.insert(item)
	}
	t.size += len(items)
	return nil
}
