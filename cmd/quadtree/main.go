// Command quadtree builds a quadtree from a JSON item file and queries it.
//
// Usage:
//
//	quadtree query --config tree.yaml --items items.json --rect 0,0,20,20
//	quadtree query --config tree.yaml --items items.json --rect 0,0,20,20 --exact --metrics-out quadtree.prom
//	quadtree tree --config tree.yaml --items items.json
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
