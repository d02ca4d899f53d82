// Command lambdastream demonstrates in-memory collection manipulation:
// in-place multi-key sorting, a lazy filter/sort/project pipeline, and
// group-by aggregation.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
