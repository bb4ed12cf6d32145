//go:build !cgo

package main

import (
	"fmt"

	"github.com/commgraph/communitysearch/internal/store"
)

// openKuzuStore is unavailable without CGO; the go-kuzu driver wraps
// KuzuDB's C library.
func openKuzuStore(string) (store.Store, error) {
	return nil, fmt.Errorf("kuzu store requires a build with CGO enabled")
}
