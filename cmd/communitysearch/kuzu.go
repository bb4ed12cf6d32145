//go:build cgo

package main

import "github.com/commgraph/communitysearch/internal/store"

// openKuzuStore opens an embedded KuzuDB store: file-backed when a path
// is configured, in-memory otherwise.
func openKuzuStore(path string) (store.Store, error) {
	if path == "" {
		return store.NewKuzuStore()
	}
	return store.NewKuzuFileStore(path)
}
