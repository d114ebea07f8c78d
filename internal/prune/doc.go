// Package prune removes stale artifacts from a local Maven-style repository.
//
// Service walks the repository breadth-first with an explicit worklist,
// deletes superseded artifacts found under snapshot version folders together
// with every locally generated metadata descriptor, and reports the number of
// bytes reclaimed. Filesystem access goes through the FileSystem interface so
// failures can be injected in tests.
package prune
