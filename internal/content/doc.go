// Package content implements the directory-driven aggregation pipeline shared
// by projects and posts: scan a root, read one descriptor per entity
// directory, normalise, deduplicate by identity key and sort.
//
// Everything is recomputed from the filesystem on every call; the package
// keeps no state between invocations.
package content
