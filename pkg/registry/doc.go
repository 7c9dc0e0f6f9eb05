// Package registry provides package lookup for scaffold runs: a generic
// thread-safe name registry, an in-memory package registry for tests and
// embedding, and a directory-backed registry that reads installed package
// descriptors from an install root.
package registry
