// Package types holds the shared data model for scafgo: packages, scaffold
// file mappings, destination values, and the filesystem interface the
// pipeline operates against.
package types
