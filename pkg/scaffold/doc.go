// Package scaffold implements the scaffold-file resolution pipeline: it
// resolves the ordered set of packages allowed to contribute scaffold files,
// reads and deep-merges their declared file mappings with override
// precedence, interpolates symbolic location tokens into destination paths,
// and executes the resulting copy or symlink operations.
//
// Dataflow is strictly forward: allowed-package resolution, per-package
// mapping reads, the merge, location resolution plus token interpolation,
// then file operations. Non-fatal problems are collected as diagnostics on
// the run Result; a failed copy or symlink aborts the run.
package scaffold
