package run

// Message constants
const (
	MsgShort = "Resolve and place all scaffold files"
	MsgLong  = `The 'run' command executes the full scaffold pipeline for the project:
  - Resolves the allowed packages declared in the project descriptor
  - Merges their scaffold file mappings (later packages and the root win)
  - Interpolates [location] tokens into destination paths
  - Copies or symlinks each file into place, replacing existing files

After scaffolding, the project autoload shim is written into the web root
unless --skip-shim is given.`

	MsgExample = `  # Scaffold the project in the current directory
  scafgo run

  # Preview the operations without touching the filesystem
  scafgo run --dry-run

  # Symlink instead of copying
  scafgo run --symlink`

	MsgFlagSymlink  = "Create symlinks instead of copying files"
	MsgFlagSkipShim = "Do not write the autoload shim after scaffolding"
)
