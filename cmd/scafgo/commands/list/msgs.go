package list

// Message constants
const (
	MsgShort = "Show the consolidated scaffold mapping without placing files"
	MsgLong  = `The 'list' command resolves allowed packages, merges their scaffold file
mappings and interpolates location tokens, then prints the resulting file
operations without touching the filesystem. Useful for inspecting which
package wins each override before running the scaffold.`

	MsgExample = `  # Inspect the merge result for the current project
  scafgo list`
)
