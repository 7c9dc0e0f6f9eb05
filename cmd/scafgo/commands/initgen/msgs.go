package initgen

// Message constants
const (
	MsgShort = "Write a starter project descriptor"
	MsgLong  = `The 'init' command writes a starter scafgo.toml into the project directory
with the keys a new project edits: name, allowed-packages, locations
(including the mandatory web-root), and the symlink mode. It refuses to
overwrite an existing descriptor.`

	MsgExample = `  # Create scafgo.toml for a new project
  scafgo init my/project`
)
