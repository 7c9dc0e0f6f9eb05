package initgen

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the init command skeleton. The execution logic is wired
// by the root command to avoid circular dependencies.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "init [project-name]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MaximumNArgs(1),
	}
}
