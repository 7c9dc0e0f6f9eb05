package list

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the list command skeleton. The execution logic is wired
// by the root command to avoid circular dependencies.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
	}
}
