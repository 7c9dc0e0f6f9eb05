package run

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the run command skeleton. The execution logic is wired
// by the root command to avoid circular dependencies.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
	}

	cmd.Flags().Bool("symlink", false, MsgFlagSymlink)
	cmd.Flags().Bool("skip-shim", false, MsgFlagSkipShim)

	return cmd
}
