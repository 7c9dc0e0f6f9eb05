package scafgo

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	initgencmd "github.com/scaffoldkit/scafgo/cmd/scafgo/commands/initgen"
	listcmd "github.com/scaffoldkit/scafgo/cmd/scafgo/commands/list"
	runcmd "github.com/scaffoldkit/scafgo/cmd/scafgo/commands/run"
	"github.com/scaffoldkit/scafgo/internal/version"
	"github.com/scaffoldkit/scafgo/pkg/config"
	"github.com/scaffoldkit/scafgo/pkg/events"
	"github.com/scaffoldkit/scafgo/pkg/filesystem"
	"github.com/scaffoldkit/scafgo/pkg/logging"
	"github.com/scaffoldkit/scafgo/pkg/registry"
	"github.com/scaffoldkit/scafgo/pkg/scaffold"
	"github.com/scaffoldkit/scafgo/pkg/shim"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity   int
		dryRun      bool
		projectDir  string
		installRoot string
	)

	rootCmd := &cobra.Command{
		Use:     "scafgo",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&projectDir, "project", ".", MsgFlagProject)
	rootCmd.PersistentFlags().StringVar(&installRoot, "install-root", "", MsgFlagInstall)

	// run
	run := runcmd.NewCommand()
	run.RunE = func(cmd *cobra.Command, args []string) error {
		symlink, _ := cmd.Flags().GetBool("symlink")
		skipShim, _ := cmd.Flags().GetBool("skip-shim")
		return executeScaffold(projectDir, installRoot, scaffoldFlags{
			dryRun:       dryRun,
			forceSymlink: symlink,
			writeShim:    !skipShim,
		})
	}
	rootCmd.AddCommand(run)

	// list
	list := listcmd.NewCommand()
	list.RunE = func(cmd *cobra.Command, args []string) error {
		return executeScaffold(projectDir, installRoot, scaffoldFlags{
			dryRun:    true,
			writeShim: false,
		})
	}
	rootCmd.AddCommand(list)

	// init
	initCmd := initgencmd.NewCommand()
	initCmd.RunE = func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		path, err := config.WriteStarter(projectDir, name)
		if err != nil {
			return err
		}
		cmd.Printf("Wrote %s\n", path)
		return nil
	}
	rootCmd.AddCommand(initCmd)

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// scaffoldFlags carries the per-invocation switches of executeScaffold.
type scaffoldFlags struct {
	dryRun       bool
	forceSymlink bool
	writeShim    bool
}

// executeScaffold loads the project configuration, runs the scaffold
// pipeline, renders the result, and writes the autoload shim.
func executeScaffold(projectDir, installRoot string, flags scaffoldFlags) error {
	cfg, err := config.Load(projectDir)
	if err != nil {
		return err
	}
	if flags.forceSymlink {
		cfg.Symlink = true
	}

	if installRoot == "" {
		installRoot = filepath.Join(projectDir, "vendor")
	}

	fsys := filesystem.NewOS()
	hooks := events.NewDispatcher()

	result, err := scaffold.Run(scaffold.RunOptions{
		ProjectDir: projectDir,
		Config:     cfg,
		Registry:   registry.NewDir(installRoot),
		FS:         fsys,
		Hooks:      hooks,
		DryRun:     flags.dryRun,
	})
	if result != nil {
		RenderResult(result)
	}
	if err != nil {
		return err
	}

	if flags.writeShim && !flags.dryRun {
		webRoot := result.Locations[config.WebRootLocation]
		if _, err := shim.Write(fsys, webRoot, installRoot); err != nil {
			return err
		}
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("scafgo version %s\n", version.Version)
			cmd.Printf("  commit: %s\n", version.Commit)
			cmd.Printf("  built:  %s\n", version.Date)
		},
	}
}
