package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/asforge-labs/asforge/internal/branding"
	"github.com/asforge-labs/asforge/internal/scaffold"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var setupYes bool

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [directory]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` sets up a new AssemblyScript project, or re-establishes the
expected layout in an existing one. Files you already own are never
overwritten: the tool fills in what is missing and keeps the few
configuration fields it owns up to date.

With no directory argument it prints this help and exits.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runSetup(cmd, args[0])
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&setupYes, "yes", "y", false, "Skip confirmation prompt")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// Exit codes returned to the shell by main.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitDeclined = 2
)

// ExitCode maps an Execute error to the process exit status. Declining the
// confirmation prompt is distinct from a failure so scripts can tell the two
// apart.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, scaffold.ErrDeclined):
		return ExitDeclined
	default:
		return ExitFailure
	}
}
