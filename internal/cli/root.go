package cli

import "github.com/spf13/cobra"

// Root builds the top-level command.
func (a *App) Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "portal",
		Short: "Offline mirror of the university portal",
		Long:  "Syncs the exam schedule, class sessions, finances, grades and profile from the academic-records service into a local store for offline display.",
		// Engine settings (-u, -d, -t, -c) are parsed by the config
		// package before the command tree runs.
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},

		SilenceUsage: true,
	}

	root.AddCommand(a.loginCmd())
	root.AddCommand(a.syncCmd())
	root.AddCommand(a.journalCmd())
	root.AddCommand(a.profileCmd())

	return root
}
