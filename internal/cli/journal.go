package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	journalrepo "github.com/directdev/portal/internal/repo/journal"
)

func (a *App) journalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "journal",
		Short: "Show the merged journal",
		Long:  "Prints the synced journal grouped by date: sessions, exams and finance dues per day.",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := journalrepo.NewSQLiteRepository(a.db).ListEntries(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				cmd.Println("Journal is empty. Run `portal sync` first.")
				return nil
			}

			// the merge keeps duplicate entries per date; collapse them here
			seen := make(map[string]bool, len(entries))
			for _, entry := range entries {
				if seen[entry.ID] {
					continue
				}
				seen[entry.ID] = true

				cmd.Println(entry.ID)
				for _, s := range entry.Sessions {
					fmt.Fprintf(cmd.OutOrStdout(), "  class  %-10s %s–%s %s\n", s.CourseID, s.StartTime, s.EndTime, s.Room)
				}
				for _, e := range entry.Exams {
					fmt.Fprintf(cmd.OutOrStdout(), "  exam   %-10s %s %s\n", e.CourseID, e.Time, e.Room)
				}
				for _, f := range entry.Finances {
					fmt.Fprintf(cmd.OutOrStdout(), "  due    %d %s\n", f.Amount, f.Description)
				}
			}
			return nil
		},
	}
}
