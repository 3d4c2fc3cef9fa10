package cli

import (
	"github.com/spf13/cobra"

	"github.com/directdev/portal/internal/models"
	"github.com/directdev/portal/internal/syncer"
)

func (a *App) syncCmd() *cobra.Command {
	var (
		flowName string
		courses  []string
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run a sync flow",
		Long:  "Runs one of the sync flows: init (bootstrap), common (full fetch, merge and replace) or resources (course materials).",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result error

			// Unknown flow names map to a nil flow; the syncer rejects it
			// without touching the network.
			a.syncer.Sync(cmd.Context(), parseFlow(flowName, courses),
				func() { cmd.Println("Sync finished.") },
				func(err error) { result = err })

			return result
		},
	}

	cmd.Flags().StringVar(&flowName, "flow", "common", "flow to run: init, common or resources")
	cmd.Flags().StringSliceVar(&courses, "course", nil, "course id to fetch resources for (repeatable)")

	return cmd
}

func parseFlow(name string, courseIDs []string) syncer.Flow {
	switch name {
	case "init":
		return syncer.Init{}
	case "common":
		return syncer.Common{}
	case "resources":
		courses := make([]*models.Course, 0, len(courseIDs))
		for _, id := range courseIDs {
			courses = append(courses, &models.Course{ID: id})
		}
		return syncer.Resources{Courses: courses}
	default:
		return nil
	}
}
