package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/directdev/portal/internal/repo/prefs"
)

func (a *App) profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the stored student profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := []struct {
				label string
				key   string
			}{
				{"Name", prefs.KeyName},
				{"Student ID", prefs.KeyStudentID},
				{"Major", prefs.KeyMajor},
				{"Degree", prefs.KeyDegree},
				{"Birthday", prefs.KeyBirthday},
				{"Charges", prefs.KeyFinanceCharge},
				{"Payments", prefs.KeyFinancePayment},
			}

			for _, row := range rows {
				value, err := a.prefs.Get(cmd.Context(), row.key, "-")
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-11s %s\n", row.label, value)
			}
			return nil
		},
	}
}
