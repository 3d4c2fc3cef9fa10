package cli

import (
	"github.com/spf13/cobra"
)

func (a *App) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store portal credentials",
		Long:  "Prompts for the portal username and password and stores them for sync. The password is sealed at rest.",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := GetSimpleText(a.reader, "Enter username", cmd.OutOrStdout())
			if err != nil {
				return err
			}

			password, err := GetPassword(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if err := a.creds.Save(cmd.Context(), username, string(password)); err != nil {
				return err
			}

			cmd.Println("Credentials saved.")
			return nil
		},
	}
}
