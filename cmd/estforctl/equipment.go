package main

import "github.com/spf13/cobra"

func newEquipmentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "equipment <userAddress> <playerId> <skill>",
		Short: "Show the last full equipment a player used for a skill",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			eq, err := a.api.GetLastFullEquipments(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), eq)
		},
	}
}
