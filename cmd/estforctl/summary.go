package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/0xJijimi/estfor-api/client"
)

// summary is the combined output of the summary command.
type summary struct {
	CoreData              *client.CoreData               `json:"coreData"`
	SubgraphHealth        *client.SubgraphHealth         `json:"subgraphHealth"`
	FirstToReachMaxSkills []client.FirstToReachMaxSkills `json:"firstToReachMaxSkills"`
}

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Fetch core data, subgraph health and max-skill leaders concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var s summary
			g, ctx := errgroup.WithContext(cmd.Context())

			g.Go(func() error {
				var err error
				s.CoreData, err = a.api.GetCoreData(ctx)
				return err
			})
			g.Go(func() error {
				var err error
				s.SubgraphHealth, err = a.api.GetSubgraphHealth(ctx)
				return err
			})
			g.Go(func() error {
				var err error
				s.FirstToReachMaxSkills, err = a.api.GetFirstToReachMaxSkills(ctx)
				return err
			})

			if err := g.Wait(); err != nil {
				return err
			}
			a.logger.Debug().Msg("summary complete")
			return printJSON(cmd.OutOrStdout(), s)
		},
	}
}
