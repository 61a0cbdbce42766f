package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/0xJijimi/estfor-api/client"
)

type batchFn func(ctx context.Context, c *client.Client, ids []string) (any, error)

func batch[T any](get func(*client.Client, context.Context, []string) ([]T, error)) batchFn {
	return func(ctx context.Context, c *client.Client, ids []string) (any, error) { return get(c, ctx, ids) }
}

var batches = map[string]batchFn{
	"players":           batch((*client.Client).GetPlayersMulti),
	"queued-actions":    batch((*client.Client).GetQueuedActionsMulti),
	"user-item-nfts":    batch((*client.Client).GetUserItemNFTsMulti),
	"player-self-mades": batch((*client.Client).GetPlayerSelfMadesMulti),
}

func batchNames() string {
	names := make([]string, 0, len(batches))
	for name := range batches {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

func newMultiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("multi <%s> <id>...", batchNames()),
		Short: "Fetch many records in one batch request",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			get, ok := batches[args[0]]
			if !ok {
				return fmt.Errorf("unknown batch resource %q (want %s)", args[0], batchNames())
			}
			out, err := get(cmd.Context(), a.api, args[1:])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}
