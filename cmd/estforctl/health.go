package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"

	"github.com/0xJijimi/estfor-api/client"
)

var errNotSynced = errors.New("subgraph not synced")

func newSubgraphHealthCmd(a *app) *cobra.Command {
	var (
		wait    bool
		maxWait time.Duration
	)
	cmd := &cobra.Command{
		Use:   "subgraph-health",
		Short: "Show the indexer sync state, optionally waiting until it is synced",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !wait {
				h, err := a.api.GetSubgraphHealth(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), h)
			}

			if !cmd.Flags().Changed("max-wait") {
				maxWait = a.cfg.Health.MaxWait
			}
			h, err := a.waitForSync(cmd.Context(), maxWait)
			if h != nil {
				if perr := printJSON(cmd.OutOrStdout(), h); perr != nil {
					return perr
				}
			}
			if errors.Is(err, errNotSynced) {
				return fmt.Errorf("subgraph not synced after %s", maxWait)
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&wait, "wait", false, "poll until the subgraph reports synced")
	cmd.Flags().DurationVar(&maxWait, "max-wait", 0, "give up waiting after this long (default health.max_wait)")
	return cmd
}

// waitForSync polls subgraph health with exponential backoff until it
// reports synced, maxWait elapses or ctx ends. Client errors (4xx) stop
// polling at once. The last health seen is returned even on failure.
func (a *app) waitForSync(ctx context.Context, maxWait time.Duration) (*client.SubgraphHealth, error) {
	// backoff treats a zero MaxElapsedTime as "retry forever".
	if maxWait <= 0 {
		return nil, fmt.Errorf("invalid max wait %s: must be positive", maxWait)
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = a.cfg.Health.InitialInterval
	b.MaxInterval = a.cfg.Health.MaxInterval
	b.MaxElapsedTime = maxWait

	var last *client.SubgraphHealth
	op := func() error {
		h, err := a.api.GetSubgraphHealth(ctx)
		if err != nil {
			if code, ok := client.StatusCode(err); ok && code < http.StatusInternalServerError {
				return backoff.Permanent(err)
			}
			return err
		}
		last = h
		if !h.Synced {
			return errNotSynced
		}
		return nil
	}
	notify := func(err error, next time.Duration) {
		a.logger.Info().Err(err).Dur("retry_in", next).Msg("waiting for subgraph")
	}

	err := backoff.RetryNotify(op, backoff.WithContext(b, ctx), notify)
	return last, err
}
