package api

import (
	"context"

	"github.com/0xJijimi/estfor-api/client/internal/types"
)

// GetActivities lists activities across all users.
func GetActivities(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.ActivitiesFilter) (*types.Page[types.Activity], error) {
	return list[types.Activity](ctx, httpClient, baseURL, "activities", "activities", filter)
}

// GetActivitiesByUser lists the activities of one user address.
func GetActivitiesByUser(ctx context.Context, httpClient types.HTTPClient, baseURL, userAddress string, filter *types.UserActivitiesFilter) (*types.Page[types.Activity], error) {
	return list[types.Activity](ctx, httpClient, baseURL, "activities", "activities by user", filter, userAddress)
}

// GetQueuedActions lists queued actions.
func GetQueuedActions(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.QueuedActionsFilter) (*types.Page[types.Activity], error) {
	return list[types.Activity](ctx, httpClient, baseURL, "queued-actions", "queued actions", filter)
}

// GetQueuedActionsMulti looks up several queued actions in one POST.
func GetQueuedActionsMulti(ctx context.Context, httpClient types.HTTPClient, baseURL string, queuedActionIDs []string) ([]types.Activity, error) {
	return multi[types.Activity](ctx, httpClient, baseURL, "queued-actions", "multiple queued actions", types.QueuedActionIDsRequest{QueuedActionIDs: ids(queuedActionIDs)})
}
