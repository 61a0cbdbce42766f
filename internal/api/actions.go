package api

import (
	"context"

	"github.com/0xJijimi/estfor-api/client/internal/types"
)

// GetActions lists actions.
func GetActions(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.ActionsFilter) (*types.Page[types.Action], error) {
	return list[types.Action](ctx, httpClient, baseURL, "actions", "actions", filter)
}

// GetActionByID retrieves an action by ID.
func GetActionByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.Action, error) {
	return one[types.Action](ctx, httpClient, baseURL, "actions", "action by id", id)
}

// GetActionChoices lists the choices of one action.
func GetActionChoices(ctx context.Context, httpClient types.HTTPClient, baseURL, actionID string, filter *types.ActionsFilter) (*types.Page[types.ActionChoice], error) {
	return list[types.ActionChoice](ctx, httpClient, baseURL, "action-choices", "action choices", filter, actionID)
}

// GetInstantActions lists instant actions.
func GetInstantActions(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.InstantAction], error) {
	return list[types.InstantAction](ctx, httpClient, baseURL, "instant-actions", "instant actions", filter)
}

// GetInstantActionByID retrieves an instant action by ID.
func GetInstantActionByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.InstantAction, error) {
	return one[types.InstantAction](ctx, httpClient, baseURL, "instant-actions", "instant action by id", id)
}

// GetInstantVRFActions lists instant VRF actions.
func GetInstantVRFActions(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.InstantVRFAction], error) {
	return list[types.InstantVRFAction](ctx, httpClient, baseURL, "instant-vrf-actions", "instant vrf actions", filter)
}

// GetInstantVRFActionByID retrieves an instant VRF action by ID.
func GetInstantVRFActionByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.InstantVRFAction, error) {
	return one[types.InstantVRFAction](ctx, httpClient, baseURL, "instant-vrf-actions", "instant vrf action by id", id)
}

// GetQueuedInstantVRFActionByID retrieves a queued instant VRF action by ID.
func GetQueuedInstantVRFActionByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.QueuedInstantVRFAction, error) {
	return one[types.QueuedInstantVRFAction](ctx, httpClient, baseURL, "queued-instant-vrf-actions", "queued instant vrf action by id", id)
}

// GetPassiveActions lists passive actions.
func GetPassiveActions(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.PassiveAction], error) {
	return list[types.PassiveAction](ctx, httpClient, baseURL, "passive-actions", "passive actions", filter)
}

// GetPassiveActionByID retrieves a passive action by ID.
func GetPassiveActionByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.PassiveAction, error) {
	return one[types.PassiveAction](ctx, httpClient, baseURL, "passive-actions", "passive action by id", id)
}

// GetQueuedPassiveActionByID retrieves a queued passive action by ID.
func GetQueuedPassiveActionByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.QueuedPassiveAction, error) {
	return one[types.QueuedPassiveAction](ctx, httpClient, baseURL, "queued-passive-actions", "queued passive action by id", id)
}
