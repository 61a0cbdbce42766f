package api

import (
	"context"

	"github.com/0xJijimi/estfor-api/client/internal/types"
)

// GetPlayers lists players.
func GetPlayers(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.PlayersFilter) (*types.Page[types.Player], error) {
	return list[types.Player](ctx, httpClient, baseURL, "players", "players", filter)
}

// GetPlayerByID retrieves a player by ID.
func GetPlayerByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.Player, error) {
	return one[types.Player](ctx, httpClient, baseURL, "players", "player by id", id)
}

// GetPlayersMulti looks up several players in one POST.
func GetPlayersMulti(ctx context.Context, httpClient types.HTTPClient, baseURL string, playerIDs []string) ([]types.Player, error) {
	return multi[types.Player](ctx, httpClient, baseURL, "players", "multiple players", types.PlayerIDsRequest{PlayerIDs: ids(playerIDs)})
}

// GetUsers lists users.
func GetUsers(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.User], error) {
	return list[types.User](ctx, httpClient, baseURL, "users", "users", filter)
}

// GetUserByAddress retrieves a user by wallet address.
func GetUserByAddress(ctx context.Context, httpClient types.HTTPClient, baseURL, address string) (*types.User, error) {
	return one[types.User](ctx, httpClient, baseURL, "users", "user by address", address)
}

// GetPlayerDayDatas lists per-player daily aggregates.
func GetPlayerDayDatas(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.PlayerFilter) (*types.Page[types.PlayerDayData], error) {
	return list[types.PlayerDayData](ctx, httpClient, baseURL, "player-day-datas", "player day datas", filter)
}

// GetQuests lists quests.
func GetQuests(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.Quest], error) {
	return list[types.Quest](ctx, httpClient, baseURL, "quests", "quests", filter)
}

// GetQuestByID retrieves a quest by ID.
func GetQuestByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.Quest, error) {
	return one[types.Quest](ctx, httpClient, baseURL, "quests", "quest by id", id)
}

// GetPlayerQuests lists quest progress rows.
func GetPlayerQuests(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.PlayerFirstFilter) (*types.Page[types.PlayerQuest], error) {
	return list[types.PlayerQuest](ctx, httpClient, baseURL, "player-quests", "player quests", filter)
}

// GetPromotionByID retrieves a promotion by ID.
func GetPromotionByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.Promotion, error) {
	return one[types.Promotion](ctx, httpClient, baseURL, "promotions", "promotions by id", id)
}

// GetPlayerPromotions lists player promotion status rows.
func GetPlayerPromotions(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.PlayerFirstFilter) (*types.Page[types.PlayerPromotion], error) {
	return list[types.PlayerPromotion](ctx, httpClient, baseURL, "player-promotions", "player promotions", filter)
}
