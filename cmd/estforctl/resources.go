package main

import (
	"context"

	"github.com/0xJijimi/estfor-api/client"
)

// fetchFn performs one prepared API call.
type fetchFn func(ctx context.Context, c *client.Client) (any, error)

// resource describes how `get <name> [arg]` maps onto the SDK. list serves
// the bare form, byArg the form with one positional argument; either may be nil.
type resource struct {
	about   string
	argName string
	list    func(fa *filterArgs) fetchFn
	byArg   func(arg string, fa *filterArgs) fetchFn
}

// paged adapts a list endpoint whose only filter is pagination.
func paged[T any](get func(*client.Client, context.Context, *client.Pagination) (*client.Page[T], error)) func(*filterArgs) fetchFn {
	return func(fa *filterArgs) fetchFn {
		p := fa.pagination()
		return func(ctx context.Context, c *client.Client) (any, error) { return get(c, ctx, &p) }
	}
}

// keyedPaged adapts a list endpoint addressed by one path key.
func keyedPaged[T any](get func(*client.Client, context.Context, string, *client.Pagination) (*client.Page[T], error)) func(string, *filterArgs) fetchFn {
	return func(arg string, fa *filterArgs) fetchFn {
		p := fa.pagination()
		return func(ctx context.Context, c *client.Client) (any, error) { return get(c, ctx, arg, &p) }
	}
}

// plain adapts an endpoint that takes no input.
func plain[R any](get func(*client.Client, context.Context) (R, error)) func(*filterArgs) fetchFn {
	return func(*filterArgs) fetchFn {
		return func(ctx context.Context, c *client.Client) (any, error) { return get(c, ctx) }
	}
}

// byKey adapts a lookup by a single path key.
func byKey[R any](get func(*client.Client, context.Context, string) (R, error)) func(string, *filterArgs) fetchFn {
	return func(arg string, _ *filterArgs) fetchFn {
		return func(ctx context.Context, c *client.Client) (any, error) { return get(c, ctx, arg) }
	}
}

func actionsFilter(fa *filterArgs) *client.ActionsFilter {
	p := fa.pagination()
	return &client.ActionsFilter{
		OrderDirection: p.OrderDirection,
		NumToSkip:      p.NumToSkip,
		NumToFetch:     p.NumToFetch,
		OrderBy:        p.OrderBy,
		IsAvailable:    fa.boolean("isAvailable"),
	}
}

func userActivitiesFilter(fa *filterArgs) *client.UserActivitiesFilter {
	p := fa.pagination()
	return &client.UserActivitiesFilter{
		ActivityTypesToSkip:    fa.list("activityTypesToSkip"),
		ActivityTypesToInclude: fa.list("activityTypesToInclude"),
		PlayerID:               fa.str("playerId"),
		ActivityType:           fa.str("activityType"),
		Block:                  fa.str("block"),
		Simplified:             fa.boolean("simplified"),
		OrderDirection:         p.OrderDirection,
		NumToSkip:              p.NumToSkip,
		NumToFetch:             p.NumToFetch,
		OrderBy:                p.OrderBy,
	}
}

func activitiesFilter(fa *filterArgs) *client.ActivitiesFilter {
	u := userActivitiesFilter(fa)
	return &client.ActivitiesFilter{
		ActivityTypesToSkip:    u.ActivityTypesToSkip,
		ActivityTypesToInclude: u.ActivityTypesToInclude,
		PlayerID:               u.PlayerID,
		UserAddress:            fa.str("userAddress"),
		ActivityType:           u.ActivityType,
		Block:                  u.Block,
		Simplified:             u.Simplified,
		OrderDirection:         u.OrderDirection,
		NumToSkip:              u.NumToSkip,
		NumToFetch:             u.NumToFetch,
		OrderBy:                u.OrderBy,
	}
}

var resources = map[string]resource{
	"actions": {
		about:   "skilling actions",
		argName: "actionId",
		list: func(fa *filterArgs) fetchFn {
			f := actionsFilter(fa)
			return func(ctx context.Context, c *client.Client) (any, error) { return c.GetActions(ctx, f) }
		},
		byArg: byKey((*client.Client).GetActionByID),
	},
	"action-choices": {
		about:   "choices of one action",
		argName: "actionId",
		byArg: func(arg string, fa *filterArgs) fetchFn {
			f := actionsFilter(fa)
			return func(ctx context.Context, c *client.Client) (any, error) { return c.GetActionChoices(ctx, arg, f) }
		},
	},
	"activities": {
		about:   "activity feed, optionally for one user",
		argName: "userAddress",
		list: func(fa *filterArgs) fetchFn {
			f := activitiesFilter(fa)
			return func(ctx context.Context, c *client.Client) (any, error) { return c.GetActivities(ctx, f) }
		},
		byArg: func(arg string, fa *filterArgs) fetchFn {
			f := userActivitiesFilter(fa)
			return func(ctx context.Context, c *client.Client) (any, error) { return c.GetActivitiesByUser(ctx, arg, f) }
		},
	},
	"avatars": {about: "avatars", list: plain((*client.Client).GetAvatars)},
	"items": {
		about:   "item definitions",
		argName: "id",
		list: func(fa *filterArgs) fetchFn {
			f := &client.ItemsFilter{
				Pagination:       fa.pagination(),
				TokenIDs:         fa.list("tokenIds"),
				TokenIDsGE:       fa.str("tokenIds_ge"),
				TokenIDsLE:       fa.str("tokenIds_le"),
				IsSellableToShop: fa.boolean("isSellableToShop"),
				IsAvailable:      fa.boolean("isAvailable"),
			}
			return func(ctx context.Context, c *client.Client) (any, error) { return c.GetItems(ctx, f) }
		},
		byArg: byKey((*client.Client).GetItemByID),
	},
	"players": {
		about:   "players",
		argName: "id",
		list: func(fa *filterArgs) fetchFn {
			f := &client.PlayersFilter{
				Pagination:  fa.pagination(),
				UserAddress: fa.str("userAddress"),
				IsActive:    fa.boolean("isActive"),
			}
			return func(ctx context.Context, c *client.Client) (any, error) { return c.GetPlayers(ctx, f) }
		},
		byArg: byKey((*client.Client).GetPlayerByID),
	},
	"queued-actions": {
		about: "queued actions",
		list: func(fa *filterArgs) fetchFn {
			f := &client.QueuedActionsFilter{
				Pagination:  fa.pagination(),
				PlayerID:    fa.str("playerId"),
				UserAddress: fa.str("userAddress"),
				IsActive:    fa.boolean("isActive"),
			}
			return func(ctx context.Context, c *client.Client) (any, error) { return c.GetQueuedActions(ctx, f) }
		},
	},
	"shop-items": {
		about:   "shop listings",
		argName: "id",
		list: func(fa *filterArgs) fetchFn {
			f := &client.ShopItemsFilter{
				Pagination:  fa.pagination(),
				TokenID:     fa.str("tokenId"),
				IsAvailable: fa.boolean("isAvailable"),
			}
			return func(ctx context.Context, c *client.Client) (any, error) { return c.GetShopItems(ctx, f) }
		},
		byArg: byKey((*client.Client).GetShopItemByID),
	},
	"user-item-nfts": {
		about:   "item balances of one user",
		argName: "userAddress",
		byArg: func(arg string, fa *filterArgs) fetchFn {
			f := &client.UserItemNFTsFilter{Pagination: fa.pagination(), TokenID: fa.str("tokenId")}
			return func(ctx context.Context, c *client.Client) (any, error) { return c.GetUserItemNFTs(ctx, arg, f) }
		},
	},
	"player-self-mades": {
		about:   "items a player crafted",
		argName: "playerId",
		byArg:   keyedPaged((*client.Client).GetPlayerSelfMades),
	},
	"users": {about: "users", argName: "address", list: paged((*client.Client).GetUsers), byArg: byKey((*client.Client).GetUserByAddress)},
	"xp-threshold-rewards": {about: "XP threshold rewards", list: plain((*client.Client).GetXPThresholdRewards)},
	"random-words":         {about: "VRF random words", list: plain((*client.Client).GetRandomWords)},
	"player-day-datas": {
		about: "per-player daily stats",
		list: func(fa *filterArgs) fetchFn {
			f := &client.PlayerFilter{Pagination: fa.pagination(), PlayerID: fa.str("playerId")}
			return func(ctx context.Context, c *client.Client) (any, error) { return c.GetPlayerDayDatas(ctx, f) }
		},
	},
	"donation-day-datas": {about: "daily donation totals", list: paged((*client.Client).GetDonationDayDatas)},
	"clans":              {about: "clans", argName: "id", list: paged((*client.Client).GetClans), byArg: byKey((*client.Client).GetClanByID)},
	"clan-members": {
		about:   "clan members",
		argName: "id",
		list: func(fa *filterArgs) fetchFn {
			f := &client.ClanFilter{Pagination: fa.pagination(), ClanID: fa.str("clanId")}
			return func(ctx context.Context, c *client.Client) (any, error) { return c.GetClanMembers(ctx, f) }
		},
		byArg: byKey((*client.Client).GetClanMemberByID),
	},
	"clan-invites": {
		about: "pending clan invites",
		list: func(fa *filterArgs) fetchFn {
			f := &client.ClanFilter{Pagination: fa.pagination(), ClanID: fa.str("clanId")}
			return func(ctx context.Context, c *client.Client) (any, error) { return c.GetClanInvites(ctx, f) }
		},
	},
	"clan-tiers": {about: "clan tiers", argName: "id", list: paged((*client.Client).GetClanTiers), byArg: byKey((*client.Client).GetClanTierByID)},
	"clans-within-vault-mmr-attacking-range": {
		about:   "clans a clan may attack by vault MMR",
		argName: "clanId",
		byArg:   byKey((*client.Client).GetClansWithinVaultMMRAttackingRange),
	},
	"quests": {about: "quests", argName: "id", list: paged((*client.Client).GetQuests), byArg: byKey((*client.Client).GetQuestByID)},
	"player-quests": {
		about: "quest progress per player",
		list: func(fa *filterArgs) fetchFn {
			f := &client.PlayerFirstFilter{PlayerID: fa.str("playerId"), Pagination: fa.pagination()}
			return func(ctx context.Context, c *client.Client) (any, error) { return c.GetPlayerQuests(ctx, f) }
		},
	},
	"core-data":       {about: "game-wide counters", list: plain((*client.Client).GetCoreData)},
	"donations":       {about: "donations", list: paged((*client.Client).GetDonations)},
	"lotteries":       {about: "lotteries", argName: "id", list: paged((*client.Client).GetLotteries), byArg: byKey((*client.Client).GetLotteryByID)},
	"raffle-entries":  {about: "raffle entries", argName: "id", list: paged((*client.Client).GetRaffleEntries), byArg: byKey((*client.Client).GetRaffleEntryByID)},
	"instant-actions": {about: "instant actions", argName: "id", list: paged((*client.Client).GetInstantActions), byArg: byKey((*client.Client).GetInstantActionByID)},
	"first-to-reach-max-skills": {
		about: "first players to max each skill",
		list:  plain((*client.Client).GetFirstToReachMaxSkills),
	},
	"promotions": {about: "promotions", argName: "id", byArg: byKey((*client.Client).GetPromotionByID)},
	"player-promotions": {
		about: "promotions redeemed per player",
		list: func(fa *filterArgs) fetchFn {
			f := &client.PlayerFirstFilter{PlayerID: fa.str("playerId"), Pagination: fa.pagination()}
			return func(ctx context.Context, c *client.Client) (any, error) { return c.GetPlayerPromotions(ctx, f) }
		},
	},
	"territories":  {about: "territories", argName: "id", list: paged((*client.Client).GetTerritories), byArg: byKey((*client.Client).GetTerritoryByID)},
	"clan-battles": {about: "clan battles", argName: "id", list: paged((*client.Client).GetClanBattles), byArg: byKey((*client.Client).GetClanBattleByID)},
	"locked-bank-vault-clan-battle-pairs": {
		about:   "locked bank vault battle pairs",
		argName: "id",
		list:    paged((*client.Client).GetLockedBankVaultClanBattlePairs),
		byArg:   byKey((*client.Client).GetLockedBankVaultClanBattlePairByID),
	},
	"orders":         {about: "open orders", list: paged((*client.Client).GetOrders)},
	"failed-orders":  {about: "failed orders", list: paged((*client.Client).GetFailedOrders)},
	"price-levels":   {about: "order book price levels", list: paged((*client.Client).GetPriceLevels)},
	"token-infos":    {about: "order book token info", list: paged((*client.Client).GetTokenInfos)},
	"sale-histories": {about: "sale history", list: paged((*client.Client).GetSaleHistories)},
	"order-book-day-datas": {
		about:   "daily order book stats for one token",
		argName: "tokenId",
		byArg:   keyedPaged((*client.Client).GetOrderBookDayDatas),
	},
	"instant-vrf-actions": {
		about:   "instant VRF actions",
		argName: "id",
		list:    paged((*client.Client).GetInstantVRFActions),
		byArg:   byKey((*client.Client).GetInstantVRFActionByID),
	},
	"queued-instant-vrf-actions": {
		about:   "queued instant VRF actions",
		argName: "id",
		byArg:   byKey((*client.Client).GetQueuedInstantVRFActionByID),
	},
	"passive-actions": {
		about:   "passive actions",
		argName: "id",
		list:    paged((*client.Client).GetPassiveActions),
		byArg:   byKey((*client.Client).GetPassiveActionByID),
	},
	"queued-passive-actions": {
		about:   "queued passive actions",
		argName: "id",
		byArg:   byKey((*client.Client).GetQueuedPassiveActionByID),
	},
	"base-pets":       {about: "pet templates", argName: "id", list: paged((*client.Client).GetBasePets), byArg: byKey((*client.Client).GetBasePetByID)},
	"pets":            {about: "owned pets", argName: "id", list: paged((*client.Client).GetPets), byArg: byKey((*client.Client).GetPetByID)},
	"subgraph-health": {about: "indexer sync state", list: plain((*client.Client).GetSubgraphHealth)},
}
