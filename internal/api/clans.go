package api

import (
	"context"

	"github.com/0xJijimi/estfor-api/client/internal/types"
)

// GetClans lists clans.
func GetClans(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.Clan], error) {
	return list[types.Clan](ctx, httpClient, baseURL, "clans", "clans", filter)
}

// GetClanByID retrieves a clan by ID.
func GetClanByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.Clan, error) {
	return one[types.Clan](ctx, httpClient, baseURL, "clans", "clan by id", id)
}

// GetClanMembers lists clan members.
func GetClanMembers(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.ClanFilter) (*types.Page[types.ClanMember], error) {
	return list[types.ClanMember](ctx, httpClient, baseURL, "clan-members", "clan members", filter)
}

// GetClanMemberByID retrieves a clan member by ID.
func GetClanMemberByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.ClanMember, error) {
	return one[types.ClanMember](ctx, httpClient, baseURL, "clan-members", "clan member by id", id)
}

// GetClanInvites lists clan invites.
func GetClanInvites(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.ClanFilter) (*types.Page[types.ClanInvite], error) {
	return list[types.ClanInvite](ctx, httpClient, baseURL, "clan-invites", "clan invites", filter)
}

// GetClanTiers lists clan tiers.
func GetClanTiers(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.ClanTier], error) {
	return list[types.ClanTier](ctx, httpClient, baseURL, "clan-tiers", "clan tiers", filter)
}

// GetClanTierByID retrieves a clan tier by ID.
func GetClanTierByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.ClanTier, error) {
	return one[types.ClanTier](ctx, httpClient, baseURL, "clan-tiers", "clan tier by id", id)
}

// GetClansWithinVaultMMRAttackingRange lists the clans clan id may attack.
func GetClansWithinVaultMMRAttackingRange(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) ([]types.Clan, error) {
	return array[types.Clan](ctx, httpClient, baseURL, "clans-within-vault-mmr-attacking-range", "clans within vault mmr attacking range", id)
}

// GetTerritories lists territories.
func GetTerritories(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.Territory], error) {
	return list[types.Territory](ctx, httpClient, baseURL, "territories", "territories", filter)
}

// GetTerritoryByID retrieves a territory by ID.
func GetTerritoryByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.Territory, error) {
	return one[types.Territory](ctx, httpClient, baseURL, "territories", "territory by id", id)
}

// GetClanBattles lists clan battles.
func GetClanBattles(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.ClanBattle], error) {
	return list[types.ClanBattle](ctx, httpClient, baseURL, "clan-battles", "clan battles", filter)
}

// GetClanBattleByID retrieves a clan battle by ID.
func GetClanBattleByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.ClanBattle, error) {
	return one[types.ClanBattle](ctx, httpClient, baseURL, "clan-battles", "clan battle by id", id)
}

// GetLockedBankVaultClanBattlePairs lists locked bank vault battle pairings.
func GetLockedBankVaultClanBattlePairs(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.LockedBankVaultClanBattlePair], error) {
	return list[types.LockedBankVaultClanBattlePair](ctx, httpClient, baseURL, "locked-bank-vault-clan-battle-pairs", "locked bank vault clan battle pairs", filter)
}

// GetLockedBankVaultClanBattlePairByID retrieves a locked bank vault battle pairing by ID.
func GetLockedBankVaultClanBattlePairByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.LockedBankVaultClanBattlePair, error) {
	return one[types.LockedBankVaultClanBattlePair](ctx, httpClient, baseURL, "locked-bank-vault-clan-battle-pairs", "locked bank vault clan battle pair by id", id)
}
