package api

import (
	"context"

	"github.com/0xJijimi/estfor-api/client/internal/types"
)

// GetAvatars lists avatars.
func GetAvatars(ctx context.Context, httpClient types.HTTPClient, baseURL string) (*types.Page[types.Avatar], error) {
	return list[types.Avatar](ctx, httpClient, baseURL, "avatars", "avatars", nil)
}

// GetItems lists items.
func GetItems(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.ItemsFilter) (*types.Page[types.Item], error) {
	return list[types.Item](ctx, httpClient, baseURL, "items", "items", filter)
}

// GetItemByID retrieves an item by ID.
func GetItemByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.Item, error) {
	return one[types.Item](ctx, httpClient, baseURL, "items", "item by id", id)
}

// GetShopItems lists shop items.
func GetShopItems(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.ShopItemsFilter) (*types.Page[types.ShopItem], error) {
	return list[types.ShopItem](ctx, httpClient, baseURL, "shop-items", "shop items", filter)
}

// GetShopItemByID retrieves a shop item by ID.
func GetShopItemByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.ShopItem, error) {
	return one[types.ShopItem](ctx, httpClient, baseURL, "shop-items", "shop item by id", id)
}

// GetUserItemNFTs lists the item balances of one user address.
func GetUserItemNFTs(ctx context.Context, httpClient types.HTTPClient, baseURL, userAddress string, filter *types.UserItemNFTsFilter) (*types.Page[types.UserItemNFT], error) {
	return list[types.UserItemNFT](ctx, httpClient, baseURL, "user-item-nfts", "user item NFTs", filter, userAddress)
}

// GetUserItemNFTsMulti looks up the item balances of several users in one POST.
func GetUserItemNFTsMulti(ctx context.Context, httpClient types.HTTPClient, baseURL string, userAddresses []string) ([]types.UserItemNFT, error) {
	return multi[types.UserItemNFT](ctx, httpClient, baseURL, "user-item-nfts", "multiple user item NFTs", types.UserAddressesRequest{UserAddresses: ids(userAddresses)})
}

// GetPlayerSelfMades lists the self-made items of one player.
func GetPlayerSelfMades(ctx context.Context, httpClient types.HTTPClient, baseURL, playerID string, filter *types.Pagination) (*types.Page[types.PlayerSelfMade], error) {
	return list[types.PlayerSelfMade](ctx, httpClient, baseURL, "player-self-mades", "player self-mades", filter, playerID)
}

// GetPlayerSelfMadesMulti looks up the self-made items of several players in one POST.
func GetPlayerSelfMadesMulti(ctx context.Context, httpClient types.HTTPClient, baseURL string, playerIDs []string) ([]types.PlayerSelfMade, error) {
	return multi[types.PlayerSelfMade](ctx, httpClient, baseURL, "player-self-mades", "multiple player self-mades", types.PlayerIDsRequest{PlayerIDs: ids(playerIDs)})
}

// GetLastFullEquipments retrieves the last full equipment a player used for a skill.
func GetLastFullEquipments(ctx context.Context, httpClient types.HTTPClient, baseURL, userAddress, playerID, skill string) (*types.LastFullEquipment, error) {
	return one[types.LastFullEquipment](ctx, httpClient, baseURL, "last-full-equipments", "last full equipments", userAddress, playerID, skill)
}
