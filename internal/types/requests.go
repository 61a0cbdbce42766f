package types

// ------------------------------
// Filter Types
// ------------------------------
//
// Filters become query strings. Every field is optional: a nil pointer or
// nil slice is left out of the query entirely. Fields are encoded in
// declaration order, so the order below is the order on the wire.

// Pagination holds the skip/fetch/sort keys most list endpoints accept.
type Pagination struct {
	NumToSkip      *int    `url:"numToSkip"`
	NumToFetch     *int    `url:"numToFetch"`
	OrderBy        *string `url:"orderBy"`
	OrderDirection *string `url:"orderDirection"`
}

// ActionsFilter is accepted by the actions and action-choices endpoints.
type ActionsFilter struct {
	OrderDirection *string `url:"orderDirection"`
	NumToSkip      *int    `url:"numToSkip"`
	NumToFetch     *int    `url:"numToFetch"`
	OrderBy        *string `url:"orderBy"`
	IsAvailable    *bool   `url:"isAvailable"`
}

// ActivitiesFilter is accepted by the activities endpoint.
type ActivitiesFilter struct {
	ActivityTypesToSkip    []string `url:"activityTypesToSkip"`
	ActivityTypesToInclude []string `url:"activityTypesToInclude"`
	PlayerID               *string  `url:"playerId"`
	UserAddress            *string  `url:"userAddress"`
	ActivityType           *string  `url:"activityType"`
	Block                  *string  `url:"block"`
	Simplified             *bool    `url:"simplified"`
	OrderDirection         *string  `url:"orderDirection"`
	NumToSkip              *int     `url:"numToSkip"`
	NumToFetch             *int     `url:"numToFetch"`
	OrderBy                *string  `url:"orderBy"`
}

// UserActivitiesFilter is ActivitiesFilter without userAddress, which is
// carried in the path instead.
type UserActivitiesFilter struct {
	ActivityTypesToSkip    []string `url:"activityTypesToSkip"`
	ActivityTypesToInclude []string `url:"activityTypesToInclude"`
	PlayerID               *string  `url:"playerId"`
	ActivityType           *string  `url:"activityType"`
	Block                  *string  `url:"block"`
	Simplified             *bool    `url:"simplified"`
	OrderDirection         *string  `url:"orderDirection"`
	NumToSkip              *int     `url:"numToSkip"`
	NumToFetch             *int     `url:"numToFetch"`
	OrderBy                *string  `url:"orderBy"`
}

// ItemsFilter is accepted by the items endpoint.
type ItemsFilter struct {
	Pagination
	TokenIDs         []string `url:"tokenIds"`
	TokenIDsGE       *string  `url:"tokenIds_ge"`
	TokenIDsLE       *string  `url:"tokenIds_le"`
	IsSellableToShop *bool    `url:"isSellableToShop"`
	IsAvailable      *bool    `url:"isAvailable"`
}

// PlayersFilter is accepted by the players endpoint.
type PlayersFilter struct {
	Pagination
	UserAddress *string `url:"userAddress"`
	IsActive    *bool   `url:"isActive"`
}

// QueuedActionsFilter is accepted by the queued-actions endpoint.
type QueuedActionsFilter struct {
	Pagination
	PlayerID    *string `url:"playerId"`
	UserAddress *string `url:"userAddress"`
	IsActive    *bool   `url:"isActive"`
}

// ShopItemsFilter is accepted by the shop-items endpoint.
type ShopItemsFilter struct {
	Pagination
	TokenID     *string `url:"tokenId"`
	IsAvailable *bool   `url:"isAvailable"`
}

// UserItemNFTsFilter is accepted by the user-item-nfts endpoint.
type UserItemNFTsFilter struct {
	Pagination
	TokenID *string `url:"tokenId"`
}

// PlayerFilter narrows a paginated list to one player. The player key
// follows the pagination keys.
type PlayerFilter struct {
	Pagination
	PlayerID *string `url:"playerId"`
}

// PlayerFirstFilter narrows a paginated list to one player, with the player
// key ahead of the pagination keys.
type PlayerFirstFilter struct {
	PlayerID *string `url:"playerId"`
	Pagination
}

// ClanFilter narrows a paginated list to one clan.
type ClanFilter struct {
	Pagination
	ClanID *string `url:"clanId"`
}

// ------------------------------
// Batch Request Bodies
// ------------------------------

// PlayerIDsRequest is the body of the players and player-self-mades multi lookups.
type PlayerIDsRequest struct {
	PlayerIDs []string `json:"playerIds"`
}

// QueuedActionIDsRequest is the body of the queued-actions multi lookup.
type QueuedActionIDsRequest struct {
	QueuedActionIDs []string `json:"queuedActionIds"`
}

// UserAddressesRequest is the body of the user-item-nfts multi lookup.
type UserAddressesRequest struct {
	UserAddresses []string `json:"userAddresses"`
}

// ------------------------------
// Pointer helpers
// ------------------------------

// String returns a pointer to s.
func String(s string) *string { return &s }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i.
func Int(i int) *int { return &i }
