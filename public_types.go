package client

import "github.com/0xJijimi/estfor-api/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Envelope
	Page[T any] = types.Page[T]
	Entity      = types.Entity

	// Filters
	Pagination           = types.Pagination
	ActionsFilter        = types.ActionsFilter
	ActivitiesFilter     = types.ActivitiesFilter
	UserActivitiesFilter = types.UserActivitiesFilter
	ItemsFilter          = types.ItemsFilter
	PlayersFilter        = types.PlayersFilter
	QueuedActionsFilter  = types.QueuedActionsFilter
	ShopItemsFilter      = types.ShopItemsFilter
	UserItemNFTsFilter   = types.UserItemNFTsFilter
	PlayerFilter         = types.PlayerFilter
	PlayerFirstFilter    = types.PlayerFirstFilter
	ClanFilter           = types.ClanFilter

	// Actions and activity
	Action                 = types.Action
	ActionChoice           = types.ActionChoice
	Activity               = types.Activity
	InstantAction          = types.InstantAction
	InstantVRFAction       = types.InstantVRFAction
	QueuedInstantVRFAction = types.QueuedInstantVRFAction
	PassiveAction          = types.PassiveAction
	QueuedPassiveAction    = types.QueuedPassiveAction

	// Items and equipment
	Avatar            = types.Avatar
	Item              = types.Item
	ShopItem          = types.ShopItem
	UserItemNFT       = types.UserItemNFT
	PlayerSelfMade    = types.PlayerSelfMade
	LastFullEquipment = types.LastFullEquipment

	// Players and users
	Player          = types.Player
	User            = types.User
	PlayerDayData   = types.PlayerDayData
	Quest           = types.Quest
	PlayerQuest     = types.PlayerQuest
	Promotion       = types.Promotion
	PlayerPromotion = types.PlayerPromotion

	// Clans
	Clan                          = types.Clan
	ClanMember                    = types.ClanMember
	ClanInvite                    = types.ClanInvite
	ClanTier                      = types.ClanTier
	Territory                     = types.Territory
	ClanBattle                    = types.ClanBattle
	LockedBankVaultClanBattlePair = types.LockedBankVaultClanBattlePair

	// Game-wide
	CoreData              = types.CoreData
	XPThresholdReward     = types.XPThresholdReward
	RandomWord            = types.RandomWord
	Donation              = types.Donation
	DonationDayData       = types.DonationDayData
	Lottery               = types.Lottery
	RaffleEntry           = types.RaffleEntry
	FirstToReachMaxSkills = types.FirstToReachMaxSkills
	SubgraphHealth        = types.SubgraphHealth
	SubgraphChain         = types.SubgraphChain

	// Order book
	Order            = types.Order
	FailedOrder      = types.FailedOrder
	PriceLevel       = types.PriceLevel
	TokenInfo        = types.TokenInfo
	SaleHistory      = types.SaleHistory
	OrderBookDayData = types.OrderBookDayData

	// Pets
	BasePet = types.BasePet
	Pet     = types.Pet
)

// String returns a pointer to s, for optional filter fields.
func String(s string) *string { return types.String(s) }

// Bool returns a pointer to b, for optional filter fields.
func Bool(b bool) *bool { return types.Bool(b) }

// Int returns a pointer to i, for optional filter fields.
func Int(i int) *int { return types.Int(i) }
