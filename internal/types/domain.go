package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Entity carries the identifier shared by every record.
type Entity struct {
	ID string `json:"id"`
}

// Action is a queueable skill action.
type Action struct {
	Entity
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Skill         string  `json:"skill"`
	MinLevel      float64 `json:"minLevel"`
	XP            float64 `json:"xp"`
	InputTokenID  float64 `json:"inputTokenId"`
	InputAmount   float64 `json:"inputAmount"`
	OutputTokenID float64 `json:"outputTokenId"`
	OutputAmount  float64 `json:"outputAmount"`
	SuccessRate   float64 `json:"successRate"`
	IsAvailable   bool    `json:"isAvailable"`
}

// ActionChoice is one selectable variant of an action.
type ActionChoice struct {
	Entity
	ActionID      string  `json:"actionId"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Skill         string  `json:"skill"`
	MinLevel      float64 `json:"minLevel"`
	XP            float64 `json:"xp"`
	InputTokenID  float64 `json:"inputTokenId"`
	InputAmount   float64 `json:"inputAmount"`
	OutputTokenID float64 `json:"outputTokenId"`
	OutputAmount  float64 `json:"outputAmount"`
	SuccessRate   float64 `json:"successRate"`
	IsAvailable   bool    `json:"isAvailable"`
}

// Activity is a performed (or queued) action of a player.
type Activity struct {
	Entity
	PlayerID       string  `json:"playerId"`
	UserAddress    string  `json:"userAddress"`
	ActionID       string  `json:"actionId"`
	ActionChoiceID string  `json:"actionChoiceId"`
	StartTime      float64 `json:"startTime"`
	EndTime        float64 `json:"endTime"`
	XPGained       float64 `json:"xpGained"`
	InputTokenID   float64 `json:"inputTokenId"`
	InputAmount    float64 `json:"inputAmount"`
	OutputTokenID  float64 `json:"outputTokenId"`
	OutputAmount   float64 `json:"outputAmount"`
	Success        bool    `json:"success"`
}

// Avatar represents a player avatar
type Avatar struct {
	Entity
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// Item represents a game item
type Item struct {
	Entity
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	ImageURL         string  `json:"imageUrl"`
	TokenID          float64 `json:"tokenId"`
	IsSellableToShop bool    `json:"isSellableToShop"`
	IsAvailable      bool    `json:"isAvailable"`
}

// Player represents a player owned by a user address
type Player struct {
	Entity
	UserAddress string  `json:"userAddress"`
	Name        string  `json:"name"`
	AvatarID    string  `json:"avatarId"`
	Level       float64 `json:"level"`
	XP          float64 `json:"xp"`
	IsActive    bool    `json:"isActive"`
}

// ShopItem represents an item listed in the shop
type ShopItem struct {
	Entity
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	TokenID     float64 `json:"tokenId"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"isAvailable"`
}

// UserItemNFT is a balance of one item token held by a user
type UserItemNFT struct {
	Entity
	UserAddress string  `json:"userAddress"`
	TokenID     float64 `json:"tokenId"`
	Amount      float64 `json:"amount"`
}

// PlayerSelfMade is an item crafted by a player
type PlayerSelfMade struct {
	Entity
	PlayerID    string  `json:"playerId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	TokenID     float64 `json:"tokenId"`
	IsAvailable bool    `json:"isAvailable"`
}

// LastFullEquipment is the last complete equipment set used for a skill
type LastFullEquipment struct {
	Entity
	UserAddress string    `json:"userAddress"`
	PlayerID    string    `json:"playerId"`
	Skill       string    `json:"skill"`
	TokenIDs    []float64 `json:"tokenIds"`
	Amounts     []float64 `json:"amounts"`
}

// User represents a wallet user
type User struct {
	Entity
	Address  string  `json:"address"`
	Name     string  `json:"name"`
	AvatarID string  `json:"avatarId"`
	Level    float64 `json:"level"`
	XP       float64 `json:"xp"`
}

// XPThresholdReward is granted when a player crosses an XP threshold
type XPThresholdReward struct {
	Entity
	Level         float64 `json:"level"`
	XP            float64 `json:"xp"`
	RewardTokenID float64 `json:"rewardTokenId"`
	RewardAmount  float64 `json:"rewardAmount"`
}

// RandomWord is a VRF random word
type RandomWord struct {
	Entity
	Word      string  `json:"word"`
	CreatedAt float64 `json:"createdAt"`
}

// ------------------------------
// Analytics
// ------------------------------

// PlayerDayData aggregates one player's activity for one day
type PlayerDayData struct {
	Entity
	PlayerID         string  `json:"playerId"`
	Date             float64 `json:"date"`
	XPGained         float64 `json:"xpGained"`
	ActionsCompleted float64 `json:"actionsCompleted"`
}

// DonationDayData aggregates donations for one day
type DonationDayData struct {
	Entity
	Date           float64 `json:"date"`
	TotalDonations float64 `json:"totalDonations"`
	TotalAmount    float64 `json:"totalAmount"`
}

// CoreData holds aggregate counters across the whole game
type CoreData struct {
	Entity
	TotalPlayers                        float64 `json:"totalPlayers"`
	TotalClans                          float64 `json:"totalClans"`
	TotalItems                          float64 `json:"totalItems"`
	TotalActions                        float64 `json:"totalActions"`
	TotalQuests                         float64 `json:"totalQuests"`
	TotalDonations                      float64 `json:"totalDonations"`
	TotalLotteries                      float64 `json:"totalLotteries"`
	TotalRaffleEntries                  float64 `json:"totalRaffleEntries"`
	TotalFirstToReachMaxSkills          float64 `json:"totalFirstToReachMaxSkills"`
	TotalInstantActions                 float64 `json:"totalInstantActions"`
	TotalPromotions                     float64 `json:"totalPromotions"`
	TotalTerritories                    float64 `json:"totalTerritories"`
	TotalClanBattles                    float64 `json:"totalClanBattles"`
	TotalLockedBankVaultClanBattlePairs float64 `json:"totalLockedBankVaultClanBattlePairs"`
	TotalOrders                         float64 `json:"totalOrders"`
	TotalFailedOrders                   float64 `json:"totalFailedOrders"`
	TotalPriceLevels                    float64 `json:"totalPriceLevels"`
	TotalTokenInfos                     float64 `json:"totalTokenInfos"`
	TotalSaleHistories                  float64 `json:"totalSaleHistories"`
	TotalOrderBookDayDatas              float64 `json:"totalOrderBookDayDatas"`
	TotalInstantVRFActions              float64 `json:"totalInstantVrfActions"`
	TotalBasePets                       float64 `json:"totalBasePets"`
	TotalPets                           float64 `json:"totalPets"`
	TotalPassiveActions                 float64 `json:"totalPassiveActions"`
}

// Donation is a single donation
type Donation struct {
	Entity
	UserAddress string  `json:"userAddress"`
	Amount      float64 `json:"amount"`
	CreatedAt   float64 `json:"createdAt"`
}

// Lottery is a donation lottery round
type Lottery struct {
	Entity
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"imageUrl"`
	StartTime    float64 `json:"startTime"`
	EndTime      float64 `json:"endTime"`
	PrizeTokenID float64 `json:"prizeTokenId"`
	PrizeAmount  float64 `json:"prizeAmount"`
	Winner       string  `json:"winner"`
	WinnerAmount float64 `json:"winnerAmount"`
}

// RaffleEntry is a user's ticket purchase in a lottery
type RaffleEntry struct {
	Entity
	UserAddress string  `json:"userAddress"`
	LotteryID   string  `json:"lotteryId"`
	TicketCount float64 `json:"ticketCount"`
	CreatedAt   float64 `json:"createdAt"`
}

// FirstToReachMaxSkills records the first player to max a skill
type FirstToReachMaxSkills struct {
	Entity
	UserAddress string  `json:"userAddress"`
	PlayerID    string  `json:"playerId"`
	Skill       string  `json:"skill"`
	Level       float64 `json:"level"`
	XP          float64 `json:"xp"`
	Timestamp   float64 `json:"timestamp"`
}

// ------------------------------
// Clans
// ------------------------------

// Clan represents a clan
type Clan struct {
	Entity
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Leader      string  `json:"leader"`
	MemberCount float64 `json:"memberCount"`
	Level       float64 `json:"level"`
	XP          float64 `json:"xp"`
	Tier        float64 `json:"tier"`
	VaultMMR    float64 `json:"vaultMmr"`
}

// ClanMember represents a clan membership
type ClanMember struct {
	Entity
	ClanID      string  `json:"clanId"`
	UserAddress string  `json:"userAddress"`
	Role        string  `json:"role"`
	JoinedAt    float64 `json:"joinedAt"`
	XP          float64 `json:"xp"`
}

// ClanInvite represents a pending or answered clan invite
type ClanInvite struct {
	Entity
	ClanID      string  `json:"clanId"`
	UserAddress string  `json:"userAddress"`
	Status      string  `json:"status"`
	CreatedAt   float64 `json:"createdAt"`
}

// ClanTier describes the limits of a clan tier
type ClanTier struct {
	Entity
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	ImageURL         string  `json:"imageUrl"`
	Level            float64 `json:"level"`
	XPRequired       float64 `json:"xpRequired"`
	MemberLimit      float64 `json:"memberLimit"`
	VaultMMRRequired float64 `json:"vaultMmrRequired"`
}

// Territory is a clan-held territory
type Territory struct {
	Entity
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	ClanID      string  `json:"clanId"`
	Level       float64 `json:"level"`
	XP          float64 `json:"xp"`
}

// ClanBattle is a battle between two clans
type ClanBattle struct {
	Entity
	AttackerClanID   string  `json:"attackerClanId"`
	DefenderClanID   string  `json:"defenderClanId"`
	StartTime        float64 `json:"startTime"`
	EndTime          float64 `json:"endTime"`
	AttackerMMR      float64 `json:"attackerMmr"`
	DefenderMMR      float64 `json:"defenderMmr"`
	Winner           string  `json:"winner"`
	AttackerXPGained float64 `json:"attackerXpGained"`
	DefenderXPGained float64 `json:"defenderXpGained"`
}

// LockedBankVaultClanBattlePair links a clan's locked vault to a battle
type LockedBankVaultClanBattlePair struct {
	Entity
	ClanID     string  `json:"clanId"`
	BattleID   string  `json:"battleId"`
	LockedAt   float64 `json:"lockedAt"`
	UnlockedAt float64 `json:"unlockedAt"`
}

// ------------------------------
// Quests and promotions
// ------------------------------

// Quest represents a quest definition
type Quest struct {
	Entity
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"imageUrl"`
	Skill         string  `json:"skill"`
	MinLevel      float64 `json:"minLevel"`
	XP            float64 `json:"xp"`
	RewardTokenID float64 `json:"rewardTokenId"`
	RewardAmount  float64 `json:"rewardAmount"`
	IsAvailable   bool    `json:"isAvailable"`
}

// PlayerQuest tracks a player's progress on a quest
type PlayerQuest struct {
	Entity
	PlayerID    string  `json:"playerId"`
	QuestID     string  `json:"questId"`
	Status      string  `json:"status"`
	Progress    float64 `json:"progress"`
	CompletedAt float64 `json:"completedAt"`
}

// Promotion represents a time-limited promotion
type Promotion struct {
	Entity
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"imageUrl"`
	StartTime     float64 `json:"startTime"`
	EndTime       float64 `json:"endTime"`
	RewardTokenID float64 `json:"rewardTokenId"`
	RewardAmount  float64 `json:"rewardAmount"`
}

// PlayerPromotion is a player's status within a promotion
type PlayerPromotion struct {
	Entity
	PlayerID    string  `json:"playerId"`
	PromotionID string  `json:"promotionId"`
	Status      string  `json:"status"`
	CreatedAt   float64 `json:"createdAt"`
}

// ------------------------------
// Marketplace
// ------------------------------

// Order is an order-book order
type Order struct {
	Entity
	UserAddress string  `json:"userAddress"`
	TokenID     float64 `json:"tokenId"`
	Amount      float64 `json:"amount"`
	Price       float64 `json:"price"`
	CreatedAt   float64 `json:"createdAt"`
	Status      string  `json:"status"`
}

// FailedOrder is an order the book rejected
type FailedOrder struct {
	Entity
	UserAddress string  `json:"userAddress"`
	TokenID     float64 `json:"tokenId"`
	Amount      float64 `json:"amount"`
	Price       float64 `json:"price"`
	CreatedAt   float64 `json:"createdAt"`
	Reason      string  `json:"reason"`
}

// PriceLevel is one price level of a token's book
type PriceLevel struct {
	Entity
	TokenID float64 `json:"tokenId"`
	Level   float64 `json:"level"`
	Price   float64 `json:"price"`
}

// TokenInfo holds token metadata
type TokenInfo struct {
	Entity
	TokenID     float64 `json:"tokenId"`
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	Decimals    float64 `json:"decimals"`
	TotalSupply float64 `json:"totalSupply"`
}

// SaleHistory is a completed sale
type SaleHistory struct {
	Entity
	TokenID   float64 `json:"tokenId"`
	Seller    string  `json:"seller"`
	Buyer     string  `json:"buyer"`
	Amount    float64 `json:"amount"`
	Price     float64 `json:"price"`
	Timestamp float64 `json:"timestamp"`
}

// OrderBookDayData aggregates one token's order book for one day
type OrderBookDayData struct {
	Entity
	TokenID      float64 `json:"tokenId"`
	Date         float64 `json:"date"`
	TotalVolume  float64 `json:"totalVolume"`
	TotalAmount  float64 `json:"totalAmount"`
	AveragePrice float64 `json:"averagePrice"`
}

// ------------------------------
// Instant, VRF and passive actions
// ------------------------------

// InstantAction resolves immediately without queueing
type InstantAction struct {
	Entity
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Skill         string  `json:"skill"`
	MinLevel      float64 `json:"minLevel"`
	XP            float64 `json:"xp"`
	InputTokenID  float64 `json:"inputTokenId"`
	InputAmount   float64 `json:"inputAmount"`
	OutputTokenID float64 `json:"outputTokenId"`
	OutputAmount  float64 `json:"outputAmount"`
	SuccessRate   float64 `json:"successRate"`
	IsAvailable   bool    `json:"isAvailable"`
}

// InstantVRFAction resolves after a VRF callback
type InstantVRFAction struct {
	Entity
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Skill         string  `json:"skill"`
	MinLevel      float64 `json:"minLevel"`
	XP            float64 `json:"xp"`
	InputTokenID  float64 `json:"inputTokenId"`
	InputAmount   float64 `json:"inputAmount"`
	OutputTokenID float64 `json:"outputTokenId"`
	OutputAmount  float64 `json:"outputAmount"`
	SuccessRate   float64 `json:"successRate"`
	IsAvailable   bool    `json:"isAvailable"`
}

// QueuedInstantVRFAction is an instant VRF action waiting on randomness
type QueuedInstantVRFAction struct {
	Entity
	UserAddress string  `json:"userAddress"`
	ActionID    string  `json:"actionId"`
	StartTime   float64 `json:"startTime"`
	EndTime     float64 `json:"endTime"`
	Status      string  `json:"status"`
}

// PassiveAction runs in the background for a fixed duration
type PassiveAction struct {
	Entity
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Skill         string  `json:"skill"`
	MinLevel      float64 `json:"minLevel"`
	XP            float64 `json:"xp"`
	InputTokenID  float64 `json:"inputTokenId"`
	InputAmount   float64 `json:"inputAmount"`
	OutputTokenID float64 `json:"outputTokenId"`
	OutputAmount  float64 `json:"outputAmount"`
	SuccessRate   float64 `json:"successRate"`
	IsAvailable   bool    `json:"isAvailable"`
}

// QueuedPassiveAction is a passive action in progress
type QueuedPassiveAction struct {
	Entity
	UserAddress string  `json:"userAddress"`
	ActionID    string  `json:"actionId"`
	StartTime   float64 `json:"startTime"`
	EndTime     float64 `json:"endTime"`
	Status      string  `json:"status"`
}

// ------------------------------
// Pets
// ------------------------------

// BasePet is a pet template
type BasePet struct {
	Entity
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Skill       string  `json:"skill"`
	MinLevel    float64 `json:"minLevel"`
	XP          float64 `json:"xp"`
}

// Pet is an owned pet instance
type Pet struct {
	Entity
	BasePetID   string  `json:"basePetId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Skill       string  `json:"skill"`
	MinLevel    float64 `json:"minLevel"`
	XP          float64 `json:"xp"`
	Owner       string  `json:"owner"`
}

// ------------------------------
// Indexer health
// ------------------------------

// SubgraphChain reports block progress of one indexed chain
type SubgraphChain struct {
	ChainHeadBlock   float64 `json:"chainHeadBlock"`
	LatestBlock      float64 `json:"latestBlock"`
	LastHealthyBlock float64 `json:"lastHealthyBlock"`
}

// SubgraphHealth reports the sync state of the backing subgraph
type SubgraphHealth struct {
	Entity
	Synced         bool            `json:"synced"`
	Health         string          `json:"health"`
	FatalError     string          `json:"fatalError"`
	NonFatalErrors []string        `json:"nonFatalErrors"`
	Chains         []SubgraphChain `json:"chains"`
}
