package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/0xJijimi/estfor-api/client/internal/api"
)

// DefaultBaseURL is the public Estfor API.
const DefaultBaseURL = "https://api.estfor.com"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is a read-only client for the Estfor game-data API. It holds no
// mutable state after construction and is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client

	timeout  time.Duration
	debug    bool
	logger   zerolog.Logger
	registry prometheus.Registerer
}

// New constructs a Client. Without options it talks to DefaultBaseURL using
// a fresh http.Client with no timeout; deadlines come from ctx.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{},
		logger:  log.Logger,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("client option: %w", err)
		}
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	if c.timeout > 0 {
		c.http.Timeout = c.timeout
	}

	if err := c.wrapTransport(); err != nil {
		return nil, err
	}
	return c, nil
}

// wrapTransport installs the optional metrics and debug round trippers on
// top of whatever transport the http.Client already carries.
func (c *Client) wrapTransport() error {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	if c.registry != nil {
		rt, err := instrumentTransport(c.registry, base)
		if err != nil {
			return fmt.Errorf("register client metrics: %w", err)
		}
		base = rt
	}
	if c.debug {
		base = &debugTransport{base: base, logger: c.logger}
	}
	c.http.Transport = base
	return nil
}

// BaseURL returns the API root every request is resolved against.
func (c *Client) BaseURL() string { return c.baseURL }

// --------------------------------------------------------------------
// Action operations - delegated to internal/api
// --------------------------------------------------------------------

// GetActions lists actions.
func (c *Client) GetActions(ctx context.Context, filter *ActionsFilter) (*Page[Action], error) {
	return api.GetActions(ctx, c.http, c.baseURL, filter)
}

// GetActionByID retrieves an action by ID.
func (c *Client) GetActionByID(ctx context.Context, id string) (*Action, error) {
	return api.GetActionByID(ctx, c.http, c.baseURL, id)
}

// GetActionChoices lists the choices of one action.
func (c *Client) GetActionChoices(ctx context.Context, actionID string, filter *ActionsFilter) (*Page[ActionChoice], error) {
	return api.GetActionChoices(ctx, c.http, c.baseURL, actionID, filter)
}

// GetInstantActions lists instant actions.
func (c *Client) GetInstantActions(ctx context.Context, filter *Pagination) (*Page[InstantAction], error) {
	return api.GetInstantActions(ctx, c.http, c.baseURL, filter)
}

// GetInstantActionByID retrieves an instant action by ID.
func (c *Client) GetInstantActionByID(ctx context.Context, id string) (*InstantAction, error) {
	return api.GetInstantActionByID(ctx, c.http, c.baseURL, id)
}

// GetInstantVRFActions lists instant VRF actions.
func (c *Client) GetInstantVRFActions(ctx context.Context, filter *Pagination) (*Page[InstantVRFAction], error) {
	return api.GetInstantVRFActions(ctx, c.http, c.baseURL, filter)
}

// GetInstantVRFActionByID retrieves an instant VRF action by ID.
func (c *Client) GetInstantVRFActionByID(ctx context.Context, id string) (*InstantVRFAction, error) {
	return api.GetInstantVRFActionByID(ctx, c.http, c.baseURL, id)
}

// GetQueuedInstantVRFActionByID retrieves a queued instant VRF action by ID.
func (c *Client) GetQueuedInstantVRFActionByID(ctx context.Context, id string) (*QueuedInstantVRFAction, error) {
	return api.GetQueuedInstantVRFActionByID(ctx, c.http, c.baseURL, id)
}

// GetPassiveActions lists passive actions.
func (c *Client) GetPassiveActions(ctx context.Context, filter *Pagination) (*Page[PassiveAction], error) {
	return api.GetPassiveActions(ctx, c.http, c.baseURL, filter)
}

// GetPassiveActionByID retrieves a passive action by ID.
func (c *Client) GetPassiveActionByID(ctx context.Context, id string) (*PassiveAction, error) {
	return api.GetPassiveActionByID(ctx, c.http, c.baseURL, id)
}

// GetQueuedPassiveActionByID retrieves a queued passive action by ID.
func (c *Client) GetQueuedPassiveActionByID(ctx context.Context, id string) (*QueuedPassiveAction, error) {
	return api.GetQueuedPassiveActionByID(ctx, c.http, c.baseURL, id)
}

// --------------------------------------------------------------------
// Activity and queued action operations - delegated to internal/api
// --------------------------------------------------------------------

// GetActivities lists activities across all users.
func (c *Client) GetActivities(ctx context.Context, filter *ActivitiesFilter) (*Page[Activity], error) {
	return api.GetActivities(ctx, c.http, c.baseURL, filter)
}

// GetActivitiesByUser lists the activities of one user address.
func (c *Client) GetActivitiesByUser(ctx context.Context, userAddress string, filter *UserActivitiesFilter) (*Page[Activity], error) {
	return api.GetActivitiesByUser(ctx, c.http, c.baseURL, userAddress, filter)
}

// GetQueuedActions lists queued actions.
func (c *Client) GetQueuedActions(ctx context.Context, filter *QueuedActionsFilter) (*Page[Activity], error) {
	return api.GetQueuedActions(ctx, c.http, c.baseURL, filter)
}

// GetQueuedActionsMulti looks up several queued actions in one POST.
func (c *Client) GetQueuedActionsMulti(ctx context.Context, queuedActionIDs []string) ([]Activity, error) {
	return api.GetQueuedActionsMulti(ctx, c.http, c.baseURL, queuedActionIDs)
}

// --------------------------------------------------------------------
// Item, avatar and equipment operations - delegated to internal/api
// --------------------------------------------------------------------

// GetAvatars lists avatars.
func (c *Client) GetAvatars(ctx context.Context) (*Page[Avatar], error) {
	return api.GetAvatars(ctx, c.http, c.baseURL)
}

// GetItems lists items.
func (c *Client) GetItems(ctx context.Context, filter *ItemsFilter) (*Page[Item], error) {
	return api.GetItems(ctx, c.http, c.baseURL, filter)
}

// GetItemByID retrieves an item by ID.
func (c *Client) GetItemByID(ctx context.Context, id string) (*Item, error) {
	return api.GetItemByID(ctx, c.http, c.baseURL, id)
}

// GetShopItems lists shop items.
func (c *Client) GetShopItems(ctx context.Context, filter *ShopItemsFilter) (*Page[ShopItem], error) {
	return api.GetShopItems(ctx, c.http, c.baseURL, filter)
}

// GetShopItemByID retrieves a shop item by ID.
func (c *Client) GetShopItemByID(ctx context.Context, id string) (*ShopItem, error) {
	return api.GetShopItemByID(ctx, c.http, c.baseURL, id)
}

// GetUserItemNFTs lists the item balances of one user address.
func (c *Client) GetUserItemNFTs(ctx context.Context, userAddress string, filter *UserItemNFTsFilter) (*Page[UserItemNFT], error) {
	return api.GetUserItemNFTs(ctx, c.http, c.baseURL, userAddress, filter)
}

// GetUserItemNFTsMulti looks up the item balances of several users in one POST.
func (c *Client) GetUserItemNFTsMulti(ctx context.Context, userAddresses []string) ([]UserItemNFT, error) {
	return api.GetUserItemNFTsMulti(ctx, c.http, c.baseURL, userAddresses)
}

// GetPlayerSelfMades lists the self-made items of one player.
func (c *Client) GetPlayerSelfMades(ctx context.Context, playerID string, filter *Pagination) (*Page[PlayerSelfMade], error) {
	return api.GetPlayerSelfMades(ctx, c.http, c.baseURL, playerID, filter)
}

// GetPlayerSelfMadesMulti looks up the self-made items of several players in one POST.
func (c *Client) GetPlayerSelfMadesMulti(ctx context.Context, playerIDs []string) ([]PlayerSelfMade, error) {
	return api.GetPlayerSelfMadesMulti(ctx, c.http, c.baseURL, playerIDs)
}

// GetLastFullEquipments retrieves the last full equipment a player used for a skill.
func (c *Client) GetLastFullEquipments(ctx context.Context, userAddress, playerID, skill string) (*LastFullEquipment, error) {
	return api.GetLastFullEquipments(ctx, c.http, c.baseURL, userAddress, playerID, skill)
}

// --------------------------------------------------------------------
// Player, user, quest and promotion operations - delegated to internal/api
// --------------------------------------------------------------------

// GetPlayers lists players.
func (c *Client) GetPlayers(ctx context.Context, filter *PlayersFilter) (*Page[Player], error) {
	return api.GetPlayers(ctx, c.http, c.baseURL, filter)
}

// GetPlayerByID retrieves a player by ID.
func (c *Client) GetPlayerByID(ctx context.Context, id string) (*Player, error) {
	return api.GetPlayerByID(ctx, c.http, c.baseURL, id)
}

// GetPlayersMulti looks up several players in one POST.
func (c *Client) GetPlayersMulti(ctx context.Context, playerIDs []string) ([]Player, error) {
	return api.GetPlayersMulti(ctx, c.http, c.baseURL, playerIDs)
}

// GetUsers lists users.
func (c *Client) GetUsers(ctx context.Context, filter *Pagination) (*Page[User], error) {
	return api.GetUsers(ctx, c.http, c.baseURL, filter)
}

// GetUserByAddress retrieves a user by wallet address.
func (c *Client) GetUserByAddress(ctx context.Context, address string) (*User, error) {
	return api.GetUserByAddress(ctx, c.http, c.baseURL, address)
}

// GetPlayerDayDatas lists per-player daily aggregates.
func (c *Client) GetPlayerDayDatas(ctx context.Context, filter *PlayerFilter) (*Page[PlayerDayData], error) {
	return api.GetPlayerDayDatas(ctx, c.http, c.baseURL, filter)
}

// GetQuests lists quests.
func (c *Client) GetQuests(ctx context.Context, filter *Pagination) (*Page[Quest], error) {
	return api.GetQuests(ctx, c.http, c.baseURL, filter)
}

// GetQuestByID retrieves a quest by ID.
func (c *Client) GetQuestByID(ctx context.Context, id string) (*Quest, error) {
	return api.GetQuestByID(ctx, c.http, c.baseURL, id)
}

// GetPlayerQuests lists quest progress rows.
func (c *Client) GetPlayerQuests(ctx context.Context, filter *PlayerFirstFilter) (*Page[PlayerQuest], error) {
	return api.GetPlayerQuests(ctx, c.http, c.baseURL, filter)
}

// GetPromotionByID retrieves a promotion by ID.
func (c *Client) GetPromotionByID(ctx context.Context, id string) (*Promotion, error) {
	return api.GetPromotionByID(ctx, c.http, c.baseURL, id)
}

// GetPlayerPromotions lists player promotion status rows.
func (c *Client) GetPlayerPromotions(ctx context.Context, filter *PlayerFirstFilter) (*Page[PlayerPromotion], error) {
	return api.GetPlayerPromotions(ctx, c.http, c.baseURL, filter)
}

// --------------------------------------------------------------------
// Clan, territory and battle operations - delegated to internal/api
// --------------------------------------------------------------------

// GetClans lists clans.
func (c *Client) GetClans(ctx context.Context, filter *Pagination) (*Page[Clan], error) {
	return api.GetClans(ctx, c.http, c.baseURL, filter)
}

// GetClanByID retrieves a clan by ID.
func (c *Client) GetClanByID(ctx context.Context, id string) (*Clan, error) {
	return api.GetClanByID(ctx, c.http, c.baseURL, id)
}

// GetClanMembers lists clan members.
func (c *Client) GetClanMembers(ctx context.Context, filter *ClanFilter) (*Page[ClanMember], error) {
	return api.GetClanMembers(ctx, c.http, c.baseURL, filter)
}

// GetClanMemberByID retrieves a clan member by ID.
func (c *Client) GetClanMemberByID(ctx context.Context, id string) (*ClanMember, error) {
	return api.GetClanMemberByID(ctx, c.http, c.baseURL, id)
}

// GetClanInvites lists clan invites.
func (c *Client) GetClanInvites(ctx context.Context, filter *ClanFilter) (*Page[ClanInvite], error) {
	return api.GetClanInvites(ctx, c.http, c.baseURL, filter)
}

// GetClanTiers lists clan tiers.
func (c *Client) GetClanTiers(ctx context.Context, filter *Pagination) (*Page[ClanTier], error) {
	return api.GetClanTiers(ctx, c.http, c.baseURL, filter)
}

// GetClanTierByID retrieves a clan tier by ID.
func (c *Client) GetClanTierByID(ctx context.Context, id string) (*ClanTier, error) {
	return api.GetClanTierByID(ctx, c.http, c.baseURL, id)
}

// GetClansWithinVaultMMRAttackingRange lists the clans clan id may attack.
func (c *Client) GetClansWithinVaultMMRAttackingRange(ctx context.Context, id string) ([]Clan, error) {
	return api.GetClansWithinVaultMMRAttackingRange(ctx, c.http, c.baseURL, id)
}

// GetTerritories lists territories.
func (c *Client) GetTerritories(ctx context.Context, filter *Pagination) (*Page[Territory], error) {
	return api.GetTerritories(ctx, c.http, c.baseURL, filter)
}

// GetTerritoryByID retrieves a territory by ID.
func (c *Client) GetTerritoryByID(ctx context.Context, id string) (*Territory, error) {
	return api.GetTerritoryByID(ctx, c.http, c.baseURL, id)
}

// GetClanBattles lists clan battles.
func (c *Client) GetClanBattles(ctx context.Context, filter *Pagination) (*Page[ClanBattle], error) {
	return api.GetClanBattles(ctx, c.http, c.baseURL, filter)
}

// GetClanBattleByID retrieves a clan battle by ID.
func (c *Client) GetClanBattleByID(ctx context.Context, id string) (*ClanBattle, error) {
	return api.GetClanBattleByID(ctx, c.http, c.baseURL, id)
}

// GetLockedBankVaultClanBattlePairs lists locked bank vault battle pairings.
func (c *Client) GetLockedBankVaultClanBattlePairs(ctx context.Context, filter *Pagination) (*Page[LockedBankVaultClanBattlePair], error) {
	return api.GetLockedBankVaultClanBattlePairs(ctx, c.http, c.baseURL, filter)
}

// GetLockedBankVaultClanBattlePairByID retrieves a locked bank vault battle pairing by ID.
func (c *Client) GetLockedBankVaultClanBattlePairByID(ctx context.Context, id string) (*LockedBankVaultClanBattlePair, error) {
	return api.GetLockedBankVaultClanBattlePairByID(ctx, c.http, c.baseURL, id)
}

// --------------------------------------------------------------------
// Game-wide statistics and health - delegated to internal/api
// --------------------------------------------------------------------

// GetCoreData retrieves the aggregate game counters.
func (c *Client) GetCoreData(ctx context.Context) (*CoreData, error) {
	return api.GetCoreData(ctx, c.http, c.baseURL)
}

// GetXPThresholdRewards lists XP threshold rewards.
func (c *Client) GetXPThresholdRewards(ctx context.Context) (*Page[XPThresholdReward], error) {
	return api.GetXPThresholdRewards(ctx, c.http, c.baseURL)
}

// GetRandomWords lists VRF random words.
func (c *Client) GetRandomWords(ctx context.Context) (*Page[RandomWord], error) {
	return api.GetRandomWords(ctx, c.http, c.baseURL)
}

// GetDonations lists donations.
func (c *Client) GetDonations(ctx context.Context, filter *Pagination) (*Page[Donation], error) {
	return api.GetDonations(ctx, c.http, c.baseURL, filter)
}

// GetDonationDayDatas lists daily donation aggregates.
func (c *Client) GetDonationDayDatas(ctx context.Context, filter *Pagination) (*Page[DonationDayData], error) {
	return api.GetDonationDayDatas(ctx, c.http, c.baseURL, filter)
}

// GetLotteries lists lotteries.
func (c *Client) GetLotteries(ctx context.Context, filter *Pagination) (*Page[Lottery], error) {
	return api.GetLotteries(ctx, c.http, c.baseURL, filter)
}

// GetLotteryByID retrieves a lottery by ID.
func (c *Client) GetLotteryByID(ctx context.Context, id string) (*Lottery, error) {
	return api.GetLotteryByID(ctx, c.http, c.baseURL, id)
}

// GetRaffleEntries lists raffle entries.
func (c *Client) GetRaffleEntries(ctx context.Context, filter *Pagination) (*Page[RaffleEntry], error) {
	return api.GetRaffleEntries(ctx, c.http, c.baseURL, filter)
}

// GetRaffleEntryByID retrieves a raffle entry by ID.
func (c *Client) GetRaffleEntryByID(ctx context.Context, id string) (*RaffleEntry, error) {
	return api.GetRaffleEntryByID(ctx, c.http, c.baseURL, id)
}

// GetFirstToReachMaxSkills lists the first players to max each skill.
func (c *Client) GetFirstToReachMaxSkills(ctx context.Context) ([]FirstToReachMaxSkills, error) {
	return api.GetFirstToReachMaxSkills(ctx, c.http, c.baseURL)
}

// GetSubgraphHealth retrieves the sync state of the backing subgraph.
func (c *Client) GetSubgraphHealth(ctx context.Context) (*SubgraphHealth, error) {
	return api.GetSubgraphHealth(ctx, c.http, c.baseURL)
}

// --------------------------------------------------------------------
// Order book operations - delegated to internal/api
// --------------------------------------------------------------------

// GetOrders lists order-book orders.
func (c *Client) GetOrders(ctx context.Context, filter *Pagination) (*Page[Order], error) {
	return api.GetOrders(ctx, c.http, c.baseURL, filter)
}

// GetFailedOrders lists rejected orders.
func (c *Client) GetFailedOrders(ctx context.Context, filter *Pagination) (*Page[FailedOrder], error) {
	return api.GetFailedOrders(ctx, c.http, c.baseURL, filter)
}

// GetPriceLevels lists order-book price levels.
func (c *Client) GetPriceLevels(ctx context.Context, filter *Pagination) (*Page[PriceLevel], error) {
	return api.GetPriceLevels(ctx, c.http, c.baseURL, filter)
}

// GetTokenInfos lists token metadata.
func (c *Client) GetTokenInfos(ctx context.Context, filter *Pagination) (*Page[TokenInfo], error) {
	return api.GetTokenInfos(ctx, c.http, c.baseURL, filter)
}

// GetSaleHistories lists completed sales.
func (c *Client) GetSaleHistories(ctx context.Context, filter *Pagination) (*Page[SaleHistory], error) {
	return api.GetSaleHistories(ctx, c.http, c.baseURL, filter)
}

// GetOrderBookDayDatas lists daily order-book aggregates for one token.
func (c *Client) GetOrderBookDayDatas(ctx context.Context, tokenID string, filter *Pagination) (*Page[OrderBookDayData], error) {
	return api.GetOrderBookDayDatas(ctx, c.http, c.baseURL, tokenID, filter)
}

// --------------------------------------------------------------------
// Pet operations - delegated to internal/api
// --------------------------------------------------------------------

// GetBasePets lists pet templates.
func (c *Client) GetBasePets(ctx context.Context, filter *Pagination) (*Page[BasePet], error) {
	return api.GetBasePets(ctx, c.http, c.baseURL, filter)
}

// GetBasePetByID retrieves a pet template by ID.
func (c *Client) GetBasePetByID(ctx context.Context, id string) (*BasePet, error) {
	return api.GetBasePetByID(ctx, c.http, c.baseURL, id)
}

// GetPets lists owned pets.
func (c *Client) GetPets(ctx context.Context, filter *Pagination) (*Page[Pet], error) {
	return api.GetPets(ctx, c.http, c.baseURL, filter)
}

// GetPetByID retrieves an owned pet by ID.
func (c *Client) GetPetByID(ctx context.Context, id string) (*Pet, error) {
	return api.GetPetByID(ctx, c.http, c.baseURL, id)
}
