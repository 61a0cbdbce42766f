package api

import (
	"context"

	"github.com/0xJijimi/estfor-api/client/internal/types"
)

// GetCoreData retrieves the aggregate game counters.
func GetCoreData(ctx context.Context, httpClient types.HTTPClient, baseURL string) (*types.CoreData, error) {
	return one[types.CoreData](ctx, httpClient, baseURL, "core-data", "core data")
}

// GetXPThresholdRewards lists XP threshold rewards.
func GetXPThresholdRewards(ctx context.Context, httpClient types.HTTPClient, baseURL string) (*types.Page[types.XPThresholdReward], error) {
	return list[types.XPThresholdReward](ctx, httpClient, baseURL, "xp-threshold-rewards", "XP threshold rewards", nil)
}

// GetRandomWords lists VRF random words.
func GetRandomWords(ctx context.Context, httpClient types.HTTPClient, baseURL string) (*types.Page[types.RandomWord], error) {
	return list[types.RandomWord](ctx, httpClient, baseURL, "random-words", "random words", nil)
}

// GetDonations lists donations.
func GetDonations(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.Donation], error) {
	return list[types.Donation](ctx, httpClient, baseURL, "donations", "donations", filter)
}

// GetDonationDayDatas lists daily donation aggregates.
func GetDonationDayDatas(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.DonationDayData], error) {
	return list[types.DonationDayData](ctx, httpClient, baseURL, "donation-day-datas", "donation day datas", filter)
}

// GetLotteries lists lotteries.
func GetLotteries(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.Lottery], error) {
	return list[types.Lottery](ctx, httpClient, baseURL, "lotteries", "lotteries", filter)
}

// GetLotteryByID retrieves a lottery by ID.
func GetLotteryByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.Lottery, error) {
	return one[types.Lottery](ctx, httpClient, baseURL, "lotteries", "lottery by id", id)
}

// GetRaffleEntries lists raffle entries.
func GetRaffleEntries(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.RaffleEntry], error) {
	return list[types.RaffleEntry](ctx, httpClient, baseURL, "raffle-entries", "raffle entries", filter)
}

// GetRaffleEntryByID retrieves a raffle entry by ID.
func GetRaffleEntryByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.RaffleEntry, error) {
	return one[types.RaffleEntry](ctx, httpClient, baseURL, "raffle-entries", "raffle entry by id", id)
}

// GetFirstToReachMaxSkills lists the first players to max each skill.
func GetFirstToReachMaxSkills(ctx context.Context, httpClient types.HTTPClient, baseURL string) ([]types.FirstToReachMaxSkills, error) {
	return array[types.FirstToReachMaxSkills](ctx, httpClient, baseURL, "first-to-reach-max-skills", "first to reach max skills")
}

// GetSubgraphHealth retrieves the sync state of the backing subgraph.
func GetSubgraphHealth(ctx context.Context, httpClient types.HTTPClient, baseURL string) (*types.SubgraphHealth, error) {
	return one[types.SubgraphHealth](ctx, httpClient, baseURL, "subgraph-health", "subgraph health")
}
