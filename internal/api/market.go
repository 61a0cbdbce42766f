package api

import (
	"context"

	"github.com/0xJijimi/estfor-api/client/internal/types"
)

// GetOrders lists order-book orders.
func GetOrders(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.Order], error) {
	return list[types.Order](ctx, httpClient, baseURL, "orders", "orders", filter)
}

// GetFailedOrders lists rejected orders.
func GetFailedOrders(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.FailedOrder], error) {
	return list[types.FailedOrder](ctx, httpClient, baseURL, "failed-orders", "failed orders", filter)
}

// GetPriceLevels lists order-book price levels.
func GetPriceLevels(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.PriceLevel], error) {
	return list[types.PriceLevel](ctx, httpClient, baseURL, "price-levels", "price levels", filter)
}

// GetTokenInfos lists token metadata.
func GetTokenInfos(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.TokenInfo], error) {
	return list[types.TokenInfo](ctx, httpClient, baseURL, "token-infos", "token infos", filter)
}

// GetSaleHistories lists completed sales.
func GetSaleHistories(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.SaleHistory], error) {
	return list[types.SaleHistory](ctx, httpClient, baseURL, "sale-histories", "sale histories", filter)
}

// GetOrderBookDayDatas lists daily order-book aggregates for one token.
func GetOrderBookDayDatas(ctx context.Context, httpClient types.HTTPClient, baseURL, tokenID string, filter *types.Pagination) (*types.Page[types.OrderBookDayData], error) {
	return list[types.OrderBookDayData](ctx, httpClient, baseURL, "order-book-day-datas", "order book day datas", filter, tokenID)
}
