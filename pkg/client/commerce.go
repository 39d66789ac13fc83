package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// Trading post resources. Prices and listings are id-keyed like any
// other detail resource; the exchange endpoints take a quantity scalar
// that becomes part of the cache key.

// ListCommercePrices returns the ids of all items with price data.
func (c *Client) ListCommercePrices(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "commerce/prices", nil, "")
}

// CommercePrices returns buy/sell price details for the given item ids.
func (c *Client) CommercePrices(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "commerce/prices", Many(ids...), "")
}

// CommercePrice returns the price details of a single item.
func (c *Client) CommercePrice(ctx context.Context, id int) (json.RawMessage, error) {
	return c.fetchDetail(ctx, "commerce/prices", One(id), "")
}

// ListCommerceListings returns the ids of all items with listings.
func (c *Client) ListCommerceListings(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "commerce/listings", nil, "")
}

// CommerceListings returns order book details for the given item ids.
func (c *Client) CommerceListings(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "commerce/listings", Many(ids...), "")
}

// CommerceListing returns the order book of a single item.
func (c *Client) CommerceListing(ctx context.Context, id int) (json.RawMessage, error) {
	return c.fetchDetail(ctx, "commerce/listings", One(id), "")
}

// CommerceExchangeCoins returns the gem value of the given coin quantity.
func (c *Client) CommerceExchangeCoins(ctx context.Context, quantity int64) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("quantity", strconv.FormatInt(quantity, 10))
	return c.fetchCollection(ctx, "commerce/exchange/coins", params, "")
}

// CommerceExchangeGems returns the coin value of the given gem quantity.
func (c *Client) CommerceExchangeGems(ctx context.Context, quantity int64) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("quantity", strconv.FormatInt(quantity, 10))
	return c.fetchCollection(ctx, "commerce/exchange/gems", params, "")
}

// CommerceTransactions returns the account's trading post transactions.
// scope is "current" or "history", kind is "buys" or "sells".
func (c *Client) CommerceTransactions(ctx context.Context, apiKey, scope, kind string) (json.RawMessage, error) {
	switch scope {
	case "current", "history":
	default:
		return nil, &InvalidArgumentError{Reason: "transaction scope must be current or history"}
	}
	switch kind {
	case "buys", "sells":
	default:
		return nil, &InvalidArgumentError{Reason: "transaction kind must be buys or sells"}
	}

	key, err := c.auth(apiKey)
	if err != nil {
		return nil, err
	}
	return c.fetchCollection(ctx, "commerce/transactions/"+scope+"/"+kind, nil, key)
}
