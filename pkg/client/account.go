package client

import (
	"context"
	"encoding/json"
	"net/url"
)

// Account-scoped resources. Every method takes an API key; an empty
// key falls back to the one configured on the client. The key is sent
// as a bearer token and folded (hashed) into the cache key so two
// accounts never share cache entries.

// TokenInfo returns the permissions of an API key.
func (c *Client) TokenInfo(ctx context.Context, apiKey string) (json.RawMessage, error) {
	key, err := c.auth(apiKey)
	if err != nil {
		return nil, err
	}
	return c.fetchCollection(ctx, "tokeninfo", nil, key)
}

// Account returns the account the API key belongs to.
func (c *Client) Account(ctx context.Context, apiKey string) (json.RawMessage, error) {
	key, err := c.auth(apiKey)
	if err != nil {
		return nil, err
	}
	return c.fetchCollection(ctx, "account", nil, key)
}

// AccountAchievements returns the account's achievement progress.
func (c *Client) AccountAchievements(ctx context.Context, apiKey string) (json.RawMessage, error) {
	return c.accountResource(ctx, apiKey, "account/achievements")
}

// AccountBank returns the account's bank tabs.
func (c *Client) AccountBank(ctx context.Context, apiKey string) (json.RawMessage, error) {
	return c.accountResource(ctx, apiKey, "account/bank")
}

// AccountMaterials returns the account's material storage.
func (c *Client) AccountMaterials(ctx context.Context, apiKey string) (json.RawMessage, error) {
	return c.accountResource(ctx, apiKey, "account/materials")
}

// AccountInventory returns the account's shared inventory slots.
func (c *Client) AccountInventory(ctx context.Context, apiKey string) (json.RawMessage, error) {
	return c.accountResource(ctx, apiKey, "account/inventory")
}

// AccountWallet returns the account's wallet.
func (c *Client) AccountWallet(ctx context.Context, apiKey string) (json.RawMessage, error) {
	return c.accountResource(ctx, apiKey, "account/wallet")
}

// AccountDyes returns the account's unlocked dyes.
func (c *Client) AccountDyes(ctx context.Context, apiKey string) (json.RawMessage, error) {
	return c.accountResource(ctx, apiKey, "account/dyes")
}

// AccountMinis returns the account's unlocked miniatures.
func (c *Client) AccountMinis(ctx context.Context, apiKey string) (json.RawMessage, error) {
	return c.accountResource(ctx, apiKey, "account/minis")
}

// AccountSkins returns the account's unlocked skins.
func (c *Client) AccountSkins(ctx context.Context, apiKey string) (json.RawMessage, error) {
	return c.accountResource(ctx, apiKey, "account/skins")
}

// AccountTitles returns the account's unlocked titles.
func (c *Client) AccountTitles(ctx context.Context, apiKey string) (json.RawMessage, error) {
	return c.accountResource(ctx, apiKey, "account/titles")
}

// AccountRecipes returns the account's unlocked recipes.
func (c *Client) AccountRecipes(ctx context.Context, apiKey string) (json.RawMessage, error) {
	return c.accountResource(ctx, apiKey, "account/recipes")
}

// Characters returns the names of the account's characters.
func (c *Client) Characters(ctx context.Context, apiKey string) (json.RawMessage, error) {
	return c.accountResource(ctx, apiKey, "characters")
}

// Character returns one character by name. Characters are addressed by
// path, not by an ids parameter, so this is a collection-style fetch
// with its own cache entry per name.
func (c *Client) Character(ctx context.Context, apiKey, name string) (json.RawMessage, error) {
	if name == "" {
		return nil, &InvalidArgumentError{Reason: "character name required"}
	}
	return c.accountResource(ctx, apiKey, "characters/"+url.PathEscape(name))
}

// PvPStats returns the account's PvP statistics.
func (c *Client) PvPStats(ctx context.Context, apiKey string) (json.RawMessage, error) {
	return c.accountResource(ctx, apiKey, "pvp/stats")
}

// PvPGames returns the account's recent PvP games.
func (c *Client) PvPGames(ctx context.Context, apiKey string) (json.RawMessage, error) {
	return c.accountResource(ctx, apiKey, "pvp/games")
}

// PvPStandings returns the account's PvP league standings.
func (c *Client) PvPStandings(ctx context.Context, apiKey string) (json.RawMessage, error) {
	return c.accountResource(ctx, apiKey, "pvp/standings")
}

func (c *Client) accountResource(ctx context.Context, apiKey, path string) (json.RawMessage, error) {
	key, err := c.auth(apiKey)
	if err != nil {
		return nil, err
	}
	return c.fetchCollection(ctx, path, nil, key)
}
