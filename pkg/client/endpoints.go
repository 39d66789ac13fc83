package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// This file enumerates the public, unauthenticated resources. Every
// method is a thin wrapper binding a fixed resource path to one of the
// two orchestrators; List* methods return the id listing, plural
// methods return details for a batch of ids in caller order, singular
// methods return one object.

// Build returns the current game build.
func (c *Client) Build(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "build", nil, "")
}

// ListAchievements returns the ids of all achievements.
func (c *Client) ListAchievements(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "achievements", nil, "")
}

// Achievements returns achievement details for the given ids.
func (c *Client) Achievements(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "achievements", Many(ids...), "")
}

// Achievement returns a single achievement.
func (c *Client) Achievement(ctx context.Context, id int) (json.RawMessage, error) {
	return c.fetchDetail(ctx, "achievements", One(id), "")
}

// ListAchievementGroups returns the ids (GUIDs) of all achievement groups.
func (c *Client) ListAchievementGroups(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "achievements/groups", nil, "")
}

// AchievementGroups returns achievement group details for the given ids.
func (c *Client) AchievementGroups(ctx context.Context, ids ...string) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "achievements/groups", Names(ids...), "")
}

// ListAchievementCategories returns the ids of all achievement categories.
func (c *Client) ListAchievementCategories(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "achievements/categories", nil, "")
}

// AchievementCategories returns achievement category details for the given ids.
func (c *Client) AchievementCategories(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "achievements/categories", Many(ids...), "")
}

// DailyAchievements returns today's daily achievements.
func (c *Client) DailyAchievements(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "achievements/daily", nil, "")
}

// ListItems returns the ids of all items.
func (c *Client) ListItems(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "items", nil, "")
}

// Items returns item details for the given ids, in the given order.
func (c *Client) Items(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "items", Many(ids...), "")
}

// Item returns a single item.
func (c *Client) Item(ctx context.Context, id int) (json.RawMessage, error) {
	return c.fetchDetail(ctx, "items", One(id), "")
}

// ListItemStats returns the ids of all itemstat combinations.
func (c *Client) ListItemStats(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "itemstats", nil, "")
}

// ItemStats returns itemstat details for the given ids.
func (c *Client) ItemStats(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "itemstats", Many(ids...), "")
}

// ListMaterials returns the ids of all material categories.
func (c *Client) ListMaterials(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "materials", nil, "")
}

// Materials returns material category details for the given ids.
func (c *Client) Materials(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "materials", Many(ids...), "")
}

// ListRecipes returns the ids of all recipes.
func (c *Client) ListRecipes(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "recipes", nil, "")
}

// Recipes returns recipe details for the given ids.
func (c *Client) Recipes(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "recipes", Many(ids...), "")
}

// SearchRecipesByInput returns ids of recipes using the item as ingredient.
func (c *Client) SearchRecipesByInput(ctx context.Context, itemID int) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("input", strconv.Itoa(itemID))
	return c.fetchCollection(ctx, "recipes/search", params, "")
}

// SearchRecipesByOutput returns ids of recipes producing the item.
func (c *Client) SearchRecipesByOutput(ctx context.Context, itemID int) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("output", strconv.Itoa(itemID))
	return c.fetchCollection(ctx, "recipes/search", params, "")
}

// ListSkills returns the ids of all skills.
func (c *Client) ListSkills(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "skills", nil, "")
}

// Skills returns skill details for the given ids.
func (c *Client) Skills(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "skills", Many(ids...), "")
}

// Skill returns a single skill.
func (c *Client) Skill(ctx context.Context, id int) (json.RawMessage, error) {
	return c.fetchDetail(ctx, "skills", One(id), "")
}

// ListSkins returns the ids of all skins.
func (c *Client) ListSkins(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "skins", nil, "")
}

// Skins returns skin details for the given ids.
func (c *Client) Skins(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "skins", Many(ids...), "")
}

// ListSpecializations returns the ids of all specializations.
func (c *Client) ListSpecializations(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "specializations", nil, "")
}

// Specializations returns specialization details for the given ids.
func (c *Client) Specializations(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "specializations", Many(ids...), "")
}

// ListTraits returns the ids of all traits.
func (c *Client) ListTraits(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "traits", nil, "")
}

// Traits returns trait details for the given ids.
func (c *Client) Traits(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "traits", Many(ids...), "")
}

// ListProfessions returns the ids of all professions. Profession ids
// are strings ("Guardian", "Necromancer").
func (c *Client) ListProfessions(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "professions", nil, "")
}

// Professions returns profession details for the given ids.
func (c *Client) Professions(ctx context.Context, ids ...string) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "professions", Names(ids...), "")
}

// ListLegends returns the ids of all revenant legends.
func (c *Client) ListLegends(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "legends", nil, "")
}

// Legends returns legend details for the given ids.
func (c *Client) Legends(ctx context.Context, ids ...string) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "legends", Names(ids...), "")
}

// ListCurrencies returns the ids of all wallet currencies.
func (c *Client) ListCurrencies(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "currencies", nil, "")
}

// Currencies returns currency details for the given ids.
func (c *Client) Currencies(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "currencies", Many(ids...), "")
}

// ListColors returns the ids of all dye colors.
func (c *Client) ListColors(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "colors", nil, "")
}

// Colors returns dye color details for the given ids.
func (c *Client) Colors(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "colors", Many(ids...), "")
}

// ListTitles returns the ids of all titles.
func (c *Client) ListTitles(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "titles", nil, "")
}

// Titles returns title details for the given ids.
func (c *Client) Titles(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "titles", Many(ids...), "")
}

// ListWorlds returns the ids of all worlds.
func (c *Client) ListWorlds(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "worlds", nil, "")
}

// Worlds returns world details for the given ids.
func (c *Client) Worlds(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "worlds", Many(ids...), "")
}

// ListMinis returns the ids of all miniatures.
func (c *Client) ListMinis(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "minis", nil, "")
}

// Minis returns miniature details for the given ids.
func (c *Client) Minis(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "minis", Many(ids...), "")
}

// Quaggans returns quaggan image details for the given string ids, or
// the id listing when none are supplied intentionally via ListQuaggans.
func (c *Client) Quaggans(ctx context.Context, ids ...string) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "quaggans", Names(ids...), "")
}

// ListQuaggans returns the ids of all quaggan images.
func (c *Client) ListQuaggans(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "quaggans", nil, "")
}

// ListDungeons returns the ids of all dungeons.
func (c *Client) ListDungeons(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "dungeons", nil, "")
}

// Dungeons returns dungeon details for the given string ids.
func (c *Client) Dungeons(ctx context.Context, ids ...string) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "dungeons", Names(ids...), "")
}

// ListRaids returns the ids of all raids.
func (c *Client) ListRaids(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "raids", nil, "")
}

// Raids returns raid details for the given string ids.
func (c *Client) Raids(ctx context.Context, ids ...string) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "raids", Names(ids...), "")
}

// ListOutfits returns the ids of all outfits.
func (c *Client) ListOutfits(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "outfits", nil, "")
}

// Outfits returns outfit details for the given ids.
func (c *Client) Outfits(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "outfits", Many(ids...), "")
}

// ListPets returns the ids of all ranger pets.
func (c *Client) ListPets(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "pets", nil, "")
}

// Pets returns pet details for the given ids.
func (c *Client) Pets(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "pets", Many(ids...), "")
}

// ListGliders returns the ids of all gliders.
func (c *Client) ListGliders(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "gliders", nil, "")
}

// Gliders returns glider details for the given ids.
func (c *Client) Gliders(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "gliders", Many(ids...), "")
}

// GuildUpgrades returns guild upgrade details for the given ids.
func (c *Client) GuildUpgrades(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "guild/upgrades", Many(ids...), "")
}

// ListGuildUpgrades returns the ids of all guild upgrades.
func (c *Client) ListGuildUpgrades(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "guild/upgrades", nil, "")
}

// GuildPermissions returns guild permission details for the given
// string ids. A distinct resource from guild upgrades.
func (c *Client) GuildPermissions(ctx context.Context, ids ...string) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "guild/permissions", Names(ids...), "")
}

// ListGuildPermissions returns the ids of all guild permissions.
func (c *Client) ListGuildPermissions(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "guild/permissions", nil, "")
}

// ListWvWObjectives returns the ids of all WvW objectives.
func (c *Client) ListWvWObjectives(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "wvw/objectives", nil, "")
}

// WvWObjectives returns WvW objective details for the given string ids
// (e.g. "38-11").
func (c *Client) WvWObjectives(ctx context.Context, ids ...string) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "wvw/objectives", Names(ids...), "")
}

// ListWvWMatches returns the ids of all current WvW matches.
func (c *Client) ListWvWMatches(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "wvw/matches", nil, "")
}

// WvWMatches returns WvW match details for the given string ids.
func (c *Client) WvWMatches(ctx context.Context, ids ...string) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "wvw/matches", Names(ids...), "")
}
