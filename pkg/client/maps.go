package client

import (
	"context"
	"encoding/json"
	"fmt"
)

// The map hierarchy nests continent → floor → region → map; each level
// is its own resource path built from the ids of the levels above it.

// ListMaps returns the ids of all maps.
func (c *Client) ListMaps(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "maps", nil, "")
}

// Maps returns map details for the given ids.
func (c *Client) Maps(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "maps", Many(ids...), "")
}

// ListContinents returns the ids of all continents.
func (c *Client) ListContinents(ctx context.Context) (json.RawMessage, error) {
	return c.fetchCollection(ctx, "continents", nil, "")
}

// Continents returns continent details for the given ids.
func (c *Client) Continents(ctx context.Context, ids ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, "continents", Many(ids...), "")
}

// ListContinentFloors returns the floor ids of a continent.
func (c *Client) ListContinentFloors(ctx context.Context, continentID int) (json.RawMessage, error) {
	return c.fetchCollection(ctx, fmt.Sprintf("continents/%d/floors", continentID), nil, "")
}

// ContinentFloors returns floor details of a continent for the given ids.
func (c *Client) ContinentFloors(ctx context.Context, continentID int, floorIDs ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, fmt.Sprintf("continents/%d/floors", continentID), Many(floorIDs...), "")
}

// ListFloorRegions returns the region ids of a continent floor.
func (c *Client) ListFloorRegions(ctx context.Context, continentID, floorID int) (json.RawMessage, error) {
	return c.fetchCollection(ctx, fmt.Sprintf("continents/%d/floors/%d/regions", continentID, floorID), nil, "")
}

// FloorRegions returns region details of a continent floor for the given ids.
func (c *Client) FloorRegions(ctx context.Context, continentID, floorID int, regionIDs ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, fmt.Sprintf("continents/%d/floors/%d/regions", continentID, floorID), Many(regionIDs...), "")
}

// ListRegionMaps returns the map ids of a floor region.
func (c *Client) ListRegionMaps(ctx context.Context, continentID, floorID, regionID int) (json.RawMessage, error) {
	return c.fetchCollection(ctx, fmt.Sprintf("continents/%d/floors/%d/regions/%d/maps", continentID, floorID, regionID), nil, "")
}

// RegionMaps returns map details of a floor region for the given ids.
func (c *Client) RegionMaps(ctx context.Context, continentID, floorID, regionID int, mapIDs ...int) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, fmt.Sprintf("continents/%d/floors/%d/regions/%d/maps", continentID, floorID, regionID), Many(mapIDs...), "")
}
