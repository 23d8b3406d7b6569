// Package guide wraps the bin-locator service.
package guide

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/u-share/sortflow/internal/api"
	"github.com/u-share/sortflow/internal/model"
)

const (
	dustbinsTimeout = 10 * time.Second
	// Walking-route lookups proxy through a map provider upstream.
	nearestTimeout = 15 * time.Second
)

// Client calls the bin-locator service through the shared adapter.
type Client struct {
	api *api.Client
}

// NewClient creates a guide client on top of the shared adapter.
func NewClient(apiClient *api.Client) *Client {
	return &Client{api: apiClient}
}

// Dustbins lists every disposal site.
func (c *Client) Dustbins(ctx context.Context) ([]model.Dustbin, error) {
	const operation = "fetch dustbin list"

	var bins []model.Dustbin
	if err := c.api.GetJSON(ctx, "/guide/dustbins", nil, &bins, api.WithTimeout(dustbinsTimeout)); err != nil {
		return nil, api.Normalize(operation, err)
	}
	return bins, nil
}

// Nearest returns the closest dustbin to the given coordinates along with
// walking navigation details.
func (c *Client) Nearest(ctx context.Context, lng, lat float64) (model.NearestRoute, error) {
	const operation = "locate nearest dustbin"

	if lng < -180 || lng > 180 || lat < -90 || lat > 90 {
		return model.NearestRoute{}, api.ValidationError(operation, "coordinates out of range")
	}

	query := url.Values{}
	query.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))

	var route model.NearestRoute
	if err := c.api.GetJSON(ctx, "/guide/nearest", query, &route, api.WithTimeout(nearestTimeout)); err != nil {
		return model.NearestRoute{}, api.Normalize(operation, err)
	}
	return route, nil
}
