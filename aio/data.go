package aio

import (
	"context"
	"fmt"
)

// Data-point operations - all methods operate directly on Client

// SendData publishes a data point to the feed and returns the stored point as
// acknowledged by the service. Any ID set on dp is ignored; the server assigns
// identity.
func (c *Client) SendData(ctx context.Context, feedKey string, dp DataPoint) (*DataPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateKey(feedKey, "feed key"); err != nil {
		return nil, err
	}
	dp.ID = ""

	var stored DataPoint
	if err := c.post(ctx, fmt.Sprintf("feeds/%s/data", feedKey), &dp, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// SendValue publishes a bare value with no location or timestamp metadata.
func (c *Client) SendValue(ctx context.Context, feedKey string, value interface{}) (*DataPoint, error) {
	return c.SendData(ctx, feedKey, DataPoint{Value: value})
}

// ReceiveData returns the most recent data point on the feed.
func (c *Client) ReceiveData(ctx context.Context, feedKey string) (*DataPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateKey(feedKey, "feed key"); err != nil {
		return nil, err
	}
	var dp DataPoint
	if err := c.get(ctx, fmt.Sprintf("feeds/%s/data/last", feedKey), &dp); err != nil {
		return nil, err
	}
	return &dp, nil
}

// ListData returns the stored data points on the feed, most recent first
// (server-defined order).
func (c *Client) ListData(ctx context.Context, feedKey string) ([]DataPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateKey(feedKey, "feed key"); err != nil {
		return nil, err
	}
	var points []DataPoint
	if err := c.get(ctx, fmt.Sprintf("feeds/%s/data", feedKey), &points); err != nil {
		return nil, err
	}
	return points, nil
}

// DeleteData removes one data point from the feed and returns the deleted
// point as acknowledged by the service. feedKey and dataID form two distinct
// path segments: feeds/{feedKey}/data/{dataID}.
func (c *Client) DeleteData(ctx context.Context, feedKey, dataID string) (*DataPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateKey(feedKey, "feed key"); err != nil {
		return nil, err
	}
	if err := ValidateKey(dataID, "data id"); err != nil {
		return nil, err
	}
	var dp DataPoint
	if err := c.del(ctx, fmt.Sprintf("feeds/%s/data/%s", feedKey, dataID), &dp); err != nil {
		return nil, err
	}
	return &dp, nil
}
