package aio

import (
	"context"
	"fmt"
)

// Feed operations - all methods operate directly on Client

// GetFeed returns the feed addressed by key.
func (c *Client) GetFeed(ctx context.Context, feedKey string) (*Feed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateKey(feedKey, "feed key"); err != nil {
		return nil, err
	}
	var f Feed
	if err := c.get(ctx, fmt.Sprintf("feeds/%s", feedKey), &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// ListFeeds returns the account's feeds, including each feed's latest value,
// in server-defined order.
func (c *Client) ListFeeds(ctx context.Context) ([]Feed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var feeds []Feed
	if err := c.get(ctx, "feeds", &feeds); err != nil {
		return nil, err
	}
	return feeds, nil
}

// CreateFeed creates a new feed. When req.Key is empty the service derives
// one from the name.
func (c *Client) CreateFeed(ctx context.Context, req CreateFeedRequest) (*Feed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, &ConfigError{Reason: "feed name is required"}
	}
	if req.Key != "" {
		if err := ValidateKey(req.Key, "feed key"); err != nil {
			return nil, err
		}
	}
	var f Feed
	if err := c.post(ctx, "feeds", &req, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// DeleteFeed removes the feed and all of its data points.
func (c *Client) DeleteFeed(ctx context.Context, feedKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateKey(feedKey, "feed key"); err != nil {
		return err
	}
	return c.del(ctx, fmt.Sprintf("feeds/%s", feedKey), nil)
}
