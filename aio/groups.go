package aio

import (
	"context"
	"fmt"
)

// Group operations - all methods operate directly on Client

// ListGroups returns the account's groups in server-defined order.
func (c *Client) ListGroups(ctx context.Context) ([]Group, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var groups []Group
	if err := c.get(ctx, "groups", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetGroup returns the group addressed by key.
func (c *Client) GetGroup(ctx context.Context, groupKey string) (*Group, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateKey(groupKey, "group key"); err != nil {
		return nil, err
	}
	var g Group
	if err := c.get(ctx, fmt.Sprintf("groups/%s", groupKey), &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// CreateGroup creates a new group with the given name and description and
// returns the created group.
func (c *Client) CreateGroup(ctx context.Context, name, description string) (*Group, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, &ConfigError{Reason: "group name is required"}
	}
	var g Group
	payload := createGroupRequest{Name: name, Description: description}
	if err := c.post(ctx, "groups", &payload, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// DeleteGroup removes the group. Member feeds are detached, not deleted.
func (c *Client) DeleteGroup(ctx context.Context, groupKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateKey(groupKey, "group key"); err != nil {
		return err
	}
	return c.del(ctx, fmt.Sprintf("groups/%s", groupKey), nil)
}
