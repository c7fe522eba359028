package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/feedline/aio-go/aio"
)

// FeedHandler exposes the list_feeds and get_feed tools.
type FeedHandler struct {
	client *aio.Client
}

func NewFeedHandler(c *aio.Client) *FeedHandler {
	return &FeedHandler{client: c}
}

// RegisterTools registers the feed tools.
func (fh *FeedHandler) RegisterTools(s *server.MCPServer) error {
	listTool := mcp.NewTool("list_feeds",
		mcp.WithDescription("List the account's Adafruit IO feeds, including each feed's latest value."),
	)
	s.AddTool(listTool, fh.handleList)

	getTool := mcp.NewTool("get_feed",
		mcp.WithDescription("Fetch one Adafruit IO feed by key."),
		mcp.WithString("feed_key", mcp.Required(), mcp.Description("Key of the feed")),
	)
	s.AddTool(getTool, fh.handleGet)
	return nil
}

func (fh *FeedHandler) handleList(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feeds, err := fh.client.ListFeeds(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list feeds failed: %v", err)), nil
	}
	b, _ := json.MarshalIndent(feeds, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}

func (fh *FeedHandler) handleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feedKey, _ := req.RequireString("feed_key")

	feed, err := fh.client.GetFeed(ctx, feedKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("get feed failed: %v", err)), nil
	}
	b, _ := json.MarshalIndent(feed, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}
