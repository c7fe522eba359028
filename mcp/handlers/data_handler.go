package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/feedline/aio-go/aio"
)

// DataHandler exposes the send_data and receive_data tools.
type DataHandler struct {
	client *aio.Client
}

func NewDataHandler(c *aio.Client) *DataHandler {
	return &DataHandler{client: c}
}

// RegisterTools registers the data-point tools.
func (dh *DataHandler) RegisterTools(s *server.MCPServer) error {
	sendTool := mcp.NewTool("send_data",
		mcp.WithDescription("Publish one data point to an Adafruit IO feed. Optional latitude/longitude/elevation geotag the sample; created_at backdates it (RFC-3339)."),
		mcp.WithString("feed_key", mcp.Required(), mcp.Description("Key of the target feed")),
		mcp.WithString("value", mcp.Required(), mcp.Description("Value to publish")),
		mcp.WithNumber("lat", mcp.Description("Optional latitude")),
		mcp.WithNumber("lon", mcp.Description("Optional longitude")),
		mcp.WithNumber("ele", mcp.Description("Optional elevation in meters")),
		mcp.WithString("created_at", mcp.Description("Optional RFC-3339 timestamp")),
	)
	s.AddTool(sendTool, dh.handleSend)

	receiveTool := mcp.NewTool("receive_data",
		mcp.WithDescription("Read the most recent data point on an Adafruit IO feed."),
		mcp.WithString("feed_key", mcp.Required(), mcp.Description("Key of the feed")),
	)
	s.AddTool(receiveTool, dh.handleReceive)
	return nil
}

func (dh *DataHandler) handleSend(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feedKey, _ := req.RequireString("feed_key")
	value, _ := req.RequireString("value")

	dp := aio.DataPoint{Value: value}
	args := req.GetArguments()
	if v, ok := args["lat"].(float64); ok {
		dp.Lat = aio.Float64(v)
	}
	if v, ok := args["lon"].(float64); ok {
		dp.Lon = aio.Float64(v)
	}
	if v, ok := args["ele"].(float64); ok {
		dp.Ele = aio.Float64(v)
	}
	if v, ok := args["created_at"].(string); ok && v != "" {
		dp.CreatedAt = aio.String(v)
	}

	stored, err := dh.client.SendData(ctx, feedKey, dp)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("send data failed: %v", err)), nil
	}
	b, _ := json.MarshalIndent(stored, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}

func (dh *DataHandler) handleReceive(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feedKey, _ := req.RequireString("feed_key")

	dp, err := dh.client.ReceiveData(ctx, feedKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("receive data failed: %v", err)), nil
	}
	b, _ := json.MarshalIndent(dp, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}
