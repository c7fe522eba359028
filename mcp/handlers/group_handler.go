package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/feedline/aio-go/aio"
)

// GroupHandler exposes the list_groups and create_group tools.
type GroupHandler struct {
	client *aio.Client
}

func NewGroupHandler(c *aio.Client) *GroupHandler {
	return &GroupHandler{client: c}
}

// RegisterTools registers the group tools.
func (gh *GroupHandler) RegisterTools(s *server.MCPServer) error {
	listTool := mcp.NewTool("list_groups",
		mcp.WithDescription("List the account's Adafruit IO groups."),
	)
	s.AddTool(listTool, gh.handleList)

	createTool := mcp.NewTool("create_group",
		mcp.WithDescription("Create a new Adafruit IO group."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Group name")),
		mcp.WithString("description", mcp.Description("Brief summary of the group")),
	)
	s.AddTool(createTool, gh.handleCreate)
	return nil
}

func (gh *GroupHandler) handleList(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	groups, err := gh.client.ListGroups(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list groups failed: %v", err)), nil
	}
	b, _ := json.MarshalIndent(groups, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}

func (gh *GroupHandler) handleCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, _ := req.RequireString("name")
	description, _ := req.GetArguments()["description"].(string)

	group, err := gh.client.CreateGroup(ctx, name, description)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("create group failed: %v", err)), nil
	}
	b, _ := json.MarshalIndent(group, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}
