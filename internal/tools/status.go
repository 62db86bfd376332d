// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// NewStatusTool creates the munin_status tool definition
func NewStatusTool() mcp.Tool {
	return mcp.NewTool("munin_status",
		mcp.WithDescription("Show the vault status: note counts per category."),
	)
}

// StatusHandler handles the munin_status tool
func StatusHandler(ctx *ToolContext) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(c context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		status, err := ctx.Engine.Status()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(status), nil
	}
}
