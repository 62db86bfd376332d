// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// NewDoneTool creates the munin_done tool definition
func NewDoneTool() mcp.Tool {
	return mcp.NewTool("munin_done",
		mcp.WithDescription("Mark a task or note as done. The hint is matched case-insensitively against unchecked checkbox tasks first, then against note titles and contents."),
		mcp.WithString("hint",
			mcp.Required(),
			mcp.Description("Part of the task text or note name to complete"),
		),
	)
}

// DoneHandler handles the munin_done tool
func DoneHandler(ctx *ToolContext) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(c context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		hint, err := request.RequireString("hint")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		reply, err := ctx.Engine.HandleMessage(c, "done: "+hint)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(reply.Text), nil
	}
}
