// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// NewFixTool creates the munin_fix tool definition
func NewFixTool() mcp.Tool {
	return mcp.NewTool("munin_fix",
		mcp.WithDescription("Move a note to a different category. The note is located by a hint matched against filenames and headings; its current category is wherever it is found. To refile from a confirmation message instead, use munin_reply with 'fix: <category>'."),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Target category name or unambiguous prefix"),
		),
		mcp.WithString("hint",
			mcp.Required(),
			mcp.Description("Part of the note name or heading to move"),
		),
	)
}

// FixHandler handles the munin_fix tool
func FixHandler(ctx *ToolContext) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(c context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category, err := request.RequireString("category")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		hint, err := request.RequireString("hint")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		reply, err := ctx.Engine.HandleMessage(c, "fix: "+category+" "+hint)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(reply.Text), nil
	}
}
