// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// NewBriefingTool creates the munin_briefing tool definition
func NewBriefingTool() mcp.Tool {
	return mcp.NewTool("munin_briefing",
		mcp.WithDescription("Generate a briefing from all active notes: a daily morning briefing by default, or a weekly review."),
		mcp.WithBoolean("weekly",
			mcp.Description("Generate the weekly review instead of the daily briefing"),
		),
	)
}

// BriefingHandler handles the munin_briefing tool
func BriefingHandler(ctx *ToolContext) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(c context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		weekly := request.GetBool("weekly", false)

		text, err := ctx.Engine.Briefing(c, weekly)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}
