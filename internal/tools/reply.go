// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// NewReplyTool creates the munin_reply tool definition
func NewReplyTool() mcp.Tool {
	return mcp.NewTool("munin_reply",
		mcp.WithDescription("Answer an earlier prompt from the assistant. Use a bare category name to resolve a clarification prompt, 'done: <hint>' to complete something, or 'fix: <category>' to refile the note named in a filing confirmation."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The reply text"),
		),
		mcp.WithString("prompt_id",
			mcp.Description("The Prompt ID of the clarification prompt being answered"),
		),
		mcp.WithString("prompt_text",
			mcp.Description("The full text of the message being replied to (required for 'fix: <category>' replies)"),
		),
	)
}

// ReplyHandler handles the munin_reply tool
func ReplyHandler(ctx *ToolContext) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(c context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		promptID := request.GetString("prompt_id", "")
		promptText := request.GetString("prompt_text", "")

		reply, err := ctx.Engine.HandleReply(c, text, promptID, promptText)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(renderReply(reply)), nil
	}
}
