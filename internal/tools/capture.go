// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// NewCaptureTool creates the munin_capture tool definition
func NewCaptureTool() mcp.Tool {
	return mcp.NewTool("munin_capture",
		mcp.WithDescription("Capture a thought, task or note. Free text is classified and filed automatically; low-confidence captures come back as a clarification prompt to answer with munin_reply. Also accepts 'done: <hint>' and 'fix: <category> <hint>' commands."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The text to capture or the command to run"),
		),
	)
}

// CaptureHandler handles the munin_capture tool
func CaptureHandler(ctx *ToolContext) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(c context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		reply, err := ctx.Engine.HandleMessage(c, text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(renderReply(reply)), nil
	}
}
