// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tools

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// transcriptPreviewLimit caps the transcript echo sent back before the
// capture result.
const transcriptPreviewLimit = 100

// NewTranscribeTool creates the munin_transcribe tool definition
func NewTranscribeTool() mcp.Tool {
	return mcp.NewTool("munin_transcribe",
		mcp.WithDescription("Transcribe a voice capture and run the transcript through the normal capture pipeline. Echoes a short preview of what was heard."),
		mcp.WithString("audio_base64",
			mcp.Required(),
			mcp.Description("The raw audio bytes, base64 encoded"),
		),
	)
}

// TranscribeHandler handles the munin_transcribe tool
func TranscribeHandler(ctx *ToolContext) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(c context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		encoded, err := request.RequireString("audio_base64")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		audio, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid audio payload: %v", err)), nil
		}

		transcript, reply, err := ctx.Engine.CaptureVoice(c, audio)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		preview := transcript
		if runes := []rune(preview); len(runes) > transcriptPreviewLimit {
			preview = string(runes[:transcriptPreviewLimit]) + "..."
		}
		return mcp.NewToolResultText(fmt.Sprintf("Heard: %s\n\n%s", preview, renderReply(reply))), nil
	}
}
