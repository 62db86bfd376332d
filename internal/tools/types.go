// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package tools defines the MCP tool surface of the assistant. The
// tools are a thin transport layer: they parse arguments, call the
// engine, and render its replies. All decision logic lives below them.
package tools

import (
	"github.com/tejzpr/munin-mcp/internal/engine"
)

// ToolContext holds shared dependencies for all tools
type ToolContext struct {
	Engine *engine.Engine
}

// NewToolContext creates a new tool context
func NewToolContext(eng *engine.Engine) *ToolContext {
	return &ToolContext{Engine: eng}
}

// renderReply formats an engine reply for the MCP client, exposing the
// prompt identifier a clarification answer must reference.
func renderReply(reply *engine.Reply) string {
	if reply.PromptID == "" {
		return reply.Text
	}
	return reply.Text + "\n\nPrompt ID: " + reply.PromptID
}
