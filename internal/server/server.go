// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package server

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/tejzpr/munin-mcp/internal/config"
	"github.com/tejzpr/munin-mcp/internal/engine"
	"github.com/tejzpr/munin-mcp/internal/tools"
)

// MCPServer wraps the mcp-go server with our configuration
type MCPServer struct {
	mcpServer *server.MCPServer
	config    *config.Config
	engine    *engine.Engine
}

// NewMCPServer creates a new MCP server instance
func NewMCPServer(cfg *config.Config, eng *engine.Engine) (*MCPServer, error) {
	mcpServer := server.NewMCPServer(
		"Munin",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	srv := &MCPServer{
		mcpServer: mcpServer,
		config:    cfg,
		engine:    eng,
	}

	return srv, nil
}

// RegisterTools registers all MCP tools on the server
func (s *MCPServer) RegisterTools() error {
	toolCtx := tools.NewToolContext(s.engine)

	// Tools express intent rather than implementation, making them
	// easier for LLMs to use correctly.

	// munin_capture: file a thought - "Remember this"
	s.mcpServer.AddTool(tools.NewCaptureTool(), tools.CaptureHandler(toolCtx))

	// munin_reply: answer a clarification prompt or follow up on a confirmation
	s.mcpServer.AddTool(tools.NewReplyTool(), tools.ReplyHandler(toolCtx))

	// munin_done: complete a task or note
	s.mcpServer.AddTool(tools.NewDoneTool(), tools.DoneHandler(toolCtx))

	// munin_fix: refile a note into a different category
	s.mcpServer.AddTool(tools.NewFixTool(), tools.FixHandler(toolCtx))

	// munin_transcribe: voice capture through the same pipeline
	s.mcpServer.AddTool(tools.NewTranscribeTool(), tools.TranscribeHandler(toolCtx))

	// munin_briefing: daily or weekly summary of active notes
	s.mcpServer.AddTool(tools.NewBriefingTool(), tools.BriefingHandler(toolCtx))

	// munin_status: note counts per category
	s.mcpServer.AddTool(tools.NewStatusTool(), tools.StatusHandler(toolCtx))

	return nil
}

// GetMCPServer returns the underlying MCP server
func (s *MCPServer) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}
