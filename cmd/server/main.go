// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/tejzpr/munin-mcp/internal/ai"
	"github.com/tejzpr/munin-mcp/internal/config"
	"github.com/tejzpr/munin-mcp/internal/engine"
	"github.com/tejzpr/munin-mcp/internal/server"
	"github.com/tejzpr/munin-mcp/internal/vault"
	"github.com/tejzpr/munin-mcp/pkg/scheduler"
)

// Version is set at build time via ldflags (e.g. goreleaser -X main.Version={{.Version}}).
var Version string

func main() {
	// CRITICAL: MCP servers must ONLY output JSON-RPC to stdout
	// Redirect all logging to stderr
	log.SetOutput(os.Stderr)

	// .env is optional; real environment variables win
	_ = godotenv.Load()

	// Define command-line flags
	httpMode := flag.Bool("http", false, "Run in HTTP server mode (default: stdio for MCP)")
	configPath := flag.String("config", "", "Path to config file")
	vaultPath := flag.String("vault", "", "Vault root directory")
	threshold := flag.Float64("threshold", -1, "Confidence threshold for auto-filing (0..1)")
	port := flag.Int("port", 0, "Server port (HTTP mode only)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Munin MCP Server\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Server Mode:\n")
		fmt.Fprintf(os.Stderr, "  %s                 Start MCP server (stdio)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --http          Start streamable HTTP server\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  ANTHROPIC_API_KEY       Anthropic API key (required)\n")
		fmt.Fprintf(os.Stderr, "  OPENAI_API_KEY          OpenAI API key (required for voice capture)\n")
		fmt.Fprintf(os.Stderr, "  VAULT_PATH              Vault root directory\n")
		fmt.Fprintf(os.Stderr, "  CONFIDENCE_THRESHOLD    Confidence threshold for auto-filing\n")
		fmt.Fprintf(os.Stderr, "  PORT                    Server port (HTTP mode only)\n")
	}

	flag.Parse()

	log.Println("Starting Munin MCP Server...")

	// Load configuration
	var cfg *config.Config
	var err error

	if *configPath != "" {
		cfg, err = config.LoadFromPath(*configPath)
		if err != nil {
			log.Printf("Warning: Failed to load config from %s: %v", *configPath, err)
			log.Println("Using defaults")
			cfg = config.DefaultConfig()
		} else {
			log.Printf("Loaded configuration from %s", *configPath)
		}
	} else {
		cfg, err = config.Load()
		if err != nil {
			log.Printf("Warning: Failed to load default config: %v", err)
			log.Println("Using built-in defaults")
			cfg = config.DefaultConfig()
		} else {
			log.Printf("Loaded configuration from ~/.munin/configs/config.json")
		}
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Apply CLI flag overrides (highest priority)
	applyCLIOverrides(cfg, *vaultPath, *threshold, *port)

	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	if anthropicKey == "" {
		log.Fatal("ANTHROPIC_API_KEY is required")
	}
	openaiKey := os.Getenv("OPENAI_API_KEY")
	if openaiKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set, voice capture disabled")
	}

	if cfg.Vault.Path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to resolve home directory: %v", err)
		}
		cfg.Vault.Path = filepath.Join(homeDir, ".munin", "vault")
	}

	log.Printf("Configuration: vault=%s threshold=%.2f", cfg.Vault.Path, cfg.Capture.ConfidenceThreshold)

	// Create the vault store (creates category folders and the journal)
	store, err := vault.NewStore(cfg.Vault.Path, cfg.Vault.Categories)
	if err != nil {
		log.Fatalf("Failed to initialize vault: %v", err)
	}

	log.Printf("Vault ready at %s", cfg.Vault.Path)

	// Wire the AI capability and the engine
	capability := ai.NewClient(anthropicKey, cfg.AI.AnthropicModel, openaiKey, cfg.AI.WhisperModel)
	pendingTTL := time.Duration(cfg.Capture.PendingTTLMinutes) * time.Minute
	eng := engine.New(store, capability, cfg.Capture.ConfidenceThreshold, pendingTTL)

	// Create MCP server
	mcpServer, err := server.NewMCPServer(cfg, eng)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	if err := mcpServer.RegisterTools(); err != nil {
		log.Fatalf("Failed to register tools: %v", err)
	}

	// Start background briefing scheduler
	if cfg.Briefing.Enabled {
		sched := scheduler.NewScheduler(eng, cfg.Briefing)
		sched.Start()
		defer sched.Stop()
		log.Printf("Briefing scheduler started (daily %02d:00, weekly %s %02d:00)",
			cfg.Briefing.MorningHour, time.Weekday(cfg.Briefing.WeeklyWeekday), cfg.Briefing.WeeklyHour)
	}

	mcpGoServer := mcpServer.GetMCPServer()

	if *httpMode {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Printf("HTTP server starting on %s", addr)
		httpServer := mcpserver.NewStreamableHTTPServer(mcpGoServer)
		if err := httpServer.Start(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	} else {
		log.Println("MCP server ready (stdio mode) - 7 tools registered")
		if err := mcpserver.ServeStdio(mcpGoServer); err != nil {
			log.Fatalf("MCP server error: %v", err)
		}
	}
}

// applyEnvOverrides applies environment variable overrides to configuration
func applyEnvOverrides(cfg *config.Config) {
	if path := getEnv("VAULT_PATH", "MUNIN_VAULT_PATH"); path != "" {
		cfg.Vault.Path = path
		log.Printf("Vault path from ENV")
	}

	if thresholdStr := getEnv("CONFIDENCE_THRESHOLD", "MUNIN_CONFIDENCE_THRESHOLD"); thresholdStr != "" {
		if threshold, err := strconv.ParseFloat(thresholdStr, 64); err == nil {
			cfg.Capture.ConfidenceThreshold = threshold
			log.Printf("Confidence threshold from ENV: %.2f", threshold)
		}
	}

	if portStr := getEnv("PORT", "MUNIN_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Server.Port = port
			log.Printf("Port from ENV: %d", port)
		}
	}
}

// applyCLIOverrides applies command-line flag overrides to configuration
func applyCLIOverrides(cfg *config.Config, vaultPath string, threshold float64, port int) {
	if vaultPath != "" {
		cfg.Vault.Path = vaultPath
		log.Printf("Vault path from CLI")
	}

	if threshold >= 0 {
		cfg.Capture.ConfidenceThreshold = threshold
		log.Printf("Confidence threshold from CLI: %.2f", threshold)
	}

	if port > 0 {
		cfg.Server.Port = port
		log.Printf("Port from CLI: %d", port)
	}
}

// getEnv tries multiple environment variable names and returns the first non-empty value
func getEnv(names ...string) string {
	for _, name := range names {
		if val := os.Getenv(name); val != "" {
			return val
		}
	}
	return ""
}
