package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/rastertool/internal/codec"
	"github.com/ironsheep/rastertool/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "rastertool",
	Short: "Convert, resize and inspect raster images",
	Long: `rastertool loads an image, optionally converts it to 8-bit grayscale and/or
resizes it preserving aspect ratio, and writes the result as PNG. It can also
read single pixels and run as an MCP tool server over stdio.

Environment variables:
  RASTERTOOL_LOG_LEVEL=debug|info|warn|error   Log level (default warn)`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level (overrides RASTERTOOL_LOG_LEVEL)")
}

// setupLogging installs a stderr text logger; stdout carries command output
// and the MCP protocol.
func setupLogging(cmd *cobra.Command, _ []string) error {
	levelName, _ := cmd.Flags().GetString("log-level")
	if levelName == "" {
		levelName = os.Getenv("RASTERTOOL_LOG_LEVEL")
	}

	level := slog.LevelWarn
	if levelName != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(levelName))); err != nil {
			return fmt.Errorf("invalid log level %q: %w", levelName, err)
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	codec.SetLogger(logger)
	server.Version = Version
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rastertool:", err)
		os.Exit(1)
	}
}
