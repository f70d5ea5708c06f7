// Package cli implements the music-vibe commands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/justestif/go-music-vibe-assistant/internal/config"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

// NewRootCmd builds the top-level command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "music-vibe",
		Short: "Find music that matches your mood",
		Long: "Describe how you're feeling and get a music vibe plus ready-made " +
			"searches for YouTube, Spotify and Apple Music.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (yaml, json or toml); env vars MUSIC_VIBE_* override it")

	loadConfig := func() (*config.Config, error) {
		return config.Load(configPath)
	}

	root.AddCommand(
		newServeCmd(loadConfig),
		newAnalyzeCmd(loadConfig),
		newMoodsCmd(),
	)

	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func validateFormat(format string) error {
	if format != formatText && format != formatJSON {
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatJSON)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
