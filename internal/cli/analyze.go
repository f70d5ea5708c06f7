package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/justestif/go-music-vibe-assistant/internal/analyzer"
	"github.com/justestif/go-music-vibe-assistant/internal/config"
	"github.com/justestif/go-music-vibe-assistant/internal/mood"
	"github.com/justestif/go-music-vibe-assistant/internal/search"
)

// analyzeOutput is the JSON shape of the analyze command.
type analyzeOutput struct {
	mood.Result
	Links map[mood.Platform]string `json:"links"`
}

func newAnalyzeCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	var (
		format string
		delay  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "analyze [mood...]",
		Short: "Analyze a mood description and print a music recommendation",
		Long: "Analyze the words given as arguments. The analysis waits the configured " +
			"delay (analysis_delay) unless --delay is given.",
		Example: `  music-vibe analyze "I'm feeling overwhelmed but motivated"
  music-vibe analyze --delay 0 --format json nostalgic about summer`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if !cmd.Flags().Changed("delay") {
				delay = cfg.AnalysisDelay
			}

			svc := analyzer.New(analyzer.WithDelay(delay), analyzer.WithLogger(zap.NewNop()))
			result, err := svc.Analyze(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("analyzing mood: %w", err)
			}

			out := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(out, newAnalyzeOutput(result))
			}

			fmt.Fprint(out, mood.FormatResult(result))
			fmt.Fprintln(out)
			for _, link := range search.ForProfile(result.Profile) {
				fmt.Fprintf(out, "%s: %s\n", link.Label, link.URL)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text or json")
	cmd.Flags().DurationVar(&delay, "delay", 0, "Override the analysis delay (e.g. 0, 500ms)")

	return cmd
}

func newAnalyzeOutput(r mood.Result) analyzeOutput {
	links := make(map[mood.Platform]string, len(mood.Platforms))
	for _, l := range search.ForProfile(r.Profile) {
		links[l.Platform] = l.URL
	}
	return analyzeOutput{Result: r, Links: links}
}
