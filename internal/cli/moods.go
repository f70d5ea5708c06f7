package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justestif/go-music-vibe-assistant/internal/mood"
)

func newMoodsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "moods",
		Short: "List mood profiles in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			profiles := mood.Profiles()
			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), struct {
					Profiles []mood.Profile `json:"profiles"`
					Fallback mood.Profile   `json:"fallback"`
				}{profiles, mood.Fallback()})
			}

			fmt.Fprint(cmd.OutOrStdout(), mood.FormatProfiles(profiles))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text or json")

	return cmd
}
