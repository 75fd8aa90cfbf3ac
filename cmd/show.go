package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"waymark/internal/ui"
)

var showAt string

// showCmd prints the full detail of one mission.
var showCmd = &cobra.Command{
	Use:     "show <mission-id>",
	Short:   "Show mission details",
	Aliases: []string{"view"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := parsePosition(showAt)
		if err != nil {
			return fmt.Errorf("invalid --at value: %w", err)
		}

		trk, closer, err := GetTracker()
		if err != nil {
			return err
		}
		defer closer()

		m, err := resolveMission(trk.Missions(), args[0])
		if err != nil {
			return err
		}

		ui.RenderMissionDetail(m, pos)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showAt, "at", "", "current position as \"lat,lon\"")
}
