package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"waymark/geo"
	"waymark/internal/ui"
)

var (
	listSort string
	listAt   string
)

// listCmd shows the current mission collection.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List missions",
	Long: `List missions in their stored order.

With --sort closest or --sort farthest, missions are ordered by distance
from the position given with --at.`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := parsePosition(listAt)
		if err != nil {
			return fmt.Errorf("invalid --at value: %w", err)
		}

		trk, closer, err := GetTracker()
		if err != nil {
			return err
		}
		defer closer()

		missions := trk.Missions()

		switch listSort {
		case "custom", "":
			// stored order
		case "closest", "farthest":
			if pos == nil {
				// Without a position, proximity sorting degrades to the
				// custom order.
				fmt.Fprintf(os.Stderr, "No position given (--at); showing custom order.\n")
				break
			}
			missions = geo.SortByDistance(missions, pos.Lat, pos.Lon, listSort == "farthest")
		default:
			return fmt.Errorf("unknown sort order %q (custom, closest, farthest)", listSort)
		}

		ui.RenderMissionList(missions, pos)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listSort, "sort", "custom", "sort order: custom, closest, farthest")
	listCmd.Flags().StringVar(&listAt, "at", "", "current position as \"lat,lon\"")
}
