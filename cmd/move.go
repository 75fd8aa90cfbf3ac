package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"waymark/models"
)

var moveTo int

// moveCmd moves a mission to a new position in the custom order.
var moveCmd = &cobra.Command{
	Use:   "move <mission-id>",
	Short: "Move a mission within the custom order",
	Long: `Move a mission to a new position in the custom order.

Positions are 1-based, so --to 1 moves the mission to the front.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		trk, closer, err := GetTracker()
		if err != nil {
			return err
		}
		defer closer()

		missions := trk.Missions()
		m, err := resolveMission(missions, args[0])
		if err != nil {
			return err
		}
		if moveTo < 1 || moveTo > len(missions) {
			return fmt.Errorf("--to must be between 1 and %d", len(missions))
		}

		// Remove, then reinsert at the target position.
		reordered := make([]models.Mission, 0, len(missions))
		for _, cur := range missions {
			if cur.ID != m.ID {
				reordered = append(reordered, cur)
			}
		}
		idx := moveTo - 1
		reordered = append(reordered[:idx], append([]models.Mission{m}, reordered[idx:]...)...)

		if err := trk.Reorder(reordered); err != nil {
			return fmt.Errorf("failed to save new order: %w", err)
		}
		fmt.Printf("Moved %q to position %d\n", m.Name, moveTo)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.Flags().IntVar(&moveTo, "to", 1, "target position, 1-based")
	_ = moveCmd.MarkFlagRequired("to")
}
