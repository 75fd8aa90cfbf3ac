package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	addAt      string
	addCaption string
)

// addCmd creates a new mission at a target location.
var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new mission",
	Long: `Add a new mission at a target location.

The location is given as "lat,lon" decimal degrees, e.g.:
  waymark add "Old Lighthouse" --at 52.3702,4.8952`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("mission name cannot be empty")
		}

		pos, err := parsePosition(addAt)
		if err != nil {
			return fmt.Errorf("invalid --at value: %w", err)
		}
		if pos == nil {
			return fmt.Errorf("--at is required")
		}
		if err := validateNewMission(name, addCaption, pos.Lat, pos.Lon); err != nil {
			return fmt.Errorf("invalid mission: %w", err)
		}

		trk, closer, err := GetTracker()
		if err != nil {
			return err
		}
		defer closer()

		m, err := trk.AddMission(name, addCaption, pos.Lat, pos.Lon)
		if err != nil {
			return fmt.Errorf("failed to add mission: %w", err)
		}

		fmt.Printf("Added mission %q (%s)\n", m.Name, m.ID[:8])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addAt, "at", "", "target location as \"lat,lon\" (required)")
	addCmd.Flags().StringVar(&addCaption, "caption", "", "optional mission caption")
}
