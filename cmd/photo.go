package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// photoCmd groups photo management subcommands.
var photoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Manage mission photos",
}

// photoRmCmd removes a single photo from a mission.
var photoRmCmd = &cobra.Command{
	Use:     "rm <mission-id> <photo-uri>",
	Short:   "Remove a photo from a mission",
	Aliases: []string{"remove"},
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		trk, closer, err := GetTracker()
		if err != nil {
			return err
		}
		defer closer()

		m, err := resolveMission(trk.Missions(), args[0])
		if err != nil {
			return err
		}

		uri := args[1]
		found := false
		for _, p := range m.Photos {
			if p.URI == uri {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("mission %q has no photo %q", m.Name, uri)
		}

		if err := trk.DeletePhoto(m.ID, uri); err != nil {
			return fmt.Errorf("failed to remove photo: %w", err)
		}

		remaining := len(m.Photos) - 1
		if remaining == 0 {
			fmt.Printf("Removed last photo from %q; mission reopened\n", m.Name)
		} else {
			fmt.Printf("Removed photo from %q (%d remaining)\n", m.Name, remaining)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(photoCmd)
	photoCmd.AddCommand(photoRmCmd)
}
