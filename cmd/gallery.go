package cmd

import (
	"github.com/spf13/cobra"

	"waymark/internal/ui"
)

// galleryCmd shows every photo across all completed missions.
var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Show photos of all completed missions",
	RunE: func(cmd *cobra.Command, args []string) error {
		trk, closer, err := GetTracker()
		if err != nil {
			return err
		}
		defer closer()

		ui.RenderGallery(trk.Missions())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(galleryCmd)
}
