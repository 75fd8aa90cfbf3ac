package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"waymark/geo"
	"waymark/models"
)

var (
	snapPhoto string
	snapAsset string
	snapAt    string
	snapForce bool
)

// snapCmd attaches a photo to a mission, completing it.
var snapCmd = &cobra.Command{
	Use:   "snap <mission-id>",
	Short: "Attach a photo to a mission",
	Long: `Attach a photo to a mission, marking it completed.

The camera only unlocks within 50 meters of the target, so the current
position must be given with --at. Use --force to skip the range check.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := parsePosition(snapAt)
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

		if !snapForce {
			if pos == nil {
				return fmt.Errorf("--at is required (or use --force)")
			}
			d := geo.Distance(pos.Lat, pos.Lon, m.Latitude, m.Longitude)
			if !geo.WithinRange(d) {
				return fmt.Errorf("out of range: %.0f m from target (camera unlocks within %.0f m)", d, geo.CameraRange)
			}
		}

		if len(m.Photos) >= models.MaxPhotos {
			return fmt.Errorf("mission already has %d photos (limit %d)", len(m.Photos), models.MaxPhotos)
		}

		if err := trk.CompleteMission(m.ID, snapPhoto, snapAsset); err != nil {
			return fmt.Errorf("failed to save photo: %w", err)
		}

		fmt.Printf("Photo added to %q (%d/%d)\n", m.Name, len(m.Photos)+1, models.MaxPhotos)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(snapCmd)
	snapCmd.Flags().StringVar(&snapPhoto, "photo", "", "photo URI to attach (required)")
	snapCmd.Flags().StringVar(&snapAsset, "asset", "", "media library asset ID")
	snapCmd.Flags().StringVar(&snapAt, "at", "", "current position as \"lat,lon\"")
	snapCmd.Flags().BoolVar(&snapForce, "force", false, "skip the range check")
	_ = snapCmd.MarkFlagRequired("photo")
}
