package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"waymark/models"
)

var clearForce bool

// clearCmd deletes every mission.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all missions",
	RunE: func(cmd *cobra.Command, args []string) error {
		trk, closer, err := GetTracker()
		if err != nil {
			return err
		}
		defer closer()

		count := len(trk.Missions())
		if count == 0 {
			fmt.Println("No missions to clear.")
			return nil
		}

		if !clearForce {
			prompt := promptui.Prompt{
				Label:     fmt.Sprintf("Delete all %d missions", count),
				IsConfirm: true,
			}
			if _, err := prompt.Run(); err != nil {
				fmt.Println("Clear cancelled.")
				return nil
			}
		}

		if err := trk.Import([]models.Mission{}); err != nil {
			return fmt.Errorf("failed to clear missions: %w", err)
		}
		fmt.Printf("Deleted %d missions\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVar(&clearForce, "force", false, "skip the confirmation prompt")
}
