package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var deleteForce bool

// deleteCmd removes a mission from the collection.
var deleteCmd = &cobra.Command{
	Use:     "delete <mission-id>",
	Short:   "Delete a mission",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
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

		if !deleteForce {
			prompt := promptui.Prompt{
				Label:     fmt.Sprintf("Delete mission %q", m.Name),
				IsConfirm: true,
			}
			if _, err := prompt.Run(); err != nil {
				fmt.Println("Deletion cancelled.")
				return nil
			}
		}

		if err := trk.DeleteMission(m.ID); err != nil {
			return fmt.Errorf("failed to delete mission: %w", err)
		}
		fmt.Printf("Deleted mission %q\n", m.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVar(&deleteForce, "force", false, "skip the confirmation prompt")
}
