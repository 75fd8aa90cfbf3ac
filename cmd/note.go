package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// noteCmd groups note subcommands.
var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage mission notes",
}

var noteSetCmd = &cobra.Command{
	Use:   "set <mission-id> <text>",
	Short: "Set the note on a mission",
	Args:  cobra.ExactArgs(2),
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

		if err := trk.SaveNote(m.ID, args[1]); err != nil {
			return fmt.Errorf("failed to save note: %w", err)
		}
		fmt.Printf("Note saved on %q\n", m.Name)
		return nil
	},
}

var noteClearCmd = &cobra.Command{
	Use:   "clear <mission-id>",
	Short: "Clear the note on a mission",
	Args:  cobra.ExactArgs(1),
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

		if err := trk.SaveNote(m.ID, ""); err != nil {
			return fmt.Errorf("failed to clear note: %w", err)
		}
		fmt.Printf("Note cleared on %q\n", m.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(noteSetCmd)
	noteCmd.AddCommand(noteClearCmd)
}
