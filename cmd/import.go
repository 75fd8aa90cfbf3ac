package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"waymark/transfer"
)

var importForce bool

// importCmd replaces the entire collection with the contents of a JSON file.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import missions from a JSON file",
	Long: `Import missions from a JSON file.

Importing replaces the whole collection, including an empty file replacing
it with nothing. The current missions are discarded.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		incoming, err := transfer.ReadImport(afero.NewOsFs(), args[0])
		if err != nil {
			return fmt.Errorf("failed to read import file: %w", err)
		}

		trk, closer, err := GetTracker()
		if err != nil {
			return err
		}
		defer closer()

		current := len(trk.Missions())
		fmt.Printf("Importing %d missions, replacing the current %d.\n", len(incoming), current)

		if !importForce {
			prompt := promptui.Prompt{
				Label:     "Replace all missions",
				IsConfirm: true,
			}
			if _, err := prompt.Run(); err != nil {
				fmt.Println("Import cancelled.")
				return nil
			}
		}

		if err := trk.Import(incoming); err != nil {
			return fmt.Errorf("failed to import missions: %w", err)
		}
		fmt.Printf("Imported %d missions\n", len(incoming))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVar(&importForce, "force", false, "skip the confirmation prompt")
}
