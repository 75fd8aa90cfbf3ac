package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"waymark/transfer"
)

var exportOutput string

// exportCmd writes the mission collection to a JSON file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export missions to a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		trk, closer, err := GetTracker()
		if err != nil {
			return err
		}
		defer closer()

		err = transfer.Export(afero.NewOsFs(), exportOutput, trk.Missions())
		if errors.Is(err, transfer.ErrNoMissions) {
			return fmt.Errorf("nothing to export: no missions")
		}
		if err != nil {
			return fmt.Errorf("failed to export missions: %w", err)
		}

		fmt.Printf("Exported %d missions to %s\n", len(trk.Missions()), exportOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "missions_export.json", "output file path")
}
