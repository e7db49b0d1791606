package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Check level files for errors",
	Long: `Decode each level and build its tile grid, reporting malformed levels
(missing or duplicate start and exit tiles, unknown tile codes, ragged rows).
With no files the shipped levels are checked.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	levels, err := loadLevels(args)
	if err != nil {
		return err
	}

	failed := 0
	out := cmd.OutOrStdout()
	for _, data := range levels {
		grid, err := data.Grid()
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL  %s: %v\n", data.Name, err)
			continue
		}
		fmt.Fprintf(out, "ok    %-16s %3dx%-3d fire pieces: %d, pickups: %d\n",
			data.Name, grid.Width(), grid.Height(), grid.FirePieces(), len(grid.Spawns()))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d levels are malformed", failed, len(levels))
	}
	return nil
}
