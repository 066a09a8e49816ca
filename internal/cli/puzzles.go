package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"bridge-torch-service/internal/adapters/repositories"
	"bridge-torch-service/internal/domain"
)

var (
	styleName = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func newPuzzlesCmd() *cobra.Command {
	var (
		seedPath string
		timeline bool
	)

	cmd := &cobra.Command{
		Use:   "puzzles [name]",
		Short: "List preset puzzles, or solve one by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := repositories.NewMemoryPuzzleRepositoryFromJSON(seedPath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				preset, err := repo.GetPreset(ctx, args[0])
				if err != nil {
					return err
				}
				return runSolve(cmd, preset.Puzzle, solveOptions{maxPeople: domain.MaxPeople, timeline: timeline})
			}

			presets, err := repo.ListPresets(ctx)
			if err != nil {
				return err
			}
			for _, p := range presets {
				fmt.Fprintf(out, "%s  times=%s max_group=%d\n", styleName.Render(p.Name), domain.FormatTimes(p.Puzzle.Times), p.Puzzle.MaxGroup)
				if p.Description != "" {
					fmt.Fprintf(out, "  %s\n", styleDesc.Render(p.Description))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "data/seeds/puzzles.json", "preset catalogue file")
	cmd.Flags().BoolVar(&timeline, "timeline", false, "show when each crossing starts and ends")

	return cmd
}
