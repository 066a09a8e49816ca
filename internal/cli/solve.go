package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bridge-torch-service/internal/api/dto"
	"bridge-torch-service/internal/domain"
	"bridge-torch-service/internal/render"
	"bridge-torch-service/internal/services"
)

type solveOptions struct {
	people    string
	times     string
	maxGroup  string
	maxPeople int
	timeline  bool
	asJSON    bool
}

func newSolveCmd() *cobra.Command {
	opts := solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the fastest crossing schedule",
		Example: `  bridgetorch solve --times 1,2,5,10 --max-group 2
  bridgetorch solve --people 5 --times 1,2,5,8,14 --max-group 2 --timeline`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := services.ParsePuzzle(opts.people, opts.times, opts.maxGroup, opts.maxPeople)
			if err != nil {
				return err
			}
			return runSolve(cmd, p, opts)
		},
	}

	cmd.Flags().StringVar(&opts.people, "people", "", "total number of people (defaults to the number of times)")
	cmd.Flags().StringVarP(&opts.times, "times", "t", "", "comma-separated crossing times")
	cmd.Flags().StringVarP(&opts.maxGroup, "max-group", "k", "", "max people crossing at once")
	cmd.Flags().IntVar(&opts.maxPeople, "max-people", 20, "refuse puzzles with more people than this")
	cmd.Flags().BoolVar(&opts.timeline, "timeline", false, "show when each crossing starts and ends")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("times")
	_ = cmd.MarkFlagRequired("max-group")

	return cmd
}

func runSolve(cmd *cobra.Command, p domain.Puzzle, opts solveOptions) error {
	logger := loggerFromContext(cmd.Context())
	logger.Debug("solving", "people", len(p.Times), "max_group", p.MaxGroup)

	start := time.Now()
	res, err := services.SolvePuzzle(cmd.Context(), services.SolvePuzzleRequest{
		Puzzle:    p,
		MaxPeople: opts.maxPeople,
	}, nil)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	logger.Debug("solved", "found", res.Found(), "dur", time.Since(start).Round(time.Microsecond))

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.FromResult(res))
	}
	return render.WriteStyled(out, p.Times, res.Solution, opts.timeline)
}
