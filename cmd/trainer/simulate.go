package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/abbr-trainer/backend/internal/domain/catalog"
	"github.com/abbr-trainer/backend/internal/domain/quiz"
	"github.com/abbr-trainer/backend/internal/simulation"
)

func newSimulateCmd() *cobra.Command {
	var (
		mode      string
		direction string
		cfg       simulation.Config
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Estimate how many rounds it takes to master the menu",
		Long: "Runs simulated learners through a quiz mode over the built-in menu. " +
			"Nothing is read from or written to the progress database.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := quiz.ParseDirection(direction)
			if err != nil {
				return err
			}
			cfg.Mode = simulation.Mode(mode)
			cfg.Direction = d

			s, err := simulation.Run(catalog.Menu, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, o := range s.Outcomes {
				fmt.Fprintf(out, "learner %d: %d rounds, %d/%d mastered\n", o.Learner, o.Rounds, o.Mastered, o.Total)
			}
			fmt.Fprintf(out, "finished %d/%d, mean %.1f rounds\n", s.Finished, cfg.Learners, s.MeanRounds)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&mode, "mode", string(simulation.ModeFlashcard), "quiz mode: flashcard or typing")
	f.StringVar(&direction, "direction", string(quiz.DefaultDirection), "FULL_TO_ABBR or ABBR_TO_FULL")
	f.IntVar(&cfg.Learners, "learners", 10, "number of simulated learners")
	f.IntVar(&cfg.Workers, "workers", runtime.NumCPU(), "learners simulated in parallel")
	f.Float64Var(&cfg.Accuracy, "accuracy", 0.8, "chance of answering correctly")
	f.IntVar(&cfg.MaxRounds, "max-rounds", 5000, "give up after this many answers")
	f.Uint64Var(&cfg.Seed, "seed", 0, "random seed, 0 seeds from the clock")
	return cmd
}
