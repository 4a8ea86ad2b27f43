package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/quantatron/wavetrain/training"
)

func configCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Training config helpers",
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "Parse a training config and report problems",
				ArgsUsage: "<config.yaml>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return fmt.Errorf("expected exactly one config path")
					}
					cfg, err := training.LoadConfig(cmd.Args().First())
					if err != nil {
						return err
					}
					fmt.Printf("ok: %d epochs, batch size %d, lr %g", cfg.Epochs, cfg.BatchSize, cfg.LearningRate)
					if sched := cfg.BuildScheduler(); sched != nil {
						fmt.Printf(", %s schedule", sched.Name())
					}
					fmt.Println()
					return nil
				},
			},
		},
	}
}
