package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/quantatron/wavetrain/checkpoints"
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Print the metadata and parameter summary of a checkpoint",
		ArgsUsage: "<checkpoint.json>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one checkpoint path")
			}
			cp, err := checkpoints.Load(cmd.Args().First())
			if err != nil {
				return err
			}
			printCheckpoint(cp)
			return nil
		},
	}
}

func printCheckpoint(cp *checkpoints.Checkpoint) {
	fmt.Printf("model:          %s\n", cp.Model)
	fmt.Printf("run:            %s\n", cp.Metadata.RunID)
	fmt.Printf("created:        %s\n", cp.Metadata.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("format version: %s\n", cp.Metadata.Version)
	fmt.Printf("epoch:          %d\n", cp.Epoch)
	fmt.Printf("learning rate:  %g\n", cp.LearningRate)

	names := make([]string, 0, len(cp.Parameters))
	total := 0
	for name, vec := range cp.Parameters {
		names = append(names, name)
		total += len(vec)
	}
	sort.Strings(names)

	fmt.Printf("parameters:     %d vectors, %d values\n", len(names), total)
	for _, name := range names {
		fmt.Printf("  %-20s %d\n", name, len(cp.Parameters[name]))
	}
}
