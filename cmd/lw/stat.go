package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/sonnes/leafwalk/reader"
	"github.com/sonnes/leafwalk/stat"
)

func statCmd() *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "Report structure statistics for JSON documents",
		ArgsUsage: "[files...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rnd := stat.New()

			args := cmd.Args().Slice()
			if len(args) == 0 {
				tree, err := reader.Read(os.Stdin, "stdin")
				if err != nil {
					return err
				}
				return rnd.Render(os.Stdout, tree)
			}

			for i, name := range args {
				tree, err := reader.ReadFile(name)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(os.Stdout)
				}
				if err := rnd.Render(os.Stdout, tree); err != nil {
					return fmt.Errorf("render: %w", err)
				}
			}
			return nil
		},
	}
}
