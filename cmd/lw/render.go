package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/sonnes/leafwalk/core"
)

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Render a JSON document as an indented outline",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Output format: text, terminal, flat, env, markdown, html, json",
				Sources: cli.EnvVars("LW_OUTPUT"),
			},
			&cli.BoolFlag{
				Name:  "sort-keys",
				Usage: "Sort document keys before rendering",
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Usage: "Replace containers nested deeper than this many levels with a summary",
			},
			&cli.IntFlag{
				Name:  "clip-strings",
				Usage: "Clip string values longer than this many characters",
			},
			&cli.BoolFlag{
				Name:  "mask",
				Usage: "Mask secret-looking keys and values",
			},
			&cli.StringSliceFlag{
				Name:  "mask-rules",
				Usage: "Mask rule selection. Example: --mask-rules=keys,values",
			},
			&cli.IntFlag{
				Name:  "indent",
				Value: 2,
				Usage: "Spaces per indent level. With -o json, 0 renders compact",
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "Terminal width override for -o terminal",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a := newApp()

			tree, err := readTree(cmd)
			if err != nil {
				return err
			}
			if !core.IsContainer(tree.Root) {
				log.Debug("document root is a scalar", "source", tree.Name, "kind", core.KindOf(tree.Root))
			}

			transformers, err := newTransformers(cmd)
			if err != nil {
				return err
			}
			if err := core.Chain(tree, transformers...); err != nil {
				return fmt.Errorf("transform: %w", err)
			}

			name := cmd.String("out")
			if name == "" {
				name = defaultFormat()
			}
			rnd, err := a.renderer(name, cmd)
			if err != nil {
				return err
			}

			if err := rnd.Render(os.Stdout, tree); err != nil {
				return fmt.Errorf("render: %w", err)
			}
			return nil
		},
	}
}
