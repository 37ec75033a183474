package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:  "lw",
		Usage: "Render JSON documents as indented outlines",
		Description: `
 _              __                _  _
| | ___  __ _  / _|__ __ __ __ _ | || |__
| |/ -_)/ _' ||  _|\ V  V // _' || || / /
|_|\___|\__,_||_|   \_/\_/ \__,_||_||_\_\

 Walk a JSON tree, print every branch as an indented outline.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log",
				Usage:   "Log level: debug, info, warn, error",
				Value:   "error",
				Sources: cli.EnvVars("LW_LOG"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			renderCmd(),
			statCmd(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
