package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/urfave/cli/v3"

	"github.com/sonnes/leafwalk/canon"
	"github.com/sonnes/leafwalk/core"
	"github.com/sonnes/leafwalk/mask"
	"github.com/sonnes/leafwalk/prune"
	"github.com/sonnes/leafwalk/reader"
	"github.com/sonnes/leafwalk/render"
	"github.com/sonnes/leafwalk/render/flat"
	htmlrender "github.com/sonnes/leafwalk/render/html"
	jsonrender "github.com/sonnes/leafwalk/render/json"
	"github.com/sonnes/leafwalk/render/markdown"
	"github.com/sonnes/leafwalk/render/terminal"
	"github.com/sonnes/leafwalk/render/text"
)

// app holds the renderer registry used by CLI commands. Constructors take
// the command so renderers can pick up their flags.
type app struct {
	renderers map[string]func(cmd *cli.Command) render.Renderer
}

func newApp() *app {
	return &app{
		renderers: map[string]func(cmd *cli.Command) render.Renderer{
			"text": func(cmd *cli.Command) render.Renderer {
				return &text.Renderer{Indent: indentUnit(cmd)}
			},
			"terminal": func(cmd *cli.Command) render.Renderer {
				return &terminal.Renderer{Width: cmd.Int("width"), Indent: indentUnit(cmd)}
			},
			"flat": func(cmd *cli.Command) render.Renderer {
				return flat.New(flat.StylePaths)
			},
			"env": func(cmd *cli.Command) render.Renderer {
				return flat.New(flat.StyleEnv)
			},
			"markdown": func(cmd *cli.Command) render.Renderer {
				return markdown.New()
			},
			"html": func(cmd *cli.Command) render.Renderer {
				return htmlrender.New()
			},
			"json": func(cmd *cli.Command) render.Renderer {
				return &jsonrender.Renderer{Indent: indentUnit(cmd)}
			},
		},
	}
}

func (a *app) renderer(name string, cmd *cli.Command) (render.Renderer, error) {
	fn, ok := a.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return fn(cmd), nil
}

// indentUnit converts the --indent flag to an indentation unit. Zero falls
// back to the renderer default, except for json where it means compact.
func indentUnit(cmd *cli.Command) string {
	n := cmd.Int("indent")
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}

// defaultFormat picks terminal output for TTYs and plain text for pipes.
func defaultFormat() string {
	if term.IsTerminal(os.Stdout.Fd()) {
		return "terminal"
	}
	return "text"
}

// readTree reads the positional file argument, or stdin when the argument
// is absent or "-".
func readTree(cmd *cli.Command) (*core.Tree, error) {
	name := cmd.Args().First()
	if name == "" || name == "-" {
		return reader.Read(os.Stdin, "stdin")
	}
	return reader.ReadFile(name)
}

// newTransformers builds the transform chain from CLI flags, applied in a
// fixed order: sort, prune, mask.
func newTransformers(cmd *cli.Command) ([]core.Transformer, error) {
	var transformers []core.Transformer

	if cmd.Bool("sort-keys") {
		transformers = append(transformers, canon.New(canon.Config{SortKeys: true}))
	}

	if cmd.Int("max-depth") > 0 || cmd.Int("clip-strings") > 0 {
		transformers = append(transformers, prune.New(prune.Config{
			MaxDepth:     cmd.Int("max-depth"),
			MaxStringLen: cmd.Int("clip-strings"),
		}))
	}

	masker, err := newMasker(cmd)
	if err != nil {
		return nil, err
	}
	if masker != nil {
		transformers = append(transformers, masker)
	}

	return transformers, nil
}

// newMasker builds a Masker from CLI flags. Returns nil when masking was
// not requested.
func newMasker(cmd *cli.Command) (*mask.Masker, error) {
	rules := cmd.StringSlice("mask-rules")
	if !cmd.Bool("mask") && len(rules) == 0 {
		return nil, nil
	}

	cfg := mask.Config{}
	if len(rules) == 0 {
		cfg.Keys = true
		cfg.Values = true
	} else {
		for _, r := range rules {
			switch r {
			case "keys":
				cfg.Keys = true
			case "values":
				cfg.Values = true
			default:
				return nil, fmt.Errorf("unknown mask rule %q", r)
			}
		}
	}

	return mask.New(cfg), nil
}
