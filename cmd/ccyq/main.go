package main

import (
	"os"

	"github.com/jacoelho/ccyq/internal/config"
	"github.com/jacoelho/ccyq/internal/document"
	"github.com/jacoelho/ccyq/internal/exit"
	"github.com/jacoelho/ccyq/internal/jsonpath"
	"github.com/jacoelho/ccyq/internal/query"
	"github.com/jacoelho/ccyq/internal/render"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, exitResult := config.Parse(os.Args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	doc, err := load(cfg)
	if err != nil {
		return fail(err)
	}

	result, err := evaluate(doc, cfg)
	if err != nil {
		return fail(err)
	}

	if err := render.Render(os.Stdout, result, cfg.Color); err != nil {
		return fail(err)
	}
	return 0
}

func load(cfg *config.Config) (any, error) {
	if cfg.Filename == "" {
		return document.Load(os.Stdin)
	}
	return document.LoadFile(cfg.Filename)
}

func evaluate(doc any, cfg *config.Config) (any, error) {
	if cfg.JSONPath {
		return jsonpath.Evaluate(doc, cfg.Query)
	}
	return query.Evaluate(doc, cfg.Query)
}

func fail(err error) int {
	result := exit.Errorln(err)
	result.Print()
	return result.ExitCode
}
