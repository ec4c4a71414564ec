package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/sf-git-merge-driver/driver"
)

type runConfig struct {
	*cli.Command
	ctx          context.Context
	AncestorFile string `cli:"name=ancestor-file aliases=O desc='common ancestor version (git %O)'"`
	OurFile      string `cli:"name=our-file aliases=A desc='local version (git %A)'"`
	TheirsFile   string `cli:"name=theirs-file aliases=B desc='other version (git %B)'"`
	OutputFile   string `cli:"name=output-file aliases=P desc='where to write the result, defaults to --our-file'"`
	MarkerSize   int    `cli:"name=conflict-marker-size aliases=L desc='conflict marker length (git %L)'"`
	LocalTag     string `cli:"name=local-tag desc='label of the local side of conflicts'"`
	AncestorTag  string `cli:"name=ancestor-tag desc='label of the ancestor side of conflicts'"`
	OtherTag     string `cli:"name=other-tag desc='label of the other side of conflicts'"`
	Verbose      bool   `cli:"name=verbose aliases=v desc='log merge progress to stderr'"`
}

// RunCommand returns the run subcommand, the entry point git invokes.
func RunCommand(ctx context.Context) *cli.Command {
	cfg := &runConfig{ctx: ctx}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "run").
		WithSynopsis("run --ancestor-file %O --our-file %A --theirs-file %B [--output-file %A] - merge one file").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *runConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %v", cli.ErrUsage, args)
	}
	if cfg.AncestorFile == "" || cfg.OurFile == "" || cfg.TheirsFile == "" {
		return fmt.Errorf("%w: --ancestor-file, --our-file and --theirs-file are required", cli.ErrUsage)
	}
	if cfg.MarkerSize < 0 {
		return fmt.Errorf("%w: --conflict-marker-size must be positive", cli.ErrUsage)
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	// git runs merge drivers from the top of the work tree.
	mcfg, reg, err := (&markerOpts{
		size:     cfg.MarkerSize,
		local:    cfg.LocalTag,
		ancestor: cfg.AncestorTag,
		other:    cfg.OtherTag,
	}).settings(".")
	if err != nil {
		return err
	}
	res, err := driver.Run(cfg.ctx, driver.Options{
		AncestorFile: cfg.AncestorFile,
		OurFile:      cfg.OurFile,
		TheirsFile:   cfg.TheirsFile,
		OutputFile:   cfg.OutputFile,
		Config:       mcfg,
		Keys:         reg,
		Log:          theLog,
	})
	if err != nil {
		return err
	}
	if cfg.Verbose || isTerminal(os.Stderr) {
		status(os.Stderr, cfg.OurFile, res.HasConflict)
	}
	if res.HasConflict {
		return cli.ExitCodeErr(1)
	}
	return nil
}
