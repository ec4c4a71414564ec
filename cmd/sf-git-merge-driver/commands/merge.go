package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/sf-git-merge-driver/driver"
	"github.com/signadot/sf-git-merge-driver/encode"
)

type mergeConfig struct {
	*cli.Command
	ctx         context.Context
	MarkerSize  int    `cli:"name=conflict-marker-size aliases=L desc='conflict marker length'"`
	LocalTag    string `cli:"name=local-tag desc='label of the local side of conflicts'"`
	AncestorTag string `cli:"name=ancestor-tag desc='label of the ancestor side of conflicts'"`
	OtherTag    string `cli:"name=other-tag desc='label of the other side of conflicts'"`
	Color       bool   `cli:"name=color desc='color output even when not a terminal'"`
	Verbose     bool   `cli:"name=verbose aliases=v desc='log merge progress to stderr'"`
}

// MergeCommand returns the merge subcommand, which prints the merge of
// three files without touching them.
func MergeCommand(ctx context.Context) *cli.Command {
	cfg := &mergeConfig{ctx: ctx}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "merge").
		WithSynopsis("merge <ancestor> <local> <other> - print the merge of three files").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *mergeConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: usage: merge <ancestor> <local> <other>", cli.ErrUsage)
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	docs := make([][]byte, 3)
	for i, name := range args {
		d, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		docs[i] = d
	}
	mcfg, reg, err := (&markerOpts{
		size:     cfg.MarkerSize,
		local:    cfg.LocalTag,
		ancestor: cfg.AncestorTag,
		other:    cfg.OtherTag,
	}).settings(".")
	if err != nil {
		return err
	}
	var encOpts []encode.EncodeOption
	if cfg.Color || isTerminal(cc.Out) {
		encOpts = append(encOpts, encode.EncodeColors(encode.NewColors()))
	}
	out, conflict, err := driver.MergeDocuments(cfg.ctx, docs[0], docs[1], docs[2], mcfg, reg, encOpts...)
	if err != nil {
		return err
	}
	if _, err := cc.Out.Write(out); err != nil {
		return err
	}
	if conflict {
		return cli.ExitCodeErr(1)
	}
	return nil
}
