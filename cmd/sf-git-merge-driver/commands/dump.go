package commands

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/sf-git-merge-driver/ir"
	"github.com/signadot/sf-git-merge-driver/parse"
)

type dumpConfig struct {
	*cli.Command
	JSON     bool `cli:"name=j desc='write json instead of yaml'"`
	Comments bool `cli:"name=comments desc='keep comments'"`
}

// DumpCommand returns the dump subcommand, which prints the tree the
// merge works on.
func DumpCommand() *cli.Command {
	cfg := &dumpConfig{Comments: true}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "dump").
		WithSynopsis("dump [-j] <file>... - print the tree read from xml files").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *dumpConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no files given", cli.ErrUsage)
	}
	for _, name := range args {
		d, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		node, err := parse.Parse(d, parse.ParseComments(cfg.Comments))
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		var out []byte
		if cfg.JSON {
			out, err = ir.ToJSON(node)
		} else {
			out, err = ir.ToYAML(node)
		}
		if err != nil {
			return err
		}
		if len(args) > 1 {
			fmt.Fprintf(cc.Out, "# %s\n", name)
		}
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
	}
	return nil
}
