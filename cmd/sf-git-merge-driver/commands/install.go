package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/sf-git-merge-driver/gitcfg"
)

type installConfig struct {
	*cli.Command
	ctx             context.Context
	Dir             string `cli:"name=dir aliases=C desc='repository to configure'"`
	Driver          string `cli:"name=driver desc='merge driver name'"`
	Binary          string `cli:"name=binary desc='command git runs, defaults to this executable'"`
	LocalAttributes bool   `cli:"name=local-attributes desc='write .git/info/attributes instead of .gitattributes'"`
}

// InstallCommand returns the install subcommand.
func InstallCommand(ctx context.Context) *cli.Command {
	cfg := &installConfig{ctx: ctx}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "install").
		WithSynopsis("install [--dir <repo>] [--local-attributes] - register the merge driver").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *installConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %v", cli.ErrUsage, args)
	}
	bin := cfg.Binary
	if bin == "" {
		if exe, err := os.Executable(); err == nil {
			bin = exe
		}
	}
	if err := gitcfg.Install(cfg.ctx, gitcfg.Options{
		Dir:             cfg.Dir,
		Driver:          cfg.Driver,
		Binary:          bin,
		LocalAttributes: cfg.LocalAttributes,
	}); err != nil {
		return err
	}
	theLog.Info("installed", "driver", driverName(cfg.Driver))
	return nil
}

type uninstallConfig struct {
	*cli.Command
	ctx    context.Context
	Dir    string `cli:"name=dir aliases=C desc='repository to configure'"`
	Driver string `cli:"name=driver desc='merge driver name'"`
}

// UninstallCommand returns the uninstall subcommand.
func UninstallCommand(ctx context.Context) *cli.Command {
	cfg := &uninstallConfig{ctx: ctx}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "uninstall").
		WithSynopsis("uninstall [--dir <repo>] - remove the merge driver").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *uninstallConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %v", cli.ErrUsage, args)
	}
	if err := gitcfg.Uninstall(cfg.ctx, gitcfg.Options{
		Dir:    cfg.Dir,
		Driver: cfg.Driver,
	}); err != nil {
		return err
	}
	theLog.Info("uninstalled", "driver", driverName(cfg.Driver))
	return nil
}

func driverName(d string) string {
	if d == "" {
		return gitcfg.DefaultDriver
	}
	return d
}
