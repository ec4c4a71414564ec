package commands

import (
	"context"

	"github.com/scott-cotton/cli"
)

const usageText = `sf-git-merge-driver - git merge driver for Salesforce metadata

Usage:
  sf-git-merge-driver install [--dir <repo>]      Register the driver in a repository
  sf-git-merge-driver uninstall [--dir <repo>]    Remove the driver from a repository
  sf-git-merge-driver run --ancestor-file %O --our-file %A --theirs-file %B --output-file %A
                                                  Merge one file (invoked by git)
  sf-git-merge-driver merge <base> <ours> <theirs>
                                                  Print the merge of three files
  sf-git-merge-driver dump [-j] <file>...         Print the tree read from XML files

Settings are read from .sf-merge.yaml in the current directory or a
parent. Set SFMERGE_DEBUG_MERGE, SFMERGE_DEBUG_KEYS or SFMERGE_DEBUG_ALIGN
to trace a merge on stderr.`

// Root returns the root command. ctx bounds the work of subcommands.
func Root(ctx context.Context) *cli.Command {
	return cli.NewCommand("sf-git-merge-driver").
		WithSynopsis("sf-git-merge-driver - git merge driver for Salesforce metadata").
		WithDescription(usageText).
		WithSubs(
			RunCommand(ctx),
			InstallCommand(ctx),
			UninstallCommand(ctx),
			MergeCommand(ctx),
			DumpCommand(),
		)
}
