package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/scott-cotton/cli"

	"github.com/signadot/sf-git-merge-driver/cmd/sf-git-merge-driver/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cli.MainContext(ctx, commands.Root(ctx))
}
