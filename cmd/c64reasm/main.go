// Package main implements a reassembler for C64 programs
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/retroenv/c64reasm/internal/cli"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	if err := cli.Execute(ctx, info); err != nil {
		stop()
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
