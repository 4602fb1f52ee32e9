// Package main provides the entry point for the ksigner CLI.
package main

import (
	"context"
	"os"

	"github.com/selfcustody/ksigner/internal/cli"
)

// Build information set at build time via ldflags.
var (
	version = "" //nolint:gochecknoglobals // set by -ldflags
	commit  = "" //nolint:gochecknoglobals // set by -ldflags
	date    = "" //nolint:gochecknoglobals // set by -ldflags
)

func main() {
	ctx := context.Background()
	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}

	err := cli.Execute(ctx, info)
	cli.CloseLogFile()
	os.Exit(cli.ExitCodeForError(err))
}
