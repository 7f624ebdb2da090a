package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zfixture/internal/cli"
	"github.com/zarlcorp/zfixture/internal/fixture"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zfixture"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if len(os.Args) > 1 {
		runCLI(os.Args[1])
		_ = app.Close()
		return
	}

	if err := cli.CmdGenerate(ctx, zfilesystem.NewOSFileSystem(".")); err != nil {
		slog.Error("generate", "path", fixture.DefaultPath, "err", err)
		_ = app.Close()
		cancel()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(cmd string) {
	switch cmd {
	case "version":
		cli.CmdVersion(os.Stdout, version)
	default:
		cli.Fail(os.Stderr, fmt.Errorf("unknown command %q", cmd))
		os.Exit(1)
	}
}
