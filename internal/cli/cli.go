// Package cli implements zfixture's command-line surface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zfixture/internal/creds"
	"github.com/zarlcorp/zfixture/internal/fixture"
	"golang.org/x/term"
)

const name = "zfixture"

// CmdGenerate writes the default passwd fixture to fsys.
func CmdGenerate(ctx context.Context, fsys fixture.FileWriter) error {
	return fixture.Generate(ctx, fsys, creds.New(), fixture.Default())
}

// CmdVersion prints the build version.
func CmdVersion(w io.Writer, version string) {
	accent := lipgloss.NewStyle().Foreground(zstyle.ZburnAccent).Bold(true)
	fmt.Fprintf(w, "%s %s\n", paint(w, accent.Render, name), version)
}

// Fail prints err as a one-line diagnostic.
func Fail(w io.Writer, err error) {
	fmt.Fprintf(w, "%s: %s\n", name, paint(w, zstyle.StatusErr.Render, err.Error()))
}

// paint applies render only when w is a terminal.
func paint(w io.Writer, render func(...string) string, s string) string {
	if !isTerminal(w) {
		return s
	}
	return render(s)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
