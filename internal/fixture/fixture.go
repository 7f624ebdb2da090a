// Package fixture writes raw-text passwd fixtures: a fixed header credential
// followed by randomly generated username:password lines.
package fixture

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/zarlcorp/zfixture/internal/creds"
)

const (
	// DefaultPath is the output file, relative to the working directory.
	DefaultPath = "rawtext.passwd"

	// DefaultHeader is the fixed stress-test account written first.
	DefaultHeader = "stresstest:stressmeout"

	DefaultPairs = 1000

	fileMode fs.FileMode = 0o644
)

var (
	// ErrWrite is returned when the fixture file cannot be opened, written or closed.
	ErrWrite = errors.New("write fixture")

	// ErrInvalidOptions is returned by Validate for unusable options.
	ErrInvalidOptions = errors.New("invalid fixture options")
)

// FileWriter is the filesystem a fixture is persisted to.
// zfilesystem's OS and in-memory filesystems satisfy it.
type FileWriter interface {
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// Options controls the shape of a generated fixture.
type Options struct {
	Path     string
	Header   string
	Pairs    int
	Length   int
	Alphabet string
}

// Default returns the fixed options the zfixture command runs with.
func Default() Options {
	return Options{
		Path:     DefaultPath,
		Header:   DefaultHeader,
		Pairs:    DefaultPairs,
		Length:   creds.DefaultLength,
		Alphabet: creds.Alphanumeric,
	}
}

// Validate reports whether o can produce a well-formed fixture.
func (o Options) Validate() error {
	switch {
	case o.Path == "":
		return fmt.Errorf("%w: empty path", ErrInvalidOptions)
	case o.Pairs < 0:
		return fmt.Errorf("%w: negative pair count %d", ErrInvalidOptions, o.Pairs)
	case o.Length <= 0:
		return fmt.Errorf("%w: length must be positive, got %d", ErrInvalidOptions, o.Length)
	case o.Alphabet == "":
		return fmt.Errorf("%w: empty alphabet", ErrInvalidOptions)
	case strings.ContainsAny(o.Alphabet, ":\r\n"):
		return fmt.Errorf("%w: alphabet contains separator or newline", ErrInvalidOptions)
	case strings.ContainsAny(o.Header, "\r\n"):
		return fmt.Errorf("%w: header contains newline", ErrInvalidOptions)
	case strings.Count(o.Header, ":") != 1:
		return fmt.Errorf("%w: header %q is not username:password", ErrInvalidOptions, o.Header)
	}
	return nil
}

// size is the exact byte length of the rendered fixture.
func (o Options) size() int {
	return len(o.Header) + 1 + o.Pairs*(2*o.Length+2)
}

// Write streams the fixture described by o to w: the header line, then
// o.Pairs lines of the form username:password. o.Path is ignored.
func Write(ctx context.Context, w io.Writer, gen *creds.Generator, o Options) error {
	if err := o.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(o.Header + "\n"); err != nil {
		return err
	}

	for i := range o.Pairs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("pair %d: %w", i+1, err)
		}

		p := gen.Pair(o.Alphabet, o.Length)
		if _, err := bw.WriteString(p.Username + ":" + p.Password + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Generate renders the fixture and writes it to o.Path on fsys, replacing
// any existing file. The file is only touched once rendering has completed,
// so a canceled context leaves prior content in place.
func Generate(ctx context.Context, fsys FileWriter, gen *creds.Generator, o Options) error {
	if err := o.Validate(); err != nil {
		return fmt.Errorf("generate fixture: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(o.size())

	if err := Write(ctx, &buf, gen, o); err != nil {
		return fmt.Errorf("generate fixture: %w", err)
	}

	if err := fsys.WriteFile(o.Path, buf.Bytes(), fileMode); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, o.Path, err)
	}

	return nil
}
