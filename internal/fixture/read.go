package fixture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zarlcorp/zfixture/internal/creds"
)

// ErrMalformed is returned by Read for a line that is not username:password.
var ErrMalformed = errors.New("malformed fixture line")

// Read parses a fixture written by Write. It returns the header line and the
// generated pairs that follow it.
func Read(r io.Reader) (string, []creds.Pair, error) {
	sc := bufio.NewScanner(r)

	var (
		header string
		pairs  []creds.Pair
		line   int
	)
	for sc.Scan() {
		line++
		text := sc.Text()

		user, pass, ok := strings.Cut(text, ":")
		if !ok || strings.Contains(pass, ":") {
			return "", nil, fmt.Errorf("%w: line %d: %q", ErrMalformed, line, text)
		}

		if line == 1 {
			header = text
			continue
		}
		pairs = append(pairs, creds.Pair{Username: user, Password: pass})
	}
	if err := sc.Err(); err != nil {
		return "", nil, fmt.Errorf("read fixture: %w", err)
	}

	return header, pairs, nil
}
