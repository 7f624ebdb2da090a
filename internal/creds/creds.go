// Package creds samples random usernames and passwords for test fixtures.
//
// The generator is backed by math/rand/v2. Output is meant for fixture files
// fed to stress tests, never for real accounts.
package creds

import (
	"math/rand/v2"
	"strings"
)

// credential character classes
const (
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars = "0123456789"

	// Alphanumeric is the 62-symbol alphabet used for fixture credentials.
	Alphanumeric = upperChars + lowerChars + digitChars

	DefaultLength = 30
)

// Pair is one username/password credential.
type Pair struct {
	Username string
	Password string
}

// String renders the pair as username:password.
func (p Pair) String() string {
	return p.Username + ":" + p.Password
}

// Generator produces random credential strings.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator seeded from the runtime's random source.
func New() *Generator {
	return NewSeeded(rand.Uint64())
}

// NewSeeded creates a generator whose output is fully determined by seed.
func NewSeeded(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// String returns n characters sampled uniformly, with replacement, from
// alphabet. It panics if alphabet is empty.
func (g *Generator) String(alphabet string, n int) string {
	if alphabet == "" {
		panic("creds: empty alphabet")
	}
	if n <= 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(g.pickByte(alphabet))
	}
	return b.String()
}

// Pair generates an independent username and password of length n.
func (g *Generator) Pair(alphabet string, n int) Pair {
	return Pair{
		Username: g.String(alphabet, n),
		Password: g.String(alphabet, n),
	}
}

// pickByte returns a random byte from s.
func (g *Generator) pickByte(s string) byte {
	return s[g.rng.IntN(len(s))]
}
