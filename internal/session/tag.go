package session

import (
	"encoding/hex"
	"strings"

	"github.com/zeebo/blake3"
)

// tagOf derives a deterministic short identifier from an argument vector.
// NUL joining keeps ["a b"] and ["a","b"] distinct.
func tagOf(argv []string) string {
	sum := blake3.Sum256([]byte(strings.Join(argv, "\x00")))
	return hex.EncodeToString(sum[:6])
}
