package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NanoAlphabet holds the 64 nano id symbols. Its length being a power of two
// lets every random byte map to a symbol without rejection.
const NanoAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_"

// DefaultNanoIDSize is the nano id length used when none is given.
const DefaultNanoIDSize = 21

// NanoID returns size characters drawn independently and uniformly from
// NanoAlphabet. A size of zero or less yields "".
func (g *Generator) NanoID(size int) string {
	if size <= 0 {
		return ""
	}
	if g.systemEntropy {
		s, err := gonanoid.Generate(NanoAlphabet, size)
		if err != nil {
			panic(fmt.Sprintf("id: generate nanoid: %v", err))
		}
		return s
	}

	buf := make([]byte, size)
	g.fill(buf)
	for k, b := range buf {
		buf[k] = NanoAlphabet[b&63]
	}
	return string(buf)
}
