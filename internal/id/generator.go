package id

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Number of 100ns intervals between the Gregorian epoch (1582-10-15) and the
// Unix epoch.
const gregorianOffset = 122192928000000000

// DefaultNode is the version 1 node used when none is configured.
var DefaultNode = [6]byte{1, 2, 3, 4, 5, 6}

// Clock reports the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Generator produces identifiers from a clock and an entropy source. It holds
// no locks and is safe for concurrent use as long as its entropy reader is.
type Generator struct {
	clock    Clock
	entropy  io.Reader
	node     [6]byte
	clockSeq atomic.Uint32

	// systemEntropy is set while entropy is crypto/rand, which lets nano ids
	// be drawn by go-nanoid.
	systemEntropy bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(g *Generator) { g.clock = c }
}

// WithEntropy replaces crypto/rand as the source of random bits. A reader
// shared by a batch must be safe for concurrent use.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) {
		g.entropy = r
		g.systemEntropy = false
	}
}

// WithNode sets the node written into version 1 IDs.
func WithNode(node [6]byte) Option {
	return func(g *Generator) { g.node = node }
}

// NewGenerator returns a Generator using the wall clock, crypto/rand and
// DefaultNode unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		clock:         SystemClock,
		entropy:       rand.Reader,
		node:          DefaultNode,
		systemEntropy: true,
	}
	for _, o := range opts {
		o(g)
	}

	var seed [2]byte
	g.fill(seed[:])
	g.clockSeq.Store(uint32(binary.BigEndian.Uint16(seed[:])))
	return g
}

// NewV7 returns a time-ordered ID: 48 bits of Unix milliseconds followed by
// the version, variant and 74 random bits. IDs from later milliseconds sort
// after IDs from earlier ones.
func (g *Generator) NewV7() ID {
	var i ID
	g.fill(i[6:])

	ms := uint64(g.clock.Now().UnixMilli())
	i[0] = byte(ms >> 40)
	i[1] = byte(ms >> 32)
	i[2] = byte(ms >> 24)
	i[3] = byte(ms >> 16)
	i[4] = byte(ms >> 8)
	i[5] = byte(ms)

	i[6] = 0x70 | i[6]&0x0f
	i[8] = 0x80 | i[8]&0x3f
	return i
}

// NewV1 returns a version 1 ID: a 60-bit Gregorian timestamp in 100ns
// units, a 14-bit clock sequence and the generator's node. The clock
// sequence advances on every call.
func (g *Generator) NewV1() ID {
	var i ID

	ticks := uint64(g.clock.Now().UnixNano()/100) + gregorianOffset
	binary.BigEndian.PutUint32(i[0:4], uint32(ticks))
	binary.BigEndian.PutUint16(i[4:6], uint16(ticks>>32))
	binary.BigEndian.PutUint16(i[6:8], uint16(ticks>>48)&0x0fff|0x1000)

	seq := uint16(g.clockSeq.Add(1)) & 0x3fff
	binary.BigEndian.PutUint16(i[8:10], seq|0x8000)

	copy(i[10:], g.node[:])
	return i
}

// NewV4 returns a random ID with 122 random bits.
func (g *Generator) NewV4() ID {
	u, err := uuid.NewRandomFromReader(g.entropy)
	if err != nil {
		panic(fmt.Sprintf("id: generate v4: %v", err))
	}
	return ID(u)
}

// Node returns the node written into version 1 IDs.
func (g *Generator) Node() [6]byte { return g.node }

func (g *Generator) fill(b []byte) {
	if _, err := io.ReadFull(g.entropy, b); err != nil {
		panic(fmt.Sprintf("id: read entropy: %v", err))
	}
}
