// Package idgen is the public entry point for generating identifiers: full
// 128-bit IDs (versions 1, 4 and 7), two flavors of short ids derived from a
// version 7 ID, and nano ids. Every generator has a batch form that spreads
// the work over all CPUs.
//
// Short id flavors:
//
//	ShortID    12 characters, first  9 bytes of a v7 ID (72 bits, 18 random)
//	ShortID16  16 characters, first 12 bytes of a v7 ID (96 bits, 42 random)
//
// Both carry the full 48-bit millisecond timestamp, so ids made in the same
// millisecond differ only in their random bits. Prefer ShortID16 (or a full
// ID) when many ids are generated per millisecond.
package idgen

import (
	"github.com/leapmux/idgen/internal/batch"
	"github.com/leapmux/idgen/internal/id"
)

// ID is an immutable 128-bit identifier.
type ID = id.ID

// Option configures the generator behind a Client.
type Option = id.Option

// Clock reports the current wall-clock time.
type Clock = id.Clock

// ClockFunc adapts a function to Clock.
type ClockFunc = id.ClockFunc

// ErrInvalidFormat is returned by Parse and FromBytes for input that does
// not decode to exactly 16 bytes.
var ErrInvalidFormat = id.ErrInvalidFormat

// DefaultNanoIDSize is the nano id length used when none is given.
const DefaultNanoIDSize = id.DefaultNanoIDSize

// Generator options.
var (
	WithClock   = id.WithClock
	WithEntropy = id.WithEntropy
	WithNode    = id.WithNode
)

// Parse decodes 32 hex digits, with dashes anywhere, into an ID.
func Parse(s string) (ID, error) { return id.Parse(s) }

// FromBytes wraps exactly 16 bytes as an ID.
func FromBytes(b []byte) (ID, error) { return id.FromBytes(b) }

// Client generates identifiers from its own clock and entropy source.
// It is safe for concurrent use.
type Client struct {
	gen *id.Generator
}

// New returns a Client. Without options it uses the wall clock, crypto/rand
// and node 01:02:03:04:05:06 for version 1 IDs.
func New(opts ...Option) *Client {
	return &Client{gen: id.NewGenerator(opts...)}
}

// UUID1 returns a version 1 (time and node) ID.
func (c *Client) UUID1() ID { return c.gen.NewV1() }

// UUID4 returns a version 4 (random) ID.
func (c *Client) UUID4() ID { return c.gen.NewV4() }

// UUID7 returns a version 7 (time-ordered) ID.
func (c *Client) UUID7() ID { return c.gen.NewV7() }

// UUID1Batch returns count version 1 IDs.
func (c *Client) UUID1Batch(count int) []ID { return batch.Generate(count, c.gen.NewV1) }

// UUID4Batch returns count version 4 IDs.
func (c *Client) UUID4Batch(count int) []ID { return batch.Generate(count, c.gen.NewV4) }

// UUID7Batch returns count version 7 IDs.
func (c *Client) UUID7Batch(count int) []ID { return batch.Generate(count, c.gen.NewV7) }

// ShortID returns a 12-character URL-safe id: the first 9 bytes of a new
// version 7 ID.
func (c *Client) ShortID() string { return id.ShortID12(c.gen.NewV7()) }

// ShortIDBatch returns count ShortID values.
func (c *Client) ShortIDBatch(count int) []string { return batch.Generate(count, c.ShortID) }

// ShortID16 returns a 16-character URL-safe id: the first 12 bytes of a new
// version 7 ID.
func (c *Client) ShortID16() string { return id.ShortID16(c.gen.NewV7()) }

// ShortID16Batch returns count ShortID16 values.
func (c *Client) ShortID16Batch(count int) []string { return batch.Generate(count, c.ShortID16) }

// NanoID returns a random string over 0-9A-Za-z-_. The optional size
// defaults to DefaultNanoIDSize.
func (c *Client) NanoID(size ...int) string {
	return c.gen.NanoID(nanoSize(size))
}

// NanoIDBatch returns count nano ids of the optional size.
func (c *Client) NanoIDBatch(count int, size ...int) []string {
	n := nanoSize(size)
	return batch.Generate(count, func() string { return c.gen.NanoID(n) })
}

func nanoSize(size []int) int {
	if len(size) == 0 {
		return DefaultNanoIDSize
	}
	return size[0]
}

var std = New()

// Default returns the process-wide Client used by the package functions.
func Default() *Client { return std }

// UUID1 returns a version 1 ID from the default Client.
func UUID1() ID { return std.UUID1() }

// UUID4 returns a version 4 ID from the default Client.
func UUID4() ID { return std.UUID4() }

// UUID7 returns a version 7 ID from the default Client.
func UUID7() ID { return std.UUID7() }

// UUID1Batch returns count version 1 IDs from the default Client.
func UUID1Batch(count int) []ID { return std.UUID1Batch(count) }

// UUID4Batch returns count version 4 IDs from the default Client.
func UUID4Batch(count int) []ID { return std.UUID4Batch(count) }

// UUID7Batch returns count version 7 IDs from the default Client.
func UUID7Batch(count int) []ID { return std.UUID7Batch(count) }

// ShortID returns a 12-character short id from the default Client.
func ShortID() string { return std.ShortID() }

// ShortIDBatch returns count 12-character short ids from the default Client.
func ShortIDBatch(count int) []string { return std.ShortIDBatch(count) }

// ShortID16 returns a 16-character short id from the default Client.
func ShortID16() string { return std.ShortID16() }

// ShortID16Batch returns count 16-character short ids from the default Client.
func ShortID16Batch(count int) []string { return std.ShortID16Batch(count) }

// NanoID returns a nano id from the default Client.
func NanoID(size ...int) string { return std.NanoID(size...) }

// NanoIDBatch returns count nano ids from the default Client.
func NanoIDBatch(count int, size ...int) []string { return std.NanoIDBatch(count, size...) }
