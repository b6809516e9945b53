package idgen

import (
	"encoding/hex"
	"time"

	"github.com/leapmux/idgen/internal/id"
)

// Info holds every derived view of an ID.
type Info struct {
	Hex       string `json:"hex"`
	Bytes     []byte `json:"bytes"`
	Version   int    `json:"version"`
	Variant   string `json:"variant"`
	ShortID   string `json:"short_id"`
	ShortID16 string `json:"short_id16"`
	Base64    string `json:"base64"`
	Int       string `json:"int"`

	// Set for version 1 and 7 IDs only.
	Time string `json:"time,omitempty"`
	// Set for version 1 IDs only.
	Node          string `json:"node,omitempty"`
	ClockSequence *int   `json:"clock_sequence,omitempty"`
}

// Inspect decodes i into its derived views.
func Inspect(i ID) Info {
	info := Info{
		Hex:       i.String(),
		Bytes:     i.Bytes(),
		Version:   i.Version(),
		Variant:   i.Variant().String(),
		ShortID:   id.ShortID12(i),
		ShortID16: id.ShortID16(i),
		Base64:    id.Base64(i),
		Int:       i.Int().String(),
	}
	if ts, ok := i.Time(); ok {
		info.Time = ts.Format(time.RFC3339Nano)
	}
	if node := i.Node(); node != nil {
		info.Node = hex.EncodeToString(node)
		seq := i.ClockSequence()
		info.ClockSequence = &seq
	}
	return info
}
