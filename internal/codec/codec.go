// Package codec compresses HTTP response bodies with zstd.
package codec

import (
	"fmt"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Encoding is an HTTP content coding.
type Encoding string

// Supported content codings.
const (
	Identity Encoding = "identity"
	Zstd     Encoding = "zstd"
)

// Package-level encoder/decoder, safe for concurrent use.
var (
	encoder *zstd.Encoder
	decoder *zstd.Decoder
)

func init() {
	var err error
	encoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic(fmt.Sprintf("codec: init zstd encoder: %v", err))
	}
	decoder, err = zstd.NewReader(nil)
	if err != nil {
		panic(fmt.Sprintf("codec: init zstd decoder: %v", err))
	}
}

// Compress compresses data with zstd.
func Compress(data []byte) []byte {
	return encoder.EncodeAll(data, make([]byte, 0, len(data)/2))
}

// Decompress reverses the given content coding.
func Decompress(data []byte, enc Encoding) ([]byte, error) {
	switch enc {
	case Zstd:
		return decoder.DecodeAll(data, nil)
	case Identity, "":
		return data, nil
	default:
		return nil, fmt.Errorf("codec: unsupported encoding: %q", enc)
	}
}

// Negotiate picks the coding for a response from an Accept-Encoding header.
// zstd is chosen when listed without q=0; anything else falls back to
// Identity.
func Negotiate(acceptEncoding string) Encoding {
	for _, part := range strings.Split(acceptEncoding, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(name), string(Zstd)) {
			continue
		}
		if q, ok := strings.CutPrefix(strings.ReplaceAll(params, " ", ""), "q="); ok && strings.Trim(q, "0.") == "" {
			return Identity
		}
		return Zstd
	}
	return Identity
}
