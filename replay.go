package match

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Replay rebuilds a buffer from tokens and appends it to dst. The symbols of
// Literal tokens are taken from src at the positions the tokens name; Copy
// tokens are expanded from the output built so far, one symbol at a time, so
// a copy may overlap the data it produces.
//
// Positions in tokens are relative to the start of the output, so dst should
// be empty unless the tokens were produced for data following it.
func Replay[S Symbol, W Width](dst, src []S, tokens []Token[W]) ([]S, error) {
	for i, t := range tokens {
		off, n := int(t.Offset), int(t.Length)
		switch t.Kind {
		case Literal:
			if off+n > len(src) {
				return dst, fmt.Errorf("token %d: literal [%d,%d) past end of input %d: %w", i, off, off+n, len(src), ErrBadToken)
			}
			dst = append(dst, src[off:off+n]...)
		case Copy:
			if off <= 0 || off > len(dst) {
				return dst, fmt.Errorf("token %d: copy distance %d with %d symbols of output: %w", i, off, len(dst), ErrBadToken)
			}
			from := len(dst) - off
			for k := 0; k < n; k++ {
				dst = append(dst, dst[from+k])
			}
		default:
			return dst, fmt.Errorf("token %d: unknown kind %v: %w", i, t.Kind, ErrBadToken)
		}
	}
	return dst, nil
}

// Fingerprint returns a 64-bit digest of a token sequence. Two sequences
// with the same tokens have the same fingerprint regardless of W.
func Fingerprint[W Width](tokens []Token[W]) uint64 {
	d := xxhash.New()
	var buf [17]byte
	for _, t := range tokens {
		buf[0] = byte(t.Kind)
		binary.LittleEndian.PutUint64(buf[1:], uint64(t.Offset))
		binary.LittleEndian.PutUint64(buf[9:], uint64(t.Length))
		d.Write(buf[:])
	}
	return d.Sum64()
}
