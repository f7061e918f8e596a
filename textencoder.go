package match

import (
	"fmt"
	"strconv"
)

// A TextEncoder is an Encoder that produces a human-readable representation of
// the LZ77 compression. Matches are replaced with <Length,Distance> symbols.
type TextEncoder struct{}

func (t TextEncoder) Header(dst []byte) []byte {
	return dst
}

func (t TextEncoder) Reset() {}

func (t TextEncoder) Encode(dst []byte, src []byte, matches []Match, lastBlock bool) []byte {
	pos := 0
	for _, m := range matches {
		if m.Unmatched > 0 {
			dst = append(dst, src[pos:pos+m.Unmatched]...)
			pos += m.Unmatched
		}
		if m.Length > 0 {
			dst = appendRef(dst, m.Length, m.Distance)
			pos += m.Length
		}
	}
	if pos < len(src) {
		dst = append(dst, src[pos:]...)
	}
	return dst
}

func appendRef(dst []byte, length, distance int) []byte {
	dst = append(dst, '<')
	dst = strconv.AppendInt(dst, int64(length), 10)
	dst = append(dst, ',')
	dst = strconv.AppendInt(dst, int64(distance), 10)
	return append(dst, '>')
}

// AppendListing appends a listing of tokens to dst, one per line:
//
//	[  0] : Literal [   0,  3 )   # "ABC"
//	[  1] :    Copy [  -3,  3 )   # "ABC"
//
// The first number in brackets is the start of the data the token covers,
// relative to the token's own position in the output: zero for a Literal,
// minus the distance for a Copy. The second number is the length. The quoted
// text is the covered data, quoted as by %q.
func AppendListing[S Symbol, W Width](dst []byte, data []S, tokens []Token[W]) []byte {
	pos := 0
	for i, t := range tokens {
		n := int(t.Length)
		rel := 0
		if t.Kind == Copy {
			rel = -int(t.Offset)
		}
		dst = fmt.Appendf(dst, "[%3d] : %7s [ %3d,%3d )   # %q\n",
			i, t.Kind, rel, n, symbolText(data[pos:pos+n]))
		pos += n
	}
	return dst
}

func symbolText[S Symbol](syms []S) string {
	switch v := any(syms).(type) {
	case []byte:
		return string(v)
	case []rune:
		return string(v)
	}
	rs := make([]rune, len(syms))
	for i, s := range syms {
		rs[i] = rune(s)
	}
	return string(rs)
}
