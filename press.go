// Package match is an incremental, single-pass match finder.
//
// A Matcher holds an append-only buffer of symbols and describes it as a
// sequence of tokens: runs of fresh symbols (Literal) and back-references to
// data seen earlier (Copy). This is the LZ77 stage of a compressor, or the
// matching stage of a binary diff tool, without any entropy coding.
//
// Data can be appended and decomposed in several rounds. Each call to
// Decompose only looks at the symbols appended since the previous call, so
// earlier tokens are never revisited.
//
// The package also keeps a byte-oriented intermediate representation (Match)
// and the MatchFinder and Encoder interfaces, so the matcher can be plugged
// into code that consumes LZ77 matches.
package match

// Kind tags a Token as fresh data or a back-reference.
type Kind uint8

const (
	Literal Kind = iota
	Copy
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Copy:
		return "Copy"
	}
	return "Kind(?)"
}

// A Token describes one contiguous run of the buffer.
//
// For a Literal, Offset is the absolute position of the first symbol and the
// token covers [Offset, Offset+Length). For a Copy, Offset is the
// back-distance: the symbols at the current position are equal to the ones
// Offset positions earlier.
type Token[W Width] struct {
	Kind   Kind
	Offset W
	Length W
}

// A Match is the basic unit of LZ77 compression.
type Match struct {
	Unmatched int // the number of unmatched bytes since the previous match
	Length    int // the number of bytes in the matched string; it may be 0 at the end of the input
	Distance  int // how far back in the stream to copy from
}

// A MatchFinder performs the LZ77 stage of compression, looking for matches.
type MatchFinder interface {
	// FindMatches looks for matches in src, appends them to dst, and returns dst.
	FindMatches(dst []Match, src []byte) []Match

	// Reset clears any internal state, preparing the MatchFinder to be used with
	// a new stream.
	Reset()
}

// An Encoder encodes the data in its final format.
type Encoder interface {
	// Header appends the appropriate stream header to dst.
	Header(dst []byte) []byte

	// Encode appends the encoded format of src to dst, using the match
	// information from matches.
	Encode(dst []byte, src []byte, matches []Match, lastBlock bool) []byte

	// Reset clears any internal state, preparing the Encoder to be used with
	// a new stream.
	Reset()
}
