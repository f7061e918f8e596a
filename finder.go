package match

// Finder is an implementation of the MatchFinder interface backed by a
// byte Matcher. The history of earlier blocks is searched for matches too.
type Finder struct {
	// Config configures the underlying Matcher. It is read when the first
	// block arrives and after each Reset. A zero SearchLen becomes 16 and a
	// zero MaxDistance becomes 65535, so that the cost per byte stays
	// bounded over a long stream.
	//
	// If Config is invalid (see New), the Finder uses the defaults instead.
	// Call Validate first to catch that.
	Config Config

	m *Bytes
}

const (
	minHistory = 1 << 16
	maxHistory = 1 << 18

	finderSearchLen   = 16
	finderMaxDistance = 65535
)

func (f *Finder) Reset() {
	f.m = nil
}

// Validate reports whether f.Config is usable, returning the error from New
// if it is not.
func (f *Finder) Validate() error {
	_, err := f.config().withDefaults()
	return err
}

func (f *Finder) config() Config {
	c := f.Config
	if c.SearchLen == 0 {
		c.SearchLen = finderSearchLen
	}
	if c.MaxDistance == 0 {
		c.MaxDistance = finderMaxDistance
	}
	return c
}

// FindMatches looks for matches in src, appends them to dst, and returns dst.
//
// The matches cover exactly the bytes of src. Once the history grows past
// 256 KiB, it is trimmed to the most recent 64 KiB.
func (f *Finder) FindMatches(dst []Match, src []byte) []Match {
	if len(src) == 0 {
		return dst
	}
	if f.m != nil && f.m.Len() > maxHistory {
		f.m.discard(f.m.Len() - minHistory)
	}
	if f.m == nil || f.m.Append(src) != nil {
		m, err := New[byte, uint32](f.config())
		if err != nil {
			m, _ = New[byte, uint32](Config{})
		}
		f.m = m
		if err := f.m.Append(src); err != nil {
			// A single block too large for the width: report it as unmatched.
			f.m = nil
			return append(dst, Match{Unmatched: len(src)})
		}
	}

	start := len(f.m.tokens)
	f.m.Decompose(true)
	return Matches(dst, f.m.tokens[start:])
}
