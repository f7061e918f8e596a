package match

import "fmt"

const (
	defaultHashBits = 15
	defaultMinMatch = 3
	defaultMaxMatch = 8

	minHashBits = 2
	maxHashBits = 30
)

// Config holds the settings of a Matcher. The zero value selects the
// defaults.
type Config struct {
	// HashBits is the base-2 logarithm of the hash table size.
	// Larger tables give shorter chains at the cost of memory.
	// The default is 15; valid values are 2 through 30.
	HashBits int

	// MinMatch is the length of the shortest Copy token.
	// The default is 3.
	MinMatch int

	// MaxMatch is the longest window hashed at each cursor position.
	// A verified match can run past it, up to the end of the buffer.
	// The default is 8, and it must not be less than MinMatch.
	MaxMatch int

	// Overlap allows the source of a Copy to run into the symbols the copy
	// itself covers (as in "aaaaaa" -> "a" + copy distance 1). When false,
	// the source of every Copy lies entirely in data already tokenized.
	Overlap bool

	// Exhaustive disables the early exit from the window scan. Every window
	// length up to MaxMatch is searched at every position, which can find
	// slightly longer matches but does up to MaxMatch chain walks at every
	// position instead of stopping after the first good match.
	Exhaustive bool

	// SearchLen is how many candidates to verify on each hash chain.
	// The default is 0, which walks the whole chain. Without a limit the
	// search time on repetitive input grows with the square of its length;
	// with one, each cursor position costs at most about
	// SearchLen*(MaxMatch-MinMatch+1) verifications.
	SearchLen int

	// MaxDistance is the maximum distance (in symbols) to look back for
	// a match. The default is 0, which means no limit.
	MaxDistance int
}

// withDefaults returns a copy of c with zero fields replaced by defaults,
// or an error if any field is out of range.
func (c Config) withDefaults() (Config, error) {
	if c.HashBits == 0 {
		c.HashBits = defaultHashBits
	}
	if c.MinMatch == 0 {
		c.MinMatch = defaultMinMatch
	}
	if c.MaxMatch == 0 {
		c.MaxMatch = max(defaultMaxMatch, c.MinMatch)
	}

	switch {
	case c.HashBits < minHashBits || c.HashBits > maxHashBits:
		return c, fmt.Errorf("HashBits %d not in [%d, %d]: %w", c.HashBits, minHashBits, maxHashBits, ErrInvalidConfig)
	case c.MinMatch < 1:
		return c, fmt.Errorf("MinMatch %d < 1: %w", c.MinMatch, ErrInvalidConfig)
	case c.MaxMatch < c.MinMatch:
		return c, fmt.Errorf("MaxMatch %d < MinMatch %d: %w", c.MaxMatch, c.MinMatch, ErrInvalidConfig)
	case c.SearchLen < 0:
		return c, fmt.Errorf("SearchLen %d < 0: %w", c.SearchLen, ErrInvalidConfig)
	case c.MaxDistance < 0:
		return c, fmt.Errorf("MaxDistance %d < 0: %w", c.MaxDistance, ErrInvalidConfig)
	}
	return c, nil
}
