package match

import "fmt"

// Symbol is the set of types a Matcher can tokenize.
type Symbol interface {
	~uint8 | ~uint16 | ~uint32 | ~int32
}

// Width is the set of unsigned integer types used for positions, offsets and
// lengths. The width bounds the buffer: its length must stay below the
// largest value of the type.
type Width interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Bytes is a Matcher over bytes with 32-bit positions.
type Bytes = Matcher[byte, uint32]

// Runes is a Matcher over Unicode code points with 32-bit positions.
type Runes = Matcher[rune, uint32]

// Stats holds diagnostic counters. They describe how much work the matcher
// has done and play no part in the tokens it produces.
type Stats struct {
	Inserts int // hash table insertions, one per hashed window
	Steps   int // hash chain nodes examined
}

// A Matcher finds repeated runs in a growing buffer of symbols.
//
// A Matcher is not safe for concurrent use. To tokenize several inputs in
// parallel, use one Matcher per input.
type Matcher[S Symbol, W Width] struct {
	cfg   Config
	prime uint64

	data []S
	mark int

	// head maps a hash slot to the most recent window end position that
	// hashed there, and prev links a window end position to the one that
	// held the slot before it. Both store position+1, so 0 means empty.
	head []W
	prev []W

	tokens []Token[W]
	stats  Stats
}

// New returns a Matcher with an empty buffer, configured by cfg.
func New[S Symbol, W Width](cfg Config) (*Matcher[S, W], error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	size := uint64(1) << cfg.HashBits
	return &Matcher[S, W]{
		cfg:   cfg,
		prime: prevPrime(size),
		head:  make([]W, size),
	}, nil
}

// maxWidth reports the largest value of W. The buffer length must stay below it.
func maxWidth[W Width]() uint64 {
	return uint64(^W(0))
}

// Append adds syms to the end of the buffer. It does not tokenize them; call
// Decompose for that.
//
// If the buffer would no longer fit in W, Append returns ErrCapacityOverflow
// and leaves the buffer as it was.
func (m *Matcher[S, W]) Append(syms []S) error {
	n := uint64(len(m.data)) + uint64(len(syms))
	if n >= maxWidth[W]() {
		return fmt.Errorf("appending %d symbols to %d: %w", len(syms), len(m.data), ErrCapacityOverflow)
	}
	m.data = append(m.data, syms...)
	m.prev = append(m.prev, make([]W, len(syms))...)
	return nil
}

// Decompose tokenizes everything appended since the last call. If the buffer
// is already fully tokenized, it does nothing.
//
// If partition is true and there is new data, the first token produced by
// this call starts exactly at the current mark, even if it is a Literal that
// could have been merged into the previous one. This lets a caller find the
// tokens that belong to each appended segment.
func (m *Matcher[S, W]) Decompose(partition bool) {
	if partition && m.mark < len(m.data) {
		m.tokens = append(m.tokens, Token[W]{Kind: Literal, Offset: W(m.mark)})
	}
	for m.mark < len(m.data) {
		src, n := m.search()
		if n >= m.cfg.MinMatch {
			m.emitCopy(m.mark-src, n)
		} else {
			m.emitLiteral()
		}
	}
}

// discard drops the first n symbols of a fully tokenized buffer, together
// with all tokens. Index entries move down by n, and those that pointed into
// the dropped symbols become empty.
func (m *Matcher[S, W]) discard(n int) {
	copy(m.data, m.data[n:])
	m.data = m.data[:len(m.data)-n]
	copy(m.prev, m.prev[n:])
	m.prev = m.prev[:len(m.prev)-n]

	shift := func(v W) W {
		if uint64(v) <= uint64(n) {
			return 0
		}
		return v - W(n)
	}
	for i, v := range m.head {
		m.head[i] = shift(v)
	}
	for i, v := range m.prev {
		m.prev[i] = shift(v)
	}
	m.mark -= n
	m.tokens = m.tokens[:0]
}

// Data returns the buffer. The caller must not modify it.
func (m *Matcher[S, W]) Data() []S { return m.data }

// Tokens returns the tokens produced so far. They cover [0, Mark()) in order.
// The caller must not modify them.
func (m *Matcher[S, W]) Tokens() []Token[W] { return m.tokens }

// Mark returns the number of symbols that have been tokenized.
func (m *Matcher[S, W]) Mark() int { return m.mark }

// Len returns the number of symbols in the buffer.
func (m *Matcher[S, W]) Len() int { return len(m.data) }

// Stats returns the diagnostic counters.
func (m *Matcher[S, W]) Stats() Stats { return m.stats }

// Config returns the configuration in effect, with defaults filled in.
func (m *Matcher[S, W]) Config() Config { return m.cfg }
