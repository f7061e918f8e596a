package match

import (
	"encoding/binary"
	"math/bits"
	"runtime"
)

// insert makes end the head of the chain for slot, linking it to the
// previous head, and returns that previous head (position+1, or 0).
//
// A position is the end of several windows (one per window length), and the
// same position is inserted again each time the cursor moves past it, so
// prev[end] can be overwritten with a link that does not point backward.
// The chain walk in search checks for that.
func (m *Matcher[S, W]) insert(slot, end int) int {
	last := m.head[slot]
	m.prev[end] = last
	m.head[slot] = W(end + 1)
	m.stats.Inserts++
	return int(last)
}

// search looks for the longest earlier copy of the data at the mark. It
// returns the start of the source and the length of the match, or a length
// of 0 if nothing qualifies.
//
// Windows of length 1 through MaxMatch starting at the mark are hashed
// incrementally, and every window is entered in the index. Once a window is
// at least MinMatch-1 symbols long, the chain of its hash slot is walked and
// each candidate is verified against the buffer. Among matches of equal
// length the most recent source wins.
//
// Candidates that cannot give a match of MinMatch symbols are passed over
// without counting toward SearchLen, and the walk ends at the first
// candidate more than MaxDistance back.
func (m *Matcher[S, W]) search() (best, length int) {
	mark := m.mark
	avail := len(m.data) - mark
	windows := min(avail, m.cfg.MaxMatch)

	var h uint64
	for pos := 0; pos < windows; pos++ {
		end := mark + pos
		h = hashAdd(h, m.data[end])
		cand := m.insert(m.hashSlot(h), end)

		if pos < m.cfg.MinMatch-1 {
			continue
		}

		verified := 0
		for cand != 0 {
			m.stats.Steps++
			c := cand - 1
			src := c - pos
			if m.cfg.MaxDistance > 0 && mark-src > m.cfg.MaxDistance {
				// The chain only gets older from here.
				break
			}
			if src >= 0 && src < mark {
				n := avail
				if !m.cfg.Overlap {
					n = min(n, mark-src)
				}
				if n >= m.cfg.MinMatch {
					l := matchLength(m.data, src, mark, n)
					if l >= m.cfg.MinMatch && (l > length || (l == length && src > best)) {
						best, length = src, l
					}
					verified++
					if verified == m.cfg.SearchLen {
						break
					}
				}
			}

			next := int(m.prev[c])
			if next >= cand {
				// Links must point strictly backward, or the walk could cycle.
				break
			}
			cand = next
		}

		// A match longer than the windows seen so far is good enough.
		if !m.cfg.Exhaustive && length > pos+1 {
			break
		}
	}
	return best, length
}

// matchLength returns how many symbols starting at i equal those starting at
// j, up to n. It assumes that i < j and j+n <= len(src).
func matchLength[S Symbol](src []S, i, j, n int) int {
	if b, ok := any(src).([]byte); ok {
		return extendMatch(b[:j+n], i, j) - j
	}
	k := 0
	for k < n && src[i+k] == src[j+k] {
		k++
	}
	return k
}

// extendMatch returns the largest k such that k <= len(src) and that
// src[i:i+k-j] and src[j:k] have the same contents.
//
// It assumes that:
//
//	0 <= i && i < j && j <= len(src)
func extendMatch(src []byte, i, j int) int {
	switch runtime.GOARCH {
	case "amd64", "arm64":
		// As long as we are 8 or more bytes before the end of src, we can load and
		// compare 8 bytes at a time. If those 8 bytes are equal, repeat.
		for j+8 < len(src) {
			iBytes := binary.LittleEndian.Uint64(src[i:])
			jBytes := binary.LittleEndian.Uint64(src[j:])
			if iBytes != jBytes {
				// If those 8 bytes were not equal, XOR the two 8 byte values, and return
				// the index of the first byte that differs. Both architectures are
				// little-endian, so the trailing zeros count the equal leading bytes.
				return j + bits.TrailingZeros64(iBytes^jBytes)>>3
			}
			i, j = i+8, j+8
		}
	case "386":
		// On a 32-bit CPU, we do it 4 bytes at a time.
		for j+4 < len(src) {
			iBytes := binary.LittleEndian.Uint32(src[i:])
			jBytes := binary.LittleEndian.Uint32(src[j:])
			if iBytes != jBytes {
				return j + bits.TrailingZeros32(iBytes^jBytes)>>3
			}
			i, j = i+4, j+4
		}
	}
	for ; j < len(src) && src[i] == src[j]; i, j = i+1, j+1 {
	}
	return j
}
