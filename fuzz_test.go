package match

import (
	"bytes"
	"testing"
)

func FuzzDecompose(f *testing.F) {
	f.Add([]byte("ABCABCABC"), uint8(0), false)
	f.Add([]byte("AAAAAAAAAAAAAAAA"), uint8(2), true)
	f.Add([]byte("TGGGCGTGCGCTTGAAAAGAGCCTAAGAAGAGGGGGCG"), uint8(7), false)
	f.Fuzz(func(t *testing.T, data []byte, cut uint8, overlap bool) {
		cfg := Config{HashBits: 6, Overlap: overlap}
		m := mustNew(t, cfg)
		k := int(cut) % (len(data) + 1)
		for _, chunk := range [][]byte{data[:k], data[k:]} {
			if err := m.Append(chunk); err != nil {
				t.Fatal(err)
			}
			m.Decompose(false)
		}
		checkTokens(t, m, false)

		got, err := Replay(nil, data, m.Tokens())
		if err != nil || !bytes.Equal(got, data) {
			t.Fatalf("Replay(%q): %q, %v", data, got, err)
		}
	})
}
