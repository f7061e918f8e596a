package match

import "testing"

func TestPrevPrime(t *testing.T) {
	tests := []struct {
		n, want uint64
	}{
		{4, 3},
		{8, 7},
		{256, 251},
		{1 << 15, 32749},
		{1 << 16, 65521},
		{1 << 20, 1048573},
	}
	for _, test := range tests {
		if got := prevPrime(test.n); got != test.want {
			t.Errorf("prevPrime(%d): got %d, want %d", test.n, got, test.want)
		}
	}
}

func TestHashAdd(t *testing.T) {
	var h uint64
	for _, c := range []byte("ABC") {
		h = hashAdd(h, c)
	}
	if want := uint64('A')<<10 ^ uint64('B')<<5 ^ uint64('C'); h != want {
		t.Errorf("hash of ABC: got %#x, want %#x", h, want)
	}

	// Runes and bytes of the same value hash alike.
	if hashAdd(7, 'x') != hashAdd(7, byte('x')) {
		t.Error("rune and byte hashes differ")
	}
}

func TestHashSlot(t *testing.T) {
	m := mustNew(t, Config{HashBits: 4})
	if m.prime != 13 {
		t.Fatalf("prime for 16 slots: got %d, want 13", m.prime)
	}
	for h := uint64(0); h < 1000; h++ {
		if s := m.hashSlot(h); s < 0 || s >= 13 || s != int(h%13) {
			t.Fatalf("hashSlot(%d) = %d", h, s)
		}
	}
}

func TestMatchLength(t *testing.T) {
	src := []byte("abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrstuvwxyz+")
	if got := matchLength(src, 0, 27, 27); got != 26 {
		t.Errorf("matchLength bytes: got %d, want 26", got)
	}
	if got := matchLength(src, 0, 27, 10); got != 10 {
		t.Errorf("matchLength bytes limited: got %d, want 10", got)
	}
	rs := []rune("héllo héllo!")
	if got := matchLength(rs, 0, 6, 6); got != 5 {
		t.Errorf("matchLength runes: got %d, want 5", got)
	}
}
