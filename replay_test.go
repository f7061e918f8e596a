package match

import (
	"errors"
	"testing"
)

func TestReplay(t *testing.T) {
	src := []byte("a?????")
	got, err := Replay(nil, src, []tok{lit(0, 1), cp(1, 5)})
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if string(got) != "aaaaaa" {
		t.Errorf("overlapping copy: got %q, want %q", got, "aaaaaa")
	}
}

func TestReplayErrors(t *testing.T) {
	src := []byte("abcdef")
	tests := []struct {
		name   string
		tokens []tok
	}{
		{"ZeroDistance", []tok{lit(0, 3), cp(0, 3)}},
		{"TooFar", []tok{lit(0, 3), cp(4, 3)}},
		{"CopyFirst", []tok{cp(1, 3)}},
		{"LiteralPastEnd", []tok{lit(4, 3)}},
		{"BadKind", []tok{{Kind: 9, Length: 1}}},
	}
	for _, test := range tests {
		if _, err := Replay(nil, src, test.tokens); !errors.Is(err, ErrBadToken) {
			t.Errorf("%s: got %v, want %v", test.name, err, ErrBadToken)
		}
	}
}

func TestFingerprint(t *testing.T) {
	a := []tok{lit(0, 3), cp(3, 3)}
	b := []Token[uint16]{{Kind: Literal, Offset: 0, Length: 3}, {Kind: Copy, Offset: 3, Length: 3}}
	if Fingerprint(a) != Fingerprint(b) {
		t.Error("fingerprints of equal tokens differ across widths")
	}
	for _, other := range [][]tok{
		nil,
		{lit(0, 3)},
		{lit(0, 3), cp(3, 4)},
		{lit(0, 3), lit(3, 3)},
	} {
		if Fingerprint(a) == Fingerprint(other) {
			t.Errorf("fingerprint of %v equals that of %v", other, a)
		}
	}
}
