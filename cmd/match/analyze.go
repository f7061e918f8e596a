package main

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/michaeljclark/match"
)

// splitGroups trims surrounding white space from data and splits it at every
// character in sep. Empty groups are dropped.
func splitGroups(data []byte, sep string) [][]byte {
	return bytes.FieldsFunc(bytes.TrimSpace(data), func(r rune) bool {
		return strings.ContainsRune(sep, r)
	})
}

// analyze decomposes one input and returns its report.
func analyze(cfg *settings, in input) ([]byte, error) {
	groups := [][]byte{in.data}
	if cfg.Split != "" {
		groups = splitGroups(in.data, cfg.Split)
	}

	var out []byte
	if cfg.Verbose {
		if cfg.Split != "" {
			for _, g := range groups {
				out = fmt.Appendf(out, "Symbol: %s\n", g)
			}
		} else {
			out = fmt.Appendf(out, "OriginalText: %s\n", in.data)
		}
	}

	var rep []byte
	var err error
	if cfg.Runes {
		syms := make([][]rune, len(groups))
		for i, g := range groups {
			syms[i] = bytes.Runes(g)
		}
		rep, err = decompose(cfg, syms)
	} else {
		rep, err = decompose(cfg, groups)
	}
	if err != nil {
		return nil, err
	}
	return append(out, rep...), nil
}

// decompose feeds each group to a fresh matcher, tokenizing after every group,
// and formats the result.
func decompose[S match.Symbol](cfg *settings, groups [][]S) ([]byte, error) {
	m, err := match.New[S, uint32](cfg.config())
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if err := m.Append(g); err != nil {
			return nil, err
		}
		m.Decompose(cfg.Partition)
	}

	var out []byte
	if cfg.Verbose {
		out = match.AppendListing(out, m.Data(), m.Tokens())
	}
	if cfg.Check {
		got, err := match.Replay(nil, m.Data(), m.Tokens())
		if err != nil {
			return nil, fmt.Errorf("replay: %w", err)
		}
		if !slices.Equal(got, m.Data()) {
			return nil, errors.New("replay does not reproduce the input")
		}
	}

	sum := match.Summarize(m.Tokens())
	out = fmt.Appendf(out, "DataSize/Literals/Copies: %d/%d/%d\n", m.Len(), sum.Literals, sum.Copies)
	if cfg.Debug {
		st := m.Stats()
		out = fmt.Appendf(out, "OuterIterations/InnerIterations: %d/%d\n", st.Inserts, st.Steps)
		out = fmt.Appendf(out, "Fingerprint: %016x\n", match.Fingerprint(m.Tokens()))
	}
	return out, nil
}
