package match

// emitCopy records a back-reference of length n at distance dist and
// advances the mark past it. An empty placeholder left by a partitioned
// Decompose is replaced rather than kept as a zero-length token.
func (m *Matcher[S, W]) emitCopy(dist, n int) {
	t := Token[W]{Kind: Copy, Offset: W(dist), Length: W(n)}
	if k := len(m.tokens) - 1; k >= 0 && m.tokens[k].Kind == Literal && m.tokens[k].Length == 0 {
		m.tokens[k] = t
	} else {
		m.tokens = append(m.tokens, t)
	}
	m.mark += n
}

// emitLiteral covers the symbol at the mark with a Literal, extending the
// last token if it is a Literal that ends exactly at the mark.
func (m *Matcher[S, W]) emitLiteral() {
	if k := len(m.tokens) - 1; k >= 0 && m.tokens[k].Kind == Literal &&
		int(m.tokens[k].Offset)+int(m.tokens[k].Length) == m.mark {
		m.tokens[k].Length++
	} else {
		m.tokens = append(m.tokens, Token[W]{Kind: Literal, Offset: W(m.mark), Length: 1})
	}
	m.mark++
}

// Summary holds symbol totals for a token sequence.
type Summary struct {
	Tokens   int // number of tokens
	Literals int // symbols covered by Literal tokens
	Copies   int // symbols covered by Copy tokens
}

// Summarize adds up the symbols covered by each kind of token.
func Summarize[W Width](tokens []Token[W]) Summary {
	s := Summary{Tokens: len(tokens)}
	for _, t := range tokens {
		switch t.Kind {
		case Literal:
			s.Literals += int(t.Length)
		case Copy:
			s.Copies += int(t.Length)
		}
	}
	return s
}

// Matches converts tokens to the Match representation. Consecutive Literal
// tokens are combined into one unmatched run, and a trailing run of literals
// is returned as a Match with zero Length.
func Matches[W Width](dst []Match, tokens []Token[W]) []Match {
	var unmatched int
	for _, t := range tokens {
		switch t.Kind {
		case Literal:
			unmatched += int(t.Length)
		case Copy:
			dst = append(dst, Match{
				Unmatched: unmatched,
				Length:    int(t.Length),
				Distance:  int(t.Offset),
			})
			unmatched = 0
		}
	}
	if unmatched > 0 {
		dst = append(dst, Match{Unmatched: unmatched})
	}
	return dst
}
