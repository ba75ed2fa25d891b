package asciimath

// The grammar has three tiers. A simple expression is one symbol plus
// whatever arguments its behavior consumes. An intermediate expression
// is a simple expression with optional _ and ^ scripts. A full
// expression is a run of intermediate expressions with / binding the
// two adjacent ones into a fraction. All tiers advance the cursor and
// return their fragment; failures embed merror nodes in the output
// instead of aborting.

func isTerminator(k symKind) bool {
	switch k {
	case symEOF, symRightBracket, symMatrixRight, symCellSep, symRowSep:
		return true
	}
	return false
}

// parseSimple consumes one symbol and returns its fragment together
// with the symbol itself. When a terminating symbol is next it returns
// nil without consuming anything.
func (s *scanner) parseSimple() (*elem, symbol) {
	sym, pos := s.peek()
	if isTerminator(sym.kind) {
		return nil, sym
	}
	s.pos = pos
	if sym.kind == symMatrixLeft {
		return s.parseMatrix(sym), sym
	}
	if sym.kind == symLeftBracket {
		return s.parseGroup(sym), sym
	}
	return s.render(sym), sym
}

// parseArg fetches one argument for a unary or binary construct,
// substituting a diagnostic when the input is exhausted or a closing
// symbol appears instead.
func (s *scanner) parseArg() *elem {
	if e, _ := s.parseSimple(); e != nil {
		return e
	}
	return errorElem("missing argument")
}

// render invokes the symbol's action. Unary and binary behaviors reach
// back into the grammar for their arguments.
func (s *scanner) render(sym symbol) *elem {
	switch sym.run {
	case runIdentifier:
		return newText("mi", s.mapText(sym.out))
	case runOperator:
		return newText("mo", sym.out)
	case runNumber:
		return newText("mn", sym.out)
	case runText:
		return newText("mtext", s.mapText(sym.out))
	case runUnaryWrap:
		return newElem(sym.tag, s.parseArg())
	case runUnaryOver:
		return newElem("mover", s.parseArg(), newText("mo", sym.out))
	case runUnaryUnder:
		return newElem("munder", s.parseArg(), newText("mo", sym.out))
	case runUnarySurround:
		return newElem("mrow", newText("mo", sym.left), s.parseArg(), newText("mo", sym.right))
	case runUnaryFont:
		s.pushFont(sym.font)
		defer s.popFont()
		return s.parseArg()
	case runBinaryWrap:
		a := s.parseArg()
		b := s.parseArg()
		if sym.rev {
			a, b = b, a
		}
		return newElem(sym.tag, a, b)
	case runError:
		return errorElem(sym.out)
	}
	return nil // runEmpty
}

// parseGroup parses a bracketed full expression; open has already been
// consumed. The wrapper mrow is emitted even when a bracket is
// invisible or missing so the output stays well-formed.
func (s *scanner) parseGroup(open symbol) *elem {
	var frag []*elem
	if !open.invisible {
		frag = append(frag, newText("mo", open.out))
	}
	frag = append(frag, s.parseFull()...)
	if end, pos := s.peek(); end.kind == symRightBracket {
		s.pos = pos
		if !end.invisible {
			frag = append(frag, newText("mo", end.out))
		}
	} else {
		frag = append(frag, errorElem("missing closing paren"))
	}
	return newElem("mrow", frag...)
}

// parseIntermediate parses a simple expression with optional subscript
// and superscript, each a simple expression of its own. Script
// placement depends on the base symbol: UnderOver bases take their
// scripts below and above, everything else as sub- and superscripts.
func (s *scanner) parseIntermediate() *elem {
	base, sym := s.parseSimple()
	if base == nil {
		return nil
	}
	var sub, sup *elem
	if next, pos := s.peek(); next.kind == symDefault && next.pattern == "_" {
		s.pos = pos
		sub = s.parseArg()
	}
	if next, pos := s.peek(); next.kind == symDefault && next.pattern == "^" {
		s.pos = pos
		sup = s.parseArg()
	}
	if sym.kind == symUnderOver {
		switch {
		case sub != nil && sup != nil:
			return newElem("munderover", base, sub, sup)
		case sub != nil:
			return newElem("munder", base, sub)
		case sup != nil:
			return newElem("mover", base, sup)
		}
		return base
	}
	switch {
	case sub != nil && sup != nil:
		return newElem("msubsup", base, sub, sup)
	case sub != nil:
		return newElem("msub", base, sub)
	case sup != nil:
		return newElem("msup", base, sup)
	}
	return base
}

// parseFull concatenates intermediate expressions until a terminating
// symbol is peeked. A / after an intermediate expression binds it and
// the next one into a fraction; only the two adjacent expressions are
// bound, a further / in the same run scans as a plain operator.
func (s *scanner) parseFull() []*elem {
	var frag []*elem
	for {
		sym, _ := s.peek()
		if isTerminator(sym.kind) {
			return frag
		}
		e := s.parseIntermediate()
		if e == nil {
			return frag
		}
		if next, pos := s.peek(); next.kind == symDefault && next.pattern == "/" {
			s.pos = pos
			denom := s.parseIntermediate()
			if denom == nil {
				denom = errorElem("missing argument")
			}
			e = newElem("mfrac", e, denom)
		}
		frag = append(frag, e)
	}
}

// parseMatrix parses rows of full-expression cells up to the matching
// matrix bracket; open has already been consumed. The enclosing mrow is
// only emitted when at least one bracket renders visibly (a missing
// close counts, its diagnostic takes the bracket's place).
func (s *scanner) parseMatrix(open symbol) *elem {
	var rows []*elem
	for {
		sym, _ := s.peek()
		if sym.kind == symMatrixRight || sym.kind == symRightBracket || sym.kind == symEOF {
			break
		}
		rows = append(rows, s.parseRow())
	}

	var frag []*elem
	if !open.invisible {
		frag = append(frag, newText("mo", open.out))
	}
	frag = append(frag, newElem("mtable", rows...))
	if end, pos := s.peek(); end.kind == symMatrixRight {
		s.pos = pos
		if !end.invisible {
			frag = append(frag, newText("mo", end.out))
		}
	} else {
		frag = append(frag, errorElem("missing closing paren"))
	}
	if len(frag) == 1 {
		return frag[0]
	}
	return newElem("mrow", frag...)
}

// parseRow accumulates one cell per full expression. A cell separator
// continues the row, a row separator ends it, and anything else (the
// closing bracket or exhausted input) is left for parseMatrix.
func (s *scanner) parseRow() *elem {
	var cells []*elem
	for {
		cells = append(cells, newElem("mtd", s.parseFull()...))
		sym, pos := s.peek()
		switch sym.kind {
		case symCellSep:
			s.pos = pos
		case symRowSep:
			s.pos = pos
			return newElem("mtr", cells...)
		default:
			return newElem("mtr", cells...)
		}
	}
}

// parseAll parses full expressions to the end of input. Stray
// terminating symbols at the top level are consumed and rendered in
// place so no input is silently dropped.
func (s *scanner) parseAll() []*elem {
	var frag []*elem
	for {
		frag = append(frag, s.parseFull()...)
		sym, pos := s.peek()
		if sym.kind == symEOF {
			return frag
		}
		s.pos = pos
		if !sym.invisible && sym.out != "" {
			frag = append(frag, newText("mo", sym.out))
		}
	}
}
