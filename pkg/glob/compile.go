package glob

import "fmt"

// parser turns pattern text into a section sequence. It works on runes
// so multi-byte characters survive escaping, brackets and ranges.
type parser struct {
	runes []rune
	pos   int
}

// sequence parses sections until the end of the pattern, or, inside a
// group, until an alternative or group terminator.
func (p *parser) sequence(inGroup bool) ([]section, error) {
	var secs []section
	var lit []rune

	flush := func() {
		if len(lit) > 0 {
			secs = append(secs, section{kind: kindConstant, text: string(lit)})
			lit = nil
		}
	}

	for p.pos < len(p.runes) {
		r := p.runes[p.pos]
		if inGroup && (r == ')' || r == '|') {
			break
		}
		switch r {
		case '\\':
			if p.pos+1 >= len(p.runes) {
				return nil, fmt.Errorf("%w: trailing escape", ErrBadPattern)
			}
			lit = append(lit, p.runes[p.pos+1])
			p.pos += 2

		case '?':
			flush()
			if p.groupFollows() {
				g, err := p.group(ZeroOrOne)
				if err != nil {
					return nil, err
				}
				secs = append(secs, g)
			} else {
				secs = append(secs, section{kind: kindSingle})
				p.pos++
			}

		case '*':
			stars := 0
			for p.pos+stars < len(p.runes) && p.runes[p.pos+stars] == '*' {
				stars++
			}
			// A parenthesis right after the run claims the last star
			// for a zero-or-more group.
			group := p.pos+stars < len(p.runes) && p.runes[p.pos+stars] == '('
			if group {
				stars--
			}
			flush()
			if stars >= 2 {
				secs = append(secs, section{kind: kindPathWildcard})
			} else if stars == 1 {
				secs = append(secs, section{kind: kindComponentWildcard})
			}
			p.pos += stars
			if group {
				g, err := p.group(ZeroOrMore)
				if err != nil {
					return nil, err
				}
				secs = append(secs, g)
			}

		case '@', '+', '!':
			if p.groupFollows() {
				flush()
				style := ExactlyOne
				switch r {
				case '+':
					style = OneOrMore
				case '!':
					style = NegatedOne
				}
				g, err := p.group(style)
				if err != nil {
					return nil, err
				}
				secs = append(secs, g)
			} else {
				lit = append(lit, r)
				p.pos++
			}

		case '[':
			flush()
			sec, err := p.bracket()
			if err != nil {
				return nil, err
			}
			secs = append(secs, sec)

		default:
			lit = append(lit, r)
			p.pos++
		}
	}
	flush()
	return secs, nil
}

func (p *parser) groupFollows() bool {
	return p.pos+1 < len(p.runes) && p.runes[p.pos+1] == '('
}

// group consumes a quantifier, its parentheses and the '|'-separated
// alternatives, which may nest further groups.
func (p *parser) group(style Style) (section, error) {
	p.pos += 2 // quantifier and '('
	var alts [][]section
	for {
		seq, err := p.sequence(true)
		if err != nil {
			return section{}, err
		}
		alts = append(alts, seq)
		if p.pos >= len(p.runes) {
			return section{}, fmt.Errorf("%w: missing ')'", ErrBadPattern)
		}
		if p.runes[p.pos] == '|' {
			p.pos++
			continue
		}
		p.pos++ // ')'
		return section{kind: kindPatternList, style: style, alts: alts}, nil
	}
}

// bracket consumes a bracket expression. A ']' in first position is a
// set member, not the terminator, and '-' is literal at either edge of
// the set.
func (p *parser) bracket() (section, error) {
	p.pos++ // '['
	sec := section{kind: kindOneOf}
	if p.pos < len(p.runes) && (p.runes[p.pos] == '!' || p.runes[p.pos] == '^') {
		sec.negated = true
		p.pos++
	}
	first := true
	for {
		if p.pos >= len(p.runes) {
			return section{}, fmt.Errorf("%w: missing ']'", ErrBadPattern)
		}
		r := p.runes[p.pos]
		if r == ']' && !first {
			p.pos++
			return sec, nil
		}
		first = false
		if r == '\\' {
			if p.pos+1 >= len(p.runes) {
				return section{}, fmt.Errorf("%w: trailing escape", ErrBadPattern)
			}
			p.pos++
			r = p.runes[p.pos]
		}
		lo, hi := r, r
		if p.pos+2 < len(p.runes) && p.runes[p.pos+1] == '-' && p.runes[p.pos+2] != ']' {
			p.pos += 2
			hi = p.runes[p.pos]
			if hi == '\\' {
				if p.pos+1 >= len(p.runes) {
					return section{}, fmt.Errorf("%w: trailing escape", ErrBadPattern)
				}
				p.pos++
				hi = p.runes[p.pos]
			}
			if hi < lo {
				return section{}, fmt.Errorf("%w: inverted range %c-%c", ErrBadPattern, lo, hi)
			}
		}
		sec.ranges = append(sec.ranges, charRange{lo: lo, hi: hi})
		p.pos++
	}
}
