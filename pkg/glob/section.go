package glob

type sectionKind uint8

const (
	kindConstant sectionKind = iota
	kindSingle
	kindOneOf
	kindComponentWildcard
	kindPathWildcard
	kindPatternList
)

// Style is the quantifier of an extended-glob group.
type Style uint8

const (
	ExactlyOne Style = iota // @(...)
	ZeroOrOne               // ?(...)
	OneOrMore               // +(...)
	ZeroOrMore              // *(...)
	NegatedOne              // !(...)
)

func (s Style) String() string {
	switch s {
	case ExactlyOne:
		return "@"
	case ZeroOrOne:
		return "?"
	case OneOrMore:
		return "+"
	case ZeroOrMore:
		return "*"
	case NegatedOne:
		return "!"
	}
	return "invalid"
}

// allowsZero reports whether the style permits zero occurrences.
func (s Style) allowsZero() bool {
	return s == ZeroOrOne || s == ZeroOrMore || s == NegatedOne
}

type charRange struct {
	lo, hi rune
}

// section is one element of a compiled pattern. Which fields are
// meaningful depends on kind; sections are immutable after compilation.
type section struct {
	kind    sectionKind
	text    string      // kindConstant
	ranges  []charRange // kindOneOf
	negated bool        // kindOneOf
	style   Style       // kindPatternList
	alts    [][]section // kindPatternList
}

// matchesEmpty reports whether the section can match zero characters.
func (s *section) matchesEmpty() bool {
	switch s.kind {
	case kindComponentWildcard, kindPathWildcard:
		return true
	case kindPatternList:
		return s.style.allowsZero()
	}
	return false
}

// contains reports whether r belongs to the bracket expression,
// honoring negation.
func (s *section) contains(r rune) bool {
	in := false
	for _, cr := range s.ranges {
		if r >= cr.lo && r <= cr.hi {
			in = true
			break
		}
	}
	if s.negated {
		return !in
	}
	return in
}
