package glob

import "strings"

// matchPrefix consumes sections from the front of the window and
// returns the unconsumed remainder. It only ever works front-to-back;
// it exists to realize extended-glob groups, whose alternatives are
// tried as "the alternative's sections followed by whatever comes
// after the group".
func matchPrefix(secs []section, v view, o Options, atStart bool) (view, bool) {
	if len(secs) == 0 {
		return v, true
	}
	if v.empty() {
		for i := range secs {
			if !secs[i].matchesEmpty() {
				return view{}, false
			}
		}
		return v, true
	}

	head := &secs[0]
	switch head.kind {
	case kindConstant:
		rest, ok := v.dropPrefix(head.text)
		if !ok {
			return view{}, false
		}
		return matchPrefix(secs[1:], rest, o, rest.atComponentStart(o.Separator))

	case kindSingle:
		r, n := v.first()
		if o.Separator != 0 && r == o.Separator {
			return view{}, false
		}
		if o.hidesLeadingPeriod(r, atStart) {
			return view{}, false
		}
		return matchPrefix(secs[1:], v.advance(n), o, false)

	case kindOneOf:
		r, n := v.first()
		if o.hidesLeadingPeriod(r, atStart) {
			return view{}, false
		}
		if !head.contains(r) {
			return view{}, false
		}
		return matchPrefix(secs[1:], v.advance(n), o, o.Separator != 0 && r == o.Separator)

	case kindComponentWildcard:
		r, n := v.first()
		if o.hidesLeadingPeriod(r, atStart) {
			return view{}, false
		}
		if len(secs) == 1 {
			// Nothing follows anywhere, so take the rest of the
			// component.
			if o.Separator != 0 {
				if i := strings.IndexRune(v.str(), o.Separator); i >= 0 {
					return v.advance(i), true
				}
			}
			return v.consumeAll(), true
		}
		if rem, ok := matchPrefix(secs[1:], v, o, atStart); ok {
			return rem, true
		}
		if o.Separator != 0 && r == o.Separator {
			return view{}, false
		}
		return matchPrefix(secs, v.advance(n), o, false)

	case kindPathWildcard:
		if len(secs) == 1 {
			return v.consumeAll(), true
		}
		r, n := v.first()
		if o.hidesLeadingPeriod(r, atStart) {
			return view{}, false
		}
		if rem, ok := matchPrefix(secs[1:], v, o, atStart); ok {
			return rem, true
		}
		return matchPrefix(secs, v.advance(n), o, o.Separator != 0 && r == o.Separator)

	case kindPatternList:
		return matchGroup(head, secs[1:], v, o, atStart)
	}
	return view{}, false
}

// matchGroup realizes one extended-glob group. rest is the section
// sequence following the group.
func matchGroup(g *section, rest []section, v view, o Options, atStart bool) (view, bool) {
	for _, alt := range g.alts {
		seq := make([]section, 0, len(alt)+len(rest))
		seq = append(seq, alt...)
		seq = append(seq, rest...)

		rem, ok := matchPrefix(seq, v, o, atStart)
		if !ok {
			continue
		}
		// An alternative that consumed nothing ends the repetition
		// right here, or a group with an empty alternative would
		// recurse forever.
		if rem.start == v.start {
			return rem, true
		}
		switch g.style {
		case NegatedOne:
			// The group asserts the window must not begin with any
			// alternative.
			return view{}, false
		case OneOrMore, ZeroOrMore:
			// One occurrence down; re-attempt the group as zero-or-more
			// against the remainder.
			repeat := *g
			repeat.style = ZeroOrMore
			return matchPrefix([]section{repeat}, rem, o, rem.atComponentStart(o.Separator))
		default:
			return rem, true
		}
	}
	if g.style.allowsZero() {
		if g.style == NegatedOne && len(rest) == 0 && !v.empty() {
			// No alternative matches here and nothing follows, so the
			// group swallows the rest of the component.
			r, _ := v.first()
			if o.hidesLeadingPeriod(r, atStart) {
				return view{}, false
			}
			if o.Separator != 0 {
				if i := strings.IndexRune(v.str(), o.Separator); i >= 0 {
					return v.advance(i), true
				}
			}
			return v.consumeAll(), true
		}
		return matchPrefix(rest, v, o, atStart)
	}
	return view{}, false
}
