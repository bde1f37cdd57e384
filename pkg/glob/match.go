package glob

import (
	"strings"
	"unicode/utf8"
)

// Match reports whether name satisfies the pattern. The result is a
// plain yes or no; malformed patterns cannot reach this point.
func (p *Pattern) Match(name string) bool {
	return matchAll(p.sections, newView(name), p.opts, true)
}

// matchAll tests the whole window against the whole section sequence.
// It scans from both ends: simple sections are peeled off the front or
// the back before a wildcard at the front resorts to backtracking.
// atStart tracks whether the window start begins a path component.
func matchAll(secs []section, v view, o Options, atStart bool) bool {
	if len(secs) == 0 {
		if v.empty() {
			return true
		}
		if o.MatchLeadingDirectories && o.Separator != 0 {
			r, _ := v.first()
			return r == o.Separator
		}
		return false
	}
	if v.empty() {
		for i := range secs {
			if !secs[i].matchesEmpty() {
				return false
			}
		}
		return true
	}

	head := &secs[0]
	switch head.kind {
	case kindConstant:
		rest, ok := v.dropPrefix(head.text)
		if !ok {
			return false
		}
		last, _ := utf8.DecodeLastRuneInString(head.text)
		return matchAll(secs[1:], rest, o, o.Separator != 0 && last == o.Separator)

	case kindSingle:
		r, n := v.first()
		if o.Separator != 0 && r == o.Separator {
			return false
		}
		if o.hidesLeadingPeriod(r, atStart) {
			return false
		}
		return matchAll(secs[1:], v.advance(n), o, false)

	case kindOneOf:
		r, n := v.first()
		if o.hidesLeadingPeriod(r, atStart) {
			return false
		}
		if !head.contains(r) {
			return false
		}
		return matchAll(secs[1:], v.advance(n), o, o.Separator != 0 && r == o.Separator)
	}

	// The front section would need backtracking. Peeling simple
	// sections off the tail first keeps patterns like "*.txt" linear.
	// Matching a leading portion only makes sense front-to-back, so
	// leading-directory mode never looks at the tail.
	if !o.MatchLeadingDirectories && len(secs) > 1 {
		tail := &secs[len(secs)-1]
		switch tail.kind {
		case kindConstant:
			rest, ok := v.dropSuffix(tail.text)
			if !ok {
				return false
			}
			return matchAll(secs[:len(secs)-1], rest, o, atStart)

		case kindSingle:
			r, idx := v.last()
			if o.Separator != 0 && r == o.Separator {
				return false
			}
			if periodStartsComponent(o, v.s, idx, r) {
				return false
			}
			return matchAll(secs[:len(secs)-1], v.truncate(idx), o, atStart)

		case kindOneOf:
			r, idx := v.last()
			if periodStartsComponent(o, v.s, idx, r) {
				return false
			}
			if !tail.contains(r) {
				return false
			}
			return matchAll(secs[:len(secs)-1], v.truncate(idx), o, atStart)
		}
	}

	if head.kind == kindComponentWildcard {
		r, n := v.first()
		if o.hidesLeadingPeriod(r, atStart) {
			return false
		}
		if len(secs) == 1 {
			if o.Separator == 0 || o.MatchLeadingDirectories {
				return true
			}
			return !strings.ContainsRune(v.str(), o.Separator)
		}
		// Zero-width first; on failure consume one character and retry.
		if matchAll(secs[1:], v, o, atStart) {
			return true
		}
		if o.Separator != 0 && r == o.Separator {
			return false
		}
		return matchAll(secs, v.advance(n), o, false)
	}

	// Same backtracking from the tail, consuming backwards.
	if !o.MatchLeadingDirectories && len(secs) > 1 && secs[len(secs)-1].kind == kindComponentWildcard {
		r, idx := v.last()
		if periodStartsComponent(o, v.s, idx, r) {
			return false
		}
		if matchAll(secs[:len(secs)-1], v, o, atStart) {
			return true
		}
		if o.Separator != 0 && r == o.Separator {
			return false
		}
		return matchAll(secs, v.truncate(idx), o, atStart)
	}

	switch head.kind {
	case kindPathWildcard:
		if len(secs) == 1 {
			return true
		}
		r, n := v.first()
		if o.hidesLeadingPeriod(r, atStart) {
			return false
		}
		if matchAll(secs[1:], v, o, atStart) {
			return true
		}
		return matchAll(secs, v.advance(n), o, o.Separator != 0 && r == o.Separator)

	case kindPatternList:
		rem, ok := matchPrefix(secs, v, o, atStart)
		return ok && rem.empty()
	}
	return false
}

// periodStartsComponent is the tail-side mirror of the leading-period
// test: the rune r at byte offset idx of s begins a component.
func periodStartsComponent(o Options, s string, idx int, r rune) bool {
	if !o.RequireLiteralLeadingPeriod || r != '.' {
		return false
	}
	if idx == 0 {
		return true
	}
	if o.Separator == 0 {
		return false
	}
	prev, _ := utf8.DecodeLastRuneInString(s[:idx])
	return prev == o.Separator
}
