package glob

import "unicode/utf8"

// view is a window into a candidate string. The backing string is kept
// around so the character just before the window can be inspected, for
// example to decide whether the window starts a path component after a
// zero-width group match.
type view struct {
	s          string
	start, end int
}

func newView(s string) view {
	return view{s: s, end: len(s)}
}

func (v view) empty() bool {
	return v.start >= v.end
}

func (v view) str() string {
	return v.s[v.start:v.end]
}

// first decodes the rune at the start of the window.
func (v view) first() (rune, int) {
	return utf8.DecodeRuneInString(v.s[v.start:v.end])
}

// last decodes the rune at the end of the window and returns it with
// its byte offset in the backing string.
func (v view) last() (rune, int) {
	r, n := utf8.DecodeLastRuneInString(v.s[v.start:v.end])
	return r, v.end - n
}

// advance moves the window start n bytes forward.
func (v view) advance(n int) view {
	v.start += n
	return v
}

// truncate moves the window end back to byte offset idx.
func (v view) truncate(idx int) view {
	v.end = idx
	return v
}

// consumeAll moves the window start to its end.
func (v view) consumeAll() view {
	v.start = v.end
	return v
}

// dropPrefix removes an exact leading literal. It reports failure
// instead of faulting when the literal is absent.
func (v view) dropPrefix(lit string) (view, bool) {
	if len(lit) > v.end-v.start || v.s[v.start:v.start+len(lit)] != lit {
		return view{}, false
	}
	v.start += len(lit)
	return v, true
}

// dropSuffix removes an exact trailing literal.
func (v view) dropSuffix(lit string) (view, bool) {
	if len(lit) > v.end-v.start || v.s[v.end-len(lit):v.end] != lit {
		return view{}, false
	}
	v.end -= len(lit)
	return v, true
}

// previous decodes the rune immediately before the window start. The
// second result is false at the start of the backing string.
func (v view) previous() (rune, bool) {
	if v.start == 0 {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(v.s[:v.start])
	return r, true
}

// atComponentStart reports whether the window begins the backing
// string or sits right after a separator.
func (v view) atComponentStart(sep rune) bool {
	r, ok := v.previous()
	if !ok {
		return true
	}
	return sep != 0 && r == sep
}
