package glob

// Options control how wildcards interact with path boundaries and
// dot-files. The zero value treats the candidate as flat text: no
// separator, wildcards cross everything, periods are ordinary.
type Options struct {
	// Separator is the path separator character. When non-zero, ? and *
	// never match it and ** becomes the only way to cross component
	// boundaries. Zero disables all component awareness.
	Separator rune

	// MatchLeadingDirectories declares a match as soon as the whole
	// pattern is consumed and the next character of the candidate is the
	// separator, so "a/b" matches "a/b/c". It also disables matching
	// from the back of the candidate.
	MatchLeadingDirectories bool

	// RequireLiteralLeadingPeriod hides dot-files from wildcards: a
	// period at the start of the candidate, or right after a separator,
	// is only matched by a literal period in the pattern. This is
	// fnmatch's FNM_PERIOD.
	RequireLiteralLeadingPeriod bool
}

// DefaultOptions are the options used for path matching: forward-slash
// separator, full matches only, dot-files visible.
func DefaultOptions() Options {
	return Options{Separator: '/'}
}

// hidesLeadingPeriod reports whether r is a component-leading period
// that only a literal period may match. atStart tracks whether the
// current position begins a component.
func (o Options) hidesLeadingPeriod(r rune, atStart bool) bool {
	return o.RequireLiteralLeadingPeriod && atStart && r == '.'
}
