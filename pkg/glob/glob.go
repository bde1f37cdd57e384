// Package glob matches shell-style wildcard patterns against strings.
//
// Supported syntax:
//
//	c      matches the character c
//	\c     matches the character c, even a metacharacter
//	?      matches any single character except the separator
//	*      matches any run of characters within one path component
//	**     matches any run of characters, separators included
//	[ab]   matches one character from the set
//	[a-z]  matches one character from the range
//	[!ab]  matches one character outside the set ([^ab] works too)
//	@(a|b) matches exactly one of the alternatives
//	?(a|b) matches zero or one of the alternatives
//	+(a|b) matches one or more occurrences of the alternatives
//	*(a|b) matches zero or more occurrences of the alternatives
//	!(a|b) matches text that no alternative matches
//
// Matching is pure text work: a Pattern never touches the filesystem,
// and a Pattern is safe for concurrent use. See the walker package for
// expanding patterns against a directory tree.
package glob

import (
	"errors"
	"fmt"
)

// ErrBadPattern indicates a malformed pattern.
var ErrBadPattern = errors.New("syntax error in pattern")

// Pattern is a compiled glob. It is immutable once compiled.
type Pattern struct {
	src      string
	sections []section
	opts     Options
}

// Compile parses a pattern with the given options. The only errors are
// syntax errors, all wrapping ErrBadPattern.
func Compile(pattern string, opts Options) (*Pattern, error) {
	p := &parser{runes: []rune(pattern)}
	sections, err := p.sequence(false)
	if err != nil {
		return nil, fmt.Errorf("glob: parsing %q: %w", pattern, err)
	}
	return &Pattern{src: pattern, sections: sections, opts: opts}, nil
}

// MustCompile is like Compile but panics on a malformed pattern.
func MustCompile(pattern string, opts Options) *Pattern {
	p, err := Compile(pattern, opts)
	if err != nil {
		panic(err)
	}
	return p
}

// Match compiles pattern with DefaultOptions and matches name against
// it. Callers matching many names against one pattern should compile
// once instead.
func Match(pattern, name string) (bool, error) {
	p, err := Compile(pattern, DefaultOptions())
	if err != nil {
		return false, err
	}
	return p.Match(name), nil
}

// String returns the pattern source text.
func (p *Pattern) String() string { return p.src }

// Options returns the options the pattern was compiled with.
func (p *Pattern) Options() Options { return p.opts }
