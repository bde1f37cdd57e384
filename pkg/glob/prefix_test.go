package glob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// prefix runs the prefix matcher over a compiled pattern and returns
// the remainder text.
func prefix(t *testing.T, pattern, name string, opts Options) (string, bool) {
	t.Helper()
	p, err := Compile(pattern, opts)
	require.NoError(t, err)
	rem, ok := matchPrefix(p.sections, newView(name), p.opts, true)
	if !ok {
		return "", false
	}
	return rem.str(), true
}

func TestPrefixConsumesFromTheFront(t *testing.T) {
	assert := assert.New(t)

	rem, ok := prefix(t, "ab", "abcd", DefaultOptions())
	assert.True(ok)
	assert.Equal("cd", rem)

	_, ok = prefix(t, "ab", "xbcd", DefaultOptions())
	assert.False(ok)

	// The component wildcard is lazy here: it extends only when the
	// following sections fail.
	rem, ok = prefix(t, "*x", "xyx", DefaultOptions())
	assert.True(ok)
	assert.Equal("yx", rem)
}

func TestPrefixRepetition(t *testing.T) {
	assert := assert.New(t)

	rem, ok := prefix(t, "+(ab)", "ababx", DefaultOptions())
	assert.True(ok)
	assert.Equal("x", rem)

	rem, ok = prefix(t, "*(ab)", "x", DefaultOptions())
	assert.True(ok)
	assert.Equal("x", rem)

	_, ok = prefix(t, "+(ab)", "x", DefaultOptions())
	assert.False(ok)
}

func TestPrefixNegatedGroup(t *testing.T) {
	assert := assert.New(t)

	// A trailing negated group swallows the rest of the component when
	// no alternative matches a prefix, and fails when one does.
	rem, ok := prefix(t, "!(foo|bar)", "baz", DefaultOptions())
	assert.True(ok)
	assert.Equal("", rem)

	rem, ok = prefix(t, "!(foo|bar)", "baz/qux", DefaultOptions())
	assert.True(ok)
	assert.Equal("/qux", rem)

	_, ok = prefix(t, "!(foo|bar)", "foo", DefaultOptions())
	assert.False(ok)

	_, ok = prefix(t, "!(foo|bar)", "bar", DefaultOptions())
	assert.False(ok)

	rem, ok = prefix(t, "!(foo|bar)", "", DefaultOptions())
	assert.True(ok)
	assert.Equal("", rem)

	// With sections following, the group only asserts and consumes
	// nothing itself.
	rem, ok = prefix(t, "!(b)a", "ax", DefaultOptions())
	assert.True(ok)
	assert.Equal("x", rem)
}

func TestPrefixZeroWidthGuard(t *testing.T) {
	assert := assert.New(t)

	// A group whose alternative is empty must not recurse forever; the
	// guard stops the repetition with nothing consumed.
	rem, ok := prefix(t, "*()", "abc", DefaultOptions())
	assert.True(ok)
	assert.Equal("abc", rem)

	rem, ok = prefix(t, "*(?(x))", "abc", DefaultOptions())
	assert.True(ok)
	assert.Equal("abc", rem)
}

func TestPrefixSoleWildcardIsGreedy(t *testing.T) {
	assert := assert.New(t)

	// With nothing following, * takes the rest of the component and **
	// takes everything.
	rem, ok := prefix(t, "*", "ab/cd", DefaultOptions())
	assert.True(ok)
	assert.Equal("/cd", rem)

	rem, ok = prefix(t, "**", "ab/cd", DefaultOptions())
	assert.True(ok)
	assert.Equal("", rem)
}

func TestPrefixGroupWithTrailingSections(t *testing.T) {
	assert := assert.New(t)

	// Alternatives are tried together with the sections after the
	// group, so a wildcard inside the group backtracks against them.
	rem, ok := prefix(t, "@(a*)b", "axb", DefaultOptions())
	assert.True(ok)
	assert.Equal("", rem)

	_, ok = prefix(t, "@(a*)b", "xb", DefaultOptions())
	assert.False(ok)
}
