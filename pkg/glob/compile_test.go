package glob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileErrors(t *testing.T) {
	assert := assert.New(t)

	for _, pattern := range []string{
		"[",
		"[]",
		"[abc",
		"[a-",
		"[z-a]",
		"@(a",
		"@(a|b",
		"+(",
		"!(x|@(y)",
		`a\`,
		`[a\`,
	} {
		_, err := Compile(pattern, DefaultOptions())
		assert.ErrorIs(err, ErrBadPattern, "pattern %q", pattern)
	}
}

func TestCompileValid(t *testing.T) {
	assert := assert.New(t)

	for _, pattern := range []string{
		"",
		"plain text",
		"*.txt",
		"**/vendor/*",
		"a?[b-d]e",
		"@(foo|bar)",
		"!(a|b|c)",
		"+(x*y)",
		"*(@(a)|?(b))",
		"[]]",
		"[!]]",
		"@a+b!c",
		`\@(not-a-group)`,
	} {
		p, err := Compile(pattern, DefaultOptions())
		require.NoError(t, err, "pattern %q", pattern)
		assert.Equal(pattern, p.String())
	}
}

func TestCompileStarRuns(t *testing.T) {
	assert := assert.New(t)

	// One star stops at separators, two or more cross them.
	p := MustCompile("***", DefaultOptions())
	assert.True(p.Match("a/b"))

	// A star run followed by '(' gives its last star to the group.
	p = MustCompile("**(ab)", DefaultOptions())
	assert.True(p.Match("x"))
	assert.True(p.Match("xabab"))
	assert.False(p.Match("x/y"))
}

func TestCompileGroupStyles(t *testing.T) {
	assert := assert.New(t)

	p := MustCompile("@(a)?(b)+(c)*(d)!(e)", DefaultOptions())
	require.Len(t, p.sections, 5)
	assert.Equal(ExactlyOne, p.sections[0].style)
	assert.Equal(ZeroOrOne, p.sections[1].style)
	assert.Equal(OneOrMore, p.sections[2].style)
	assert.Equal(ZeroOrMore, p.sections[3].style)
	assert.Equal(NegatedOne, p.sections[4].style)
}

func TestCompileMergesLiterals(t *testing.T) {
	assert := assert.New(t)

	p := MustCompile(`ab\*cd`, DefaultOptions())
	require.Len(t, p.sections, 1)
	assert.Equal(kindConstant, p.sections[0].kind)
	assert.Equal("ab*cd", p.sections[0].text)
}

func TestMustCompilePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustCompile("[oops", DefaultOptions())
	})
}

func TestPackageLevelMatch(t *testing.T) {
	assert := assert.New(t)

	ok, err := Match("*.go", "main.go")
	assert.NoError(err)
	assert.True(ok)

	ok, err = Match("*.go", "pkg/main.go")
	assert.NoError(err)
	assert.False(ok)

	_, err = Match("[bad", "anything")
	assert.ErrorIs(err, ErrBadPattern)
}

func TestOptionsAccessor(t *testing.T) {
	assert := assert.New(t)

	opts := Options{Separator: '.', RequireLiteralLeadingPeriod: true}
	p := MustCompile("*", opts)
	assert.Equal(opts, p.Options())
}
