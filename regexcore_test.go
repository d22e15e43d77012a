package regexcore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/regexcore/ast"
)

func TestCompileToRAST_ConcreteScenarios(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    *ast.RAST
	}{
		{"atomic", "a", ast.NewAtomic('a')},
		{"concat", "ab", ast.NewBinary(ast.NewAtomic('a'), ast.NewAtomic('b'), ast.Concat)},
		{"alternation", "a|b", ast.NewBinary(ast.NewAtomic('a'), ast.NewAtomic('b'), ast.Alternation)},
		{"kleene closure", "a*", ast.NewUnary(ast.NewAtomic('a'), ast.KleeneClosure)},
		{"times", "a{3}", ast.NewTimes(ast.NewAtomic('a'), 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompileToRAST(tt.pattern)
			require.NoErrorf(t, err, "CompileToRAST(%q)", tt.pattern)
			assert.Equalf(t, tt.want, got, "CompileToRAST(%q)", tt.pattern)
		})
	}
}

func TestCompileToNFA_EntryAcceptAndValid(t *testing.T) {
	patterns := []string{"a", "ab", "a|b", "a*", "a+", "a?", "a{3}", "a{2,4}", "a{0,3}", "a(b|c)*", "[a-z]"}
	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			n, err := CompileToNFA(p)
			require.NoErrorf(t, err, "CompileToNFA(%q)", p)
			assert.Equalf(t, 0, n.Entry(), "Entry() for %q", p)
			assert.Equalf(t, len(n)-1, n.Accept(), "Accept() for %q", p)
			assert.Truef(t, n.Valid(), "Valid() for %q, got %+v", p, n)
		})
	}
}

func TestCompile_RejectedPatterns(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		target  error
	}{
		{"empty pattern", "", ErrEmptyPattern},
		{"unmatched close bracket", "]", ErrLex},
		{"unmatched open bracket", "[", ErrLex},
		{"empty class", "a[]b", ErrEmptyClass},
		{"times zero", "a{0}", ErrSemantic},
		{"minmax not increasing", "a{2,1}", ErrSemantic},
		{"grouped adjacent unary", "(a*)+", ErrSemantic},
		{"trailing backslash", "a\\", ErrLex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompileToNFA(tt.pattern)
			require.Errorf(t, err, "CompileToNFA(%q)", tt.pattern)
			assert.Truef(t, errors.Is(err, tt.target), "CompileToNFA(%q) error = %v, want errors.Is(_, %v)", tt.pattern, err, tt.target)
		})
	}
}

func TestCompile_RejectsNonASCII(t *testing.T) {
	_, err := CompileToNFA("a\xc3\xa9") // UTF-8 encoded 'é', not ASCII
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonASCII))
}

func TestCompile_RejectsAdjacentUnaryWithoutGroup(t *testing.T) {
	_, err := CompileToNFA("a*+")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSemantic))
}

func TestCompile_RepeatTooLargeWithLimits(t *testing.T) {
	limits := DefaultLimits()
	limits.MaxRepeat = 10
	_, err := CompileToNFAWithLimits("a{50}", limits)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRepeatTooLarge))
}

func TestError_CarriesStage(t *testing.T) {
	_, err := CompileToNFA("")
	require.Error(t, err)
	var ce *Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, StageScan, ce.Stage)
}

// FuzzCompile is the native fuzz counterpart to the monkey tests carried
// in token/ and ast/: it exercises the whole pipeline and asserts only
// that it never panics, mirroring original_source's broader fuzz target.
func FuzzCompile(f *testing.F) {
	seeds := []string{
		"a", "ab", "a|b", "a*", "a+", "a?", "a{3}", "a{2,4}", "a{0,3}",
		"(a*)+", "[a-z]", "[^a-z]", ".", "", "]", "[", "a\\", "a{0}",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, pattern string) {
		_, _ = CompileToNFA(pattern)
	})
}
