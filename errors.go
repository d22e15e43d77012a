// Package regexcore provides a small regular-expression compiler: a pipeline
// that accepts a human-written pattern over ASCII bytes and produces a
// nondeterministic finite automaton (NFA) suitable for matching.
//
// The pipeline has four stages, each with its own intermediate
// representation: scan, simplify, parse, and lower. A validation pass runs
// between parse and lower to enforce semantic rules the grammar does not
// encode. Each stage lives in its own package (token, ast, nfa) so it can be
// exercised independently of the others; this file and regexcore.go glue
// them into the two top-level entry points, CompileToRAST and CompileToNFA.
//
// regexcore matches ASCII bytes only. It does not implement Unicode
// matching, back-references, capture groups, lookaround, lazy quantifiers,
// or matching execution itself — the NFA this package produces is meant to
// be consumed by a separate matcher.
package regexcore

import "github.com/coregx/regexcore/internal/rcerror"

// Stage identifies which pipeline pass produced an Error.
type Stage = rcerror.Stage

// Pipeline stages, in the order a compile walks through them.
const (
	StageScan     = rcerror.StageScan
	StageSimplify = rcerror.StageSimplify
	StageParse    = rcerror.StageParse
	StageValidate = rcerror.StageValidate
	StageLower    = rcerror.StageLower
)

// Error is the single error kind the pipeline returns. It carries a
// free-form message, the stage that produced it, and an optional byte
// offset into the pattern where the failure was detected. Offset is -1
// when no stage-local position is available.
//
// Error satisfies the standard error interface and wraps one of the
// package's sentinel errors, so both message-for-humans and
// classify-programmatically use cases are served from one type — the same
// shape the teacher's CompileError/BuildError pair uses around a common
// "message plus context" core.
type Error = rcerror.Error

// Sentinel errors for the taxonomy described in spec §7. Stage errors wrap
// one of these so callers can classify a failure with errors.Is without
// string matching, the way the teacher's nfa package declares
// ErrInvalidState, ErrInvalidPattern, etc. as package-level sentinels.
var (
	// ErrNonASCII is returned when the pattern contains a byte >= 0x80.
	ErrNonASCII = rcerror.ErrNonASCII

	// ErrEmptyPattern is returned for the empty pattern string.
	ErrEmptyPattern = rcerror.ErrEmptyPattern

	// ErrLex covers trailing backslash, unclosed {/[, illegal {} body, and
	// out-of-range {} numbers.
	ErrLex = rcerror.ErrLex

	// ErrEmptyClass is returned when a class (possibly after inversion)
	// contains no bytes.
	ErrEmptyClass = rcerror.ErrEmptyClass

	// ErrParse covers unexpected tokens, a missing ')', and trailing
	// tokens after a complete parse.
	ErrParse = rcerror.ErrParse

	// ErrSemantic covers adjacent unary operators, Times(0), and
	// MinMax(m, M) with m >= M.
	ErrSemantic = rcerror.ErrSemantic

	// ErrTooLong is returned when a pattern exceeds Limits.MaxPatternLength.
	ErrTooLong = rcerror.ErrTooLong

	// ErrRepeatTooLarge is returned when a Times/MinMax operand exceeds
	// Limits.MaxRepeat.
	ErrRepeatTooLarge = rcerror.ErrRepeatTooLarge
)

// Limits bounds the pipeline's resource usage, the way the teacher's
// CompilerConfig.MaxRecursionDepth bounds NFA compilation recursion.
//
// The spec's data model already bounds repetition counts to a byte
// (0-255) and class expansion to 127 bytes; Limits exists so callers can
// tighten those bounds further for untrusted input without changing the
// wire format of Tok1/Tok2/RAST.
type Limits = rcerror.Limits

// DefaultLimits returns the limits regexcore uses when no explicit Limits
// is supplied: no pattern-length cap, and the full 0-255 repetition range.
func DefaultLimits() Limits {
	return rcerror.DefaultLimits()
}
