// Package rcerror holds the error type and sentinel taxonomy shared by
// every pipeline stage (token, ast, nfa) plus the root regexcore package,
// which re-exports these names as part of its public API. Keeping the
// shared type in an internal package avoids the stage packages importing
// the root package just to construct an error.
package rcerror

import "fmt"

// Stage identifies which pipeline pass produced an Error.
type Stage uint8

const (
	// StageScan is the lexical scanner (pattern -> token.Tok1).
	StageScan Stage = iota
	// StageSimplify is the class/wildcard lowering and concat-insertion pass.
	StageSimplify
	// StageParse is the recursive-descent parser (token.Tok2 -> ast.RAST).
	StageParse
	// StageValidate is the post-order semantic walk over the RAST.
	StageValidate
	// StageLower is the Thompson construction (ast.RAST -> nfa.NFA).
	StageLower
)

// String returns a human-readable name for the stage.
func (s Stage) String() string {
	switch s {
	case StageScan:
		return "scan"
	case StageSimplify:
		return "simplify"
	case StageParse:
		return "parse"
	case StageValidate:
		return "validate"
	case StageLower:
		return "lower"
	default:
		return fmt.Sprintf("Stage(%d)", s)
	}
}

// Sentinel errors for the taxonomy described in spec §7. Stage errors wrap
// one of these so callers can classify a failure with errors.Is without
// string matching, the way the teacher's nfa package declares
// ErrInvalidState, ErrInvalidPattern, etc. as package-level sentinels.
var (
	// ErrNonASCII is returned when the pattern contains a byte >= 0x80.
	ErrNonASCII = fmt.Errorf("pattern is not ASCII")

	// ErrEmptyPattern is returned for the empty pattern string.
	ErrEmptyPattern = fmt.Errorf("pattern is empty")

	// ErrLex covers trailing backslash, unclosed {/[, illegal {} body, and
	// out-of-range {} numbers.
	ErrLex = fmt.Errorf("lexical error")

	// ErrEmptyClass is returned when a class (possibly after inversion)
	// contains no bytes.
	ErrEmptyClass = fmt.Errorf("character class is empty")

	// ErrParse covers unexpected tokens, a missing ')', and trailing
	// tokens after a complete parse.
	ErrParse = fmt.Errorf("parse error")

	// ErrSemantic covers adjacent unary operators, Times(0), and
	// MinMax(m, M) with m >= M.
	ErrSemantic = fmt.Errorf("semantic error")

	// ErrTooLong is returned when a pattern exceeds Limits.MaxPatternLength.
	ErrTooLong = fmt.Errorf("pattern exceeds configured length limit")

	// ErrRepeatTooLarge is returned when a Times/MinMax operand exceeds
	// Limits.MaxRepeat.
	ErrRepeatTooLarge = fmt.Errorf("repetition count exceeds configured limit")
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
type Error struct {
	Stage   Stage
	Offset  int
	Message string
	err     error // sentinel this Error wraps, for errors.Is/errors.As
}

// New builds an Error for the given stage and sentinel, with offset -1
// (no position hint).
func New(stage Stage, sentinel error, format string, args ...any) *Error {
	return &Error{
		Stage:   stage,
		Offset:  -1,
		Message: fmt.Sprintf(format, args...),
		err:     sentinel,
	}
}

// NewAt builds an Error tagged with the byte offset where it was detected.
func NewAt(stage Stage, sentinel error, offset int, format string, args ...any) *Error {
	return &Error{
		Stage:   stage,
		Offset:  offset,
		Message: fmt.Sprintf(format, args...),
		err:     sentinel,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("regexcore: %s: %s (at byte %d)", e.Stage, e.Message, e.Offset)
	}
	return fmt.Sprintf("regexcore: %s: %s", e.Stage, e.Message)
}

// Unwrap returns the sentinel error this Error classifies as, so
// errors.Is(err, ErrLex) and similar checks work against a returned *Error.
func (e *Error) Unwrap() error {
	return e.err
}

// Limits bounds the pipeline's resource usage, the way the teacher's
// CompilerConfig.MaxRecursionDepth bounds NFA compilation recursion.
//
// The spec's data model already bounds repetition counts to a byte
// (0-255) and class expansion to 127 bytes; Limits exists so callers can
// tighten those bounds further for untrusted input without changing the
// wire format of Tok1/Tok2/RAST.
type Limits struct {
	// MaxPatternLength caps the number of bytes accepted by Scan. Zero
	// means unbounded.
	MaxPatternLength int

	// MaxRepeat caps the min/max operands of Times and MinMax. It can
	// only tighten the implicit 255 ceiling the u8 fields already impose,
	// never loosen it.
	MaxRepeat uint8
}

// DefaultLimits returns the limits regexcore uses when no explicit Limits
// is supplied: no pattern-length cap, and the full 0-255 repetition range.
func DefaultLimits() Limits {
	return Limits{
		MaxPatternLength: 0,
		MaxRepeat:        255,
	}
}
