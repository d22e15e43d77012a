package ast

import "github.com/coregx/regexcore/internal/rcerror"

// Validate runs a single post-order walk over an RAST, enforcing the
// semantic rules spec §4.4 lists as inconvenient to encode grammatically:
//
//  1. Repetition sanity: Times(n) requires n >= 1; MinMax(m, M) requires
//     m < M.
//  2. No adjacent unary: a Unary node is rejected when its child is itself
//     a Unary node.
func Validate(rast *RAST) error {
	return ValidateWithLimits(rast, rcerror.DefaultLimits())
}

// ValidateWithLimits is Validate with an explicit Limits, additionally
// rejecting Times/MinMax operands above limits.MaxRepeat.
func ValidateWithLimits(rast *RAST, limits rcerror.Limits) error {
	_, err := validate(rast, limits)
	return err
}

// validate returns the node's NodeKind classification alongside any error,
// the way spec §4.4 describes: the classification exists only to let a
// Unary parent check its child's shape, and is not otherwise observable.
func validate(rast *RAST, limits rcerror.Limits) (NodeKind, error) {
	switch rast.Kind {
	case Atomic:
		return Atomic, nil

	case Unary:
		childKind, err := validate(rast.Child, limits)
		if err != nil {
			return 0, err
		}
		if childKind == Unary {
			return 0, rcerror.New(rcerror.StageValidate, rcerror.ErrSemantic, "two unary operators in a row")
		}
		if err := validateRepetition(rast, limits); err != nil {
			return 0, err
		}
		return Unary, nil

	case Binary:
		if _, err := validate(rast.Left, limits); err != nil {
			return 0, err
		}
		if _, err := validate(rast.Right, limits); err != nil {
			return 0, err
		}
		return Binary, nil

	default:
		panic("ast: unreachable NodeKind in validate")
	}
}

func validateRepetition(rast *RAST, limits rcerror.Limits) error {
	switch rast.Op {
	case Times:
		if rast.Min == 0 {
			return rcerror.New(rcerror.StageValidate, rcerror.ErrSemantic, "Times(0) is not allowed, use '?' or omit the repetition")
		}
		if rast.Min > limits.MaxRepeat {
			return rcerror.New(rcerror.StageValidate, rcerror.ErrRepeatTooLarge, "Times(%d) exceeds limit %d", rast.Min, limits.MaxRepeat)
		}
	case MinMax:
		if rast.Min >= rast.Max {
			return rcerror.New(rcerror.StageValidate, rcerror.ErrSemantic, "MinMax(%d, %d) requires min < max", rast.Min, rast.Max)
		}
		if rast.Max > limits.MaxRepeat {
			return rcerror.New(rcerror.StageValidate, rcerror.ErrRepeatTooLarge, "MinMax(%d, %d) exceeds limit %d", rast.Min, rast.Max, limits.MaxRepeat)
		}
	}
	return nil
}
