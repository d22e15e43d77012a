package token

import (
	"fmt"

	"github.com/coregx/regexcore/internal/rcerror"
)

// Kind2 tags the variant of a Tok2 value. It is the same vocabulary as
// Kind1 minus Set1/InverseSet1/Wildcard1 (erased by Simplify), plus Concat2
// (inserted by Simplify).
type Kind2 uint8

const (
	Character2 Kind2 = iota
	MinMax2
	Times2
	Concat2
	Alternation2
	KleeneClosure2
	Question2
	Plus2
	LParen2
	RParen2
)

// String returns a human-readable tag name.
func (k Kind2) String() string {
	switch k {
	case Character2:
		return "Character"
	case MinMax2:
		return "MinMax"
	case Times2:
		return "Times"
	case Concat2:
		return "Concat"
	case Alternation2:
		return "Alternation"
	case KleeneClosure2:
		return "KleenClosure"
	case Question2:
		return "Question"
	case Plus2:
		return "Plus"
	case LParen2:
		return "LParen"
	case RParen2:
		return "RParen"
	default:
		return fmt.Sprintf("Kind2(%d)", k)
	}
}

// Tok2 is one token of the simplifier's output stream.
type Tok2 struct {
	Kind Kind2
	Byte byte  // Character2
	Min  uint8 // MinMax2 (min), Times2 (n)
	Max  uint8 // MinMax2 (max)
}

func char2(b byte) Tok2           { return Tok2{Kind: Character2, Byte: b} }
func minMax2(min, max uint8) Tok2 { return Tok2{Kind: MinMax2, Min: min, Max: max} }
func times2(n uint8) Tok2         { return Tok2{Kind: Times2, Min: n} }
func simple2(k Kind2) Tok2        { return Tok2{Kind: k} }

// leftAtom is the set of Tok2 kinds that can stand to the left of an
// implied concatenation, per spec §4.2 pass B.
var leftAtom = map[Kind2]bool{
	Character2:     true,
	MinMax2:        true,
	Times2:         true,
	KleeneClosure2: true,
	Question2:      true,
	Plus2:          true,
	RParen2:        true,
}

// rightAtom is the set of Tok2 kinds that can stand to the right of an
// implied concatenation.
var rightAtom = map[Kind2]bool{
	Character2: true,
	LParen2:    true,
}

// Simplify transforms a Tok1 stream into a Tok2 stream in two passes: first
// erasing Set/InverseSet/Wildcard into explicit alternations, then walking
// left to right to insert an explicit Concat operator between adjacent
// operands where juxtaposition used to imply concatenation.
func Simplify(tokens []Tok1) ([]Tok2, error) {
	return SimplifyWithLimits(tokens, rcerror.DefaultLimits())
}

// SimplifyWithLimits is Simplify with an explicit Limits value (currently
// unused by this stage, accepted for symmetry with ScanWithLimits and
// ValidateWithLimits, which receive the same Limits in CompileToRASTWithLimits).
func SimplifyWithLimits(tokens []Tok1, _ rcerror.Limits) ([]Tok2, error) {
	lowered, err := lowerClasses(tokens)
	if err != nil {
		return nil, err
	}
	return insertConcat(lowered), nil
}

// lowerClasses is pass A: rewrite Set/InverseSet/Wildcard into an explicit
// parenthesized alternation of their member bytes.
func lowerClasses(tokens []Tok1) ([]Tok2, error) {
	out := make([]Tok2, 0, len(tokens))
	for _, t := range tokens {
		switch t.Kind {
		case Set1:
			expanded, err := expandClass(t.Chars)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)
		case InverseSet1:
			expanded, err := expandClass(invertClass(t.Chars))
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)
		case Wildcard1:
			full := make(ByteSet, maxASCII+1)
			for b := 0; b <= maxASCII; b++ {
				full.Insert(byte(b))
			}
			expanded, err := expandClass(full)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)
		case Character1:
			out = append(out, char2(t.Byte))
		case MinMax1:
			out = append(out, minMax2(t.Min, t.Max))
		case Times1:
			out = append(out, times2(t.Min))
		case Alternation1:
			out = append(out, simple2(Alternation2))
		case KleeneClosure1:
			out = append(out, simple2(KleeneClosure2))
		case Question1:
			out = append(out, simple2(Question2))
		case Plus1:
			out = append(out, simple2(Plus2))
		case LParen1:
			out = append(out, simple2(LParen2))
		case RParen1:
			out = append(out, simple2(RParen2))
		default:
			panic(fmt.Sprintf("token: unreachable Tok1 kind %v", t.Kind))
		}
	}
	return out, nil
}

// invertClass returns the complement of set within 0..=maxASCII.
func invertClass(set ByteSet) ByteSet {
	inverted := make(ByteSet)
	for b := 0; b <= maxASCII; b++ {
		if !set.Contains(byte(b)) {
			inverted.Insert(byte(b))
		}
	}
	return inverted
}

// expandClass rewrites a byte set into LParen, b1, Alternation, b2, ...,
// bk, RParen. Iteration over the set is Go's unspecified map order, which
// mirrors the original implementation's reliance on hash-set iteration
// order: callers must treat the branch order as arbitrary.
func expandClass(set ByteSet) ([]Tok2, error) {
	if len(set) == 0 {
		return nil, rcerror.New(rcerror.StageSimplify, rcerror.ErrEmptyClass, "character class has no members")
	}
	out := make([]Tok2, 0, len(set)*2+1)
	out = append(out, simple2(LParen2))
	first := true
	for b := range set {
		if !first {
			out = append(out, simple2(Alternation2))
		}
		out = append(out, char2(b))
		first = false
	}
	out = append(out, simple2(RParen2))
	return out, nil
}

// insertConcat is pass B: walk left to right, inserting an explicit Concat
// between every adjacent (leftAtom, rightAtom) pair.
func insertConcat(tokens []Tok2) []Tok2 {
	if len(tokens) < 2 {
		return tokens
	}
	out := make([]Tok2, 0, len(tokens)+len(tokens)/2)
	out = append(out, tokens[0])
	for i := 1; i < len(tokens); i++ {
		prev := tokens[i-1]
		cur := tokens[i]
		if leftAtom[prev.Kind] && rightAtom[cur.Kind] {
			out = append(out, simple2(Concat2))
		}
		out = append(out, cur)
	}
	return out
}
