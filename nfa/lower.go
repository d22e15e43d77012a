package nfa

import (
	"fmt"

	"github.com/coregx/regexcore/ast"
)

// Lower runs the Thompson construction from spec §4.5 over a validated
// RAST, producing a flat NFA. The RAST is assumed to have already passed
// ast.Validate: this stage cannot fail (spec §4.5, "Failure: none").
//
// Each case below is a direct transcription of the per-node construction
// table, using Builder's splice/emitEpsilon/addEpsilonEdge contracts so the
// code reads the same shape as the spec's table.
func Lower(rast *ast.RAST) NFA {
	switch rast.Kind {
	case ast.Atomic:
		return NFA{Character(rast.Byte, 1), Epsilon()}
	case ast.Binary:
		return lowerBinary(rast)
	case ast.Unary:
		return lowerUnary(rast)
	default:
		panic(fmt.Sprintf("nfa: unreachable ast.NodeKind %v", rast.Kind))
	}
}

func lowerBinary(rast *ast.RAST) NFA {
	b := NewBuilder()
	switch rast.BinOp {
	case ast.Concat:
		left := b.Splice(Lower(rast.Left))
		right := b.Splice(Lower(rast.Right))
		b.AddEpsilonEdge(left.Last, right.First)

	case ast.Alternation:
		start := b.EmitEpsilon()
		left := b.Splice(Lower(rast.Left))
		right := b.Splice(Lower(rast.Right))
		end := b.EmitEpsilon()
		b.AddEpsilonEdge(start, left.First)
		b.AddEpsilonEdge(start, right.First)
		b.AddEpsilonEdge(left.Last, end)
		b.AddEpsilonEdge(right.Last, end)

	default:
		panic(fmt.Sprintf("nfa: unreachable ast.BinaryOp %v", rast.BinOp))
	}
	return b.NFA()
}

func lowerUnary(rast *ast.RAST) NFA {
	b := NewBuilder()
	middle := Lower(rast.Child)

	switch rast.Op {
	case ast.KleeneClosure:
		start := b.EmitEpsilon()
		mid := b.Splice(middle)
		end := b.EmitEpsilon(start)
		b.AddEpsilonEdge(start, mid.First)
		b.AddEpsilonEdge(start, end)
		b.AddEpsilonEdge(mid.Last, end)

	case ast.Question:
		start := b.EmitEpsilon()
		mid := b.Splice(middle)
		end := b.EmitEpsilon()
		b.AddEpsilonEdge(start, mid.First)
		b.AddEpsilonEdge(start, end)
		b.AddEpsilonEdge(mid.Last, end)

	case ast.Plus:
		first := b.Splice(middle)
		start := b.EmitEpsilon()
		b.AddEpsilonEdge(first.Last, start)
		second := b.Splice(middle)
		end := b.EmitEpsilon(start)
		b.AddEpsilonEdge(start, second.First)
		b.AddEpsilonEdge(start, end)
		b.AddEpsilonEdge(second.Last, end)

	case ast.Times:
		at := b.Splice(middle)
		for i := uint8(1); i < rast.Min; i++ {
			next := b.Splice(middle)
			b.AddEpsilonEdge(at.Last, next.First)
			at = next
		}

	case ast.MinMax:
		lowerMinMax(b, middle, rast.Min, rast.Max)

	default:
		panic(fmt.Sprintf("nfa: unreachable ast.UnaryOp %v", rast.Op))
	}
	return b.NFA()
}

// lowerMinMax builds m mandatory copies of middle chained by epsilons,
// followed by M-m optional copies whose entry also gets a direct epsilon
// edge to the final accept node, so the automaton accepts between m and M
// repetitions (spec §4.5's MinMax row, §9's "MinMax(0,k)" open-question
// decision).
//
// A bare marker Epsilon([]) node is always emitted first (even when m == 0,
// unlike Times): it is the automaton's entry, and when m == 0 it also ends
// up in the set of nodes wired directly to the accept state, letting the
// automaton accept zero repetitions.
func lowerMinMax(b *Builder, middle NFA, min, max uint8) {
	entry := b.EmitEpsilon()
	at := Range{First: entry, Last: entry}

	for i := uint8(0); i < min; i++ {
		next := b.Splice(middle)
		b.AddEpsilonEdge(at.Last, next.First)
		at = next
	}

	var hookToEnd []Range
	for i := min; i < max; i++ {
		hookToEnd = append(hookToEnd, at)
		next := b.Splice(middle)
		b.AddEpsilonEdge(at.Last, next.First)
		at = next
	}

	end := at.Last
	for _, r := range hookToEnd {
		b.AddEpsilonEdge(r.Last, end)
	}
}
