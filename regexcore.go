package regexcore

import (
	"github.com/coregx/regexcore/ast"
	"github.com/coregx/regexcore/nfa"
	"github.com/coregx/regexcore/token"
)

// CompileToRAST runs the scan, simplify, parse, and validate stages over
// pattern, returning the resulting regex AST. This is the entry point for
// callers that only need the AST — e.g. a linter that wants to inspect a
// pattern's shape without lowering it to an NFA.
func CompileToRAST(pattern string) (*ast.RAST, error) {
	return CompileToRASTWithLimits(pattern, DefaultLimits())
}

// CompileToRASTWithLimits is CompileToRAST with an explicit Limits value,
// threaded through the scan, simplify, and validate stages (the parser
// takes none) the way CompilerConfig threads through the teacher's NFA
// compiler.
func CompileToRASTWithLimits(pattern string, limits Limits) (*ast.RAST, error) {
	tok1, err := token.ScanWithLimits(pattern, limits)
	if err != nil {
		return nil, err
	}
	tok2, err := token.SimplifyWithLimits(tok1, limits)
	if err != nil {
		return nil, err
	}
	rast, err := ast.Parse(tok2)
	if err != nil {
		return nil, err
	}
	if err := ast.ValidateWithLimits(rast, limits); err != nil {
		return nil, err
	}
	return rast, nil
}

// CompileToNFA runs the full pipeline — scan, simplify, parse, validate,
// lower — over pattern, returning the resulting NFA.
func CompileToNFA(pattern string) (nfa.NFA, error) {
	return CompileToNFAWithLimits(pattern, DefaultLimits())
}

// CompileToNFAWithLimits is CompileToNFA with an explicit Limits value.
func CompileToNFAWithLimits(pattern string, limits Limits) (nfa.NFA, error) {
	rast, err := CompileToRASTWithLimits(pattern, limits)
	if err != nil {
		return nil, err
	}
	return nfa.Lower(rast), nil
}
