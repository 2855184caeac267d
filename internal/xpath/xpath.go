// Package xpath syntax-checks YANG "when" and "must" condition strings.
// Full XPath evaluation against data instances is out of scope; only a
// syntax check is performed at load time, and the resulting AST is kept
// unbound (no identifier resolution against the schema or data tree
// happens here).
//
// YANG's XPath subset overlaps closely with the expression grammar
// github.com/PaesslerAG/gval parses (function calls, path-like selectors,
// boolean/arithmetic operators), which is why this package is grounded on
// gval rather than a hand-rolled recursive-descent parser: gval builds a
// full expression AST without requiring variable/path bindings to be
// resolved up front, which is exactly the syntax-only check this component
// needs. gval is pulled in from neoul-yangtree's dependency graph.
package xpath

import (
	"fmt"

	"github.com/PaesslerAG/gval"
)

// CheckSyntax parses expr (a "when" or "must" condition argument) and
// reports a syntax error if it is not well-formed. It never evaluates expr
// against any variable binding; the returned error, if any, is purely a
// grammar complaint.
func CheckSyntax(expr string) error {
	if expr == "" {
		return fmt.Errorf("empty XPath expression")
	}
	// gval.Full covers arithmetic, boolean, and string operators, plus
	// bracket/selector syntax close enough to the YANG XPath subset to
	// catch malformed expressions; it does not need identifiers bound to
	// parse, so NewEvaluable is sufficient here and the Evaluable it
	// returns is discarded without being run.
	if _, err := gval.Full().NewEvaluable(expr); err != nil {
		return fmt.Errorf("bad XPath syntax %q: %v", expr, err)
	}
	return nil
}
