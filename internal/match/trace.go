package match

import (
	"log"

	"github.com/google/uuid"

	"github.com/mirocana/typecheck/internal/evalctx"
	"github.com/mirocana/typecheck/internal/types"
)

// Trace is the read-only result of Explain: whether the match succeeded,
// and a one-line description of which rule decided it. It never reports
// source positions — those belong to whatever owns the expression the
// caller matched against.
type Trace struct {
	RunID   string
	Matched bool
	Rule    string
}

// Explain runs the same cascade as Match but also classifies, after the
// fact, which precedence rule most plausibly decided the outcome, and
// (when logger is non-nil) writes a one-line trace tagged with a fresh
// correlation ID. It never mutates the cascade's behavior; it exists
// purely for diagnostics, so it always starts from a fresh substitution.
func Explain(expected, actual types.Type, ctx evalctx.Context, logger *log.Logger) Trace {
	runID := uuid.New().String()
	subst := types.Subst{}
	matched := Match(expected, actual, ctx, subst, true)
	rule := classify(expected, actual, matched)

	if logger != nil {
		logger.Printf("match[%s]: expected=%s actual=%s matched=%v rule=%s", runID, expected.String(), actual.String(), matched, rule)
	}

	return Trace{RunID: runID, Matched: matched, Rule: rule}
}

// classify gives a best-effort, human-readable label for which cascade
// rule produced the result, for logging and test-failure messages. It
// re-derives the label from the same type shapes the cascade itself
// switches on, rather than threading a rule identifier through every
// return in match.go.
func classify(expected, actual types.Type, matched bool) string {
	if _, ok := expected.(types.TypeVar); ok {
		return "generic-variable-binding"
	}
	if IsUnknown(expected) || IsUnknown(actual) {
		return "unknown-absorption"
	}
	if _, ok := actual.(types.Union); ok {
		return "actual-union-distribution"
	}
	if _, ok := expected.(types.Union); ok {
		return "expected-union-distribution"
	}
	if _, ok := types.ClassLike(expected); ok {
		if _, ok2 := types.ClassLike(actual); ok2 {
			return "class-type-specialization"
		}
	}
	if _, ok := expected.(types.Structural); ok {
		return "structural-duck-typing"
	}
	if _, ok := actual.(types.Structural); ok {
		return "structural-duck-typing"
	}
	if _, ok := expected.(types.Callable); ok {
		return "callable-signature"
	}
	if !matched {
		return "no-rule-applies"
	}
	return "unspecified"
}
