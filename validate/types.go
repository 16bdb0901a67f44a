// Package validate defines the issue taxonomy, the aggregate Result, and
// the functional options accepted by Run.
package validate

import (
	"errors"

	"github.com/katalvlaran/symgraph/independence"
	"github.com/katalvlaran/symgraph/metrics"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Run.
var ErrGraphNil = errors.New("validate: graph is nil")

// IssueKind is the closed taxonomy of reportable problems.
type IssueKind string

const (
	// KindCycle marks a circular dependency chain.
	KindCycle IssueKind = "cycle"

	// KindLevelViolation marks a dependency at a level at or above its
	// dependent's.
	KindLevelViolation IssueKind = "level-violation"

	// KindMissingDependency marks a referenced but undefined symbol.
	KindMissingDependency IssueKind = "missing-dependency"

	// KindInvalidIndependenceClaim marks a claim contradicted by the graph.
	KindInvalidIndependenceClaim IssueKind = "invalid-independence-claim"

	// KindHighFanIn is advisory only: a symbol whose declared dependency
	// count exceeds the caller-supplied threshold. Never an error.
	KindHighFanIn IssueKind = "high-fan-in"
)

// Severity grades an Issue. Only SeverityError entries affect Valid.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one typed finding: the implicated symbol names plus a
// human-readable message.
type Issue struct {
	Kind     IssueKind `json:"kind"`
	Severity Severity  `json:"severity"`
	Symbols  []string  `json:"symbols"`
	Message  string    `json:"message"`
}

// Result aggregates one full validation pass. It is immutable once
// returned and JSON-serializable by construction.
type Result struct {
	Valid            bool                   `json:"valid"`
	Errors           []Issue                `json:"errors"`
	Warnings         []Issue                `json:"warnings"`
	ComputationOrder []string               `json:"computationOrder"`
	Cycles           [][]string             `json:"cycles"`
	Independence     []independence.Outcome `json:"independenceResults"`
	Metrics          metrics.Summary        `json:"graphMetrics"`
}

// Option configures a validation run.
type Option func(*options)

// options holds the tunables of one Run invocation. The run is fully
// synchronous with no suspension points, so there is deliberately no
// context/cancellation knob here.
type options struct {
	claims      []independence.Claim
	fanInWarnAt int // 0 disables the fan-in warning
}

// defaultOptions: no claims, fan-in warnings disabled.
func defaultOptions() options {
	return options{}
}

// WithClaims supplies the independence claims to verify. Claims are
// caller assertions, never derived from the graph; their cost scales with
// claim count, so latency-sensitive callers should cap the list.
func WithClaims(claims ...independence.Claim) Option {
	return func(o *options) {
		o.claims = append(o.claims, claims...)
	}
}

// WithFanInWarnThreshold enables an advisory warning for every defined
// symbol whose declared dependency count exceeds n. Non-positive n keeps
// the warning disabled.
func WithFanInWarnThreshold(n int) Option {
	return func(o *options) {
		o.fanInWarnAt = n
	}
}
