package instance

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a validation diagnostic.
type Severity int

const (
	// Error means the instance should not be handed to a solver.
	Error Severity = iota
	// Warning means the instance is usable but looks suspicious.
	Warning
	// Info is an informational note.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Rule     string   // rule identifier (e.g., "fleet_size")
	Severity Severity // ERROR, WARNING, or INFO
	Message  string   // human-readable description
	Pos      Position // source location of the related row (optional)
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Rule, d.Message)
	if d.Pos.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", d.Pos.Line)
	}
	return b.String()
}

// Rule is the interface for a single validation rule.
type Rule interface {
	Name() string
	Apply(inst *Instance) []Diagnostic
}

// ValidationError is returned by ValidateOrError when error-severity
// diagnostics exist.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	var msgs []string
	for _, d := range e.Diagnostics {
		msgs = append(msgs, d.String())
	}
	return fmt.Sprintf("validation failed with %d error(s):\n  %s", len(e.Diagnostics), strings.Join(msgs, "\n  "))
}

// Validate runs all built-in rules (and any extra rules) against a parsed
// instance. The grammar alone decides what parses; these rules surface the
// semantic oddities it deliberately lets through, so every built-in finding
// is a Warning or Info, never an Error.
func Validate(inst *Instance, extraRules ...Rule) []Diagnostic {
	rules := builtInRules()
	rules = append(rules, extraRules...)

	var diagnostics []Diagnostic
	for _, rule := range rules {
		diagnostics = append(diagnostics, rule.Apply(inst)...)
	}
	return diagnostics
}

// ValidateOrError runs Validate and returns an error if any error-severity
// diagnostics are found. Non-error diagnostics are still returned.
func ValidateOrError(inst *Instance, extraRules ...Rule) ([]Diagnostic, error) {
	diagnostics := Validate(inst, extraRules...)

	var errors []Diagnostic
	for _, d := range diagnostics {
		if d.Severity == Error {
			errors = append(errors, d)
		}
	}
	if len(errors) > 0 {
		return diagnostics, &ValidationError{Diagnostics: errors}
	}
	return diagnostics, nil
}

func builtInRules() []Rule {
	return []Rule{
		fleetSizeRule{},
		capacityRule{},
		rowWidthRule{},
		linkTargetRule{},
		rowCountRule{},
	}
}

// fleetSizeRule warns when the declared vehicle count has no physical
// meaning. The token grammar admits negative summary values, so this is a
// warning rather than a parse failure.
type fleetSizeRule struct{}

func (fleetSizeRule) Name() string { return "fleet_size" }

func (fleetSizeRule) Apply(inst *Instance) []Diagnostic {
	if inst.Vehicles > 0 {
		return nil
	}
	return []Diagnostic{{
		Rule:     "fleet_size",
		Severity: Warning,
		Message:  fmt.Sprintf("vehicle count %d is not positive", inst.Vehicles),
	}}
}

// capacityRule warns when the per-vehicle capacity is not positive.
type capacityRule struct{}

func (capacityRule) Name() string { return "capacity" }

func (capacityRule) Apply(inst *Instance) []Diagnostic {
	if inst.Capacity > 0 {
		return nil
	}
	return []Diagnostic{{
		Rule:     "capacity",
		Severity: Warning,
		Message:  fmt.Sprintf("vehicle capacity %d is not positive", inst.Capacity),
	}}
}

// rowWidthRule warns when a file mixes plain seven-field rows with
// nine-field pickup-and-delivery rows. The grammar permits the mix per row;
// in practice the two variants never share a file.
type rowWidthRule struct{}

func (rowWidthRule) Name() string { return "row_width" }

func (rowWidthRule) Apply(inst *Instance) []Diagnostic {
	plain, linked := 0, 0
	for _, n := range inst.Nodes {
		if n.Link != nil {
			linked++
		} else {
			plain++
		}
	}
	if plain == 0 || linked == 0 {
		return nil
	}
	return []Diagnostic{{
		Rule:     "row_width",
		Severity: Warning,
		Message:  fmt.Sprintf("file mixes 7-field and 9-field rows (%d plain, %d pickup-delivery)", plain, linked),
	}}
}

// linkTargetRule warns when a nonzero pickup or delivery index names no row
// in the file. Index 0 is the conventional "no partner" marker and is
// always accepted.
type linkTargetRule struct{}

func (linkTargetRule) Name() string { return "link_target" }

func (linkTargetRule) Apply(inst *Instance) []Diagnostic {
	ids := make(map[int]bool, len(inst.Nodes))
	for _, n := range inst.Nodes {
		ids[n.ID] = true
	}

	var diags []Diagnostic
	for _, n := range inst.Nodes {
		if n.Link == nil {
			continue
		}
		if n.Link.Pickup != 0 && !ids[n.Link.Pickup] {
			diags = append(diags, Diagnostic{
				Rule:     "link_target",
				Severity: Warning,
				Message:  fmt.Sprintf("pickup link %d of node %d names no row", n.Link.Pickup, n.ID),
				Pos:      n.Pos,
			})
		}
		if n.Link.Delivery != 0 && !ids[n.Link.Delivery] {
			diags = append(diags, Diagnostic{
				Rule:     "link_target",
				Severity: Warning,
				Message:  fmt.Sprintf("delivery link %d of node %d names no row", n.Link.Delivery, n.ID),
				Pos:      n.Pos,
			})
		}
	}
	return diags
}

// rowCountRule reports the total row count so callers can sanity-check the
// parse against the expected instance size.
type rowCountRule struct{}

func (rowCountRule) Name() string { return "row_count" }

func (rowCountRule) Apply(inst *Instance) []Diagnostic {
	return []Diagnostic{{
		Rule:     "row_count",
		Severity: Info,
		Message:  fmt.Sprintf("instance has %d node records", len(inst.Nodes)),
	}}
}
