package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/fsa/pkg/domain"
)

// Report describes the reachability structure of an automaton.
type Report struct {
	// Reachable are the states reachable from the initial states, sorted.
	Reachable []string
	// Unreachable are states referenced by the table but never reached, sorted.
	Unreachable []string
	// DeadEnds are reachable non-accepting states without outgoing transitions, sorted.
	DeadEnds []string
	// AcceptingReachable reports whether some accepting state can be reached.
	AcceptingReachable bool
	// HasAccepting reports whether any accepting state exists at all.
	HasAccepting bool
}

// Analyze crawls the table breadth-first from the initial states, ignoring symbols.
func Analyze(table *domain.Table, initial domain.StateSet) *Report {
	visited := domain.NewStateSet()
	queue := initial.Sorted()

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited.Contains(current) {
			continue
		}
		visited.Add(current)

		for _, next := range table.Successors(current).Sorted() {
			if !visited.Contains(next) {
				queue = append(queue, next)
			}
		}
	}

	r := &Report{
		Reachable:    visited.Sorted(),
		HasAccepting: table.HasAccepting(),
	}
	for _, st := range table.States() {
		if !visited.Contains(st) {
			r.Unreachable = append(r.Unreachable, st)
		}
	}
	for _, st := range r.Reachable {
		if table.Accepts(st) {
			r.AcceptingReachable = true
			continue
		}
		if table.Successors(st).IsEmpty() {
			r.DeadEnds = append(r.DeadEnds, st)
		}
	}
	return r
}

// Warnings lists the non-fatal findings of the report.
func (r *Report) Warnings() []string {
	var warnings []string
	for _, st := range r.Unreachable {
		warnings = append(warnings, fmt.Sprintf("Unreachable state: '%s'", st))
	}
	for _, st := range r.DeadEnds {
		warnings = append(warnings, fmt.Sprintf("Dead end: '%s' is not accepting and has no transitions", st))
	}
	return warnings
}

// Validate fails when the automaton can never accept anything.
func Validate(table *domain.Table, initial domain.StateSet) error {
	if table == nil || initial.IsEmpty() {
		return domain.ErrInvalidInput
	}

	r := Analyze(table, initial)

	var errors []string
	if !r.HasAccepting {
		errors = append(errors, "No accepting state is defined (mark one with '*')")
	} else if !r.AcceptingReachable {
		errors = append(errors, fmt.Sprintf("No accepting state is reachable from %s", initial.String()))
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}
	return nil
}
