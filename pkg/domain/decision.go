package domain

import "time"

// Decision is the outcome of testing one input string against the automaton.
type Decision struct {
	ID       string        `json:"id"`
	Input    string        `json:"input"`
	Accepted bool          `json:"accepted"`
	Steps    int           `json:"steps"`
	Memoized bool          `json:"memoized,omitempty"`
	Cached   bool          `json:"cached,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// Verdict returns the human readable outcome: "Accepted" or "Not accepted".
func (d *Decision) Verdict() string {
	return VerdictText(d.Accepted)
}

// VerdictText returns "Accepted" or "Not accepted".
func VerdictText(accepted bool) string {
	if accepted {
		return "Accepted"
	}
	return "Not accepted"
}
