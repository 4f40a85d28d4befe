package ports

import "context"

// DecisionCache remembers acceptance decisions.
// Keys already encode the automaton digest, so a cache may be shared by
// interpreters loaded with different automata.
type DecisionCache interface {
	// Get returns the cached decision. found is false on a miss.
	Get(ctx context.Context, key string) (accepted bool, found bool, err error)

	// Set stores a decision.
	Set(ctx context.Context, key string, accepted bool) error
}
