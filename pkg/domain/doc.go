/*
Package domain contains the core domain models of the fsa interpreter.

It defines the automaton itself (transitions, accepting states and the
transition table) and the values produced while deciding acceptance. This
package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Transition: a (from, symbol, to) triple. Symbols are opaque strings of any length.
  - Record: one parsed configuration line, a Transition plus an accepting marker.
  - Source: the records and designated initial state produced by one loader.
  - StateSet: the frontier of states an NFA can simultaneously be in.
  - Table: the transition relation and accepting states, merged from every source.
  - Decision: the outcome of testing one input string.
*/
package domain
