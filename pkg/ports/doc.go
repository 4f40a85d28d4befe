/*
Package ports defines the driven ports (interfaces) of the fsa interpreter.

These interfaces decouple the acceptance core from external implementations,
allowing the interpreter to load automata from various sources and to cache
decisions in various backends.

# Key Interfaces

  - SourceLoader: produces the records and initial state of one automaton (text file, YAML/JSON document, memory).
  - DecisionCache: remembers decisions per automaton digest and input (memory, Redis).
*/
package ports
