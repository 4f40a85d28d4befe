/*
Package fsa decides whether input strings are accepted by nondeterministic
finite automata whose symbols are arbitrary strings rather than single characters.

Automata are loaded from one or more sources. Each source contributes
transitions and accepting states to one shared table and designates one
initial state; an input is accepted if any loaded automaton accepts it.

# Configuration Format

Text sources hold one transition per line:

	<from> <symbol> <to> [*]

A trailing "*" marks the output state as accepting. Lines with fewer than 3
or more than 4 tokens are ignored. The first token of the first line is the
initial state. YAML and JSON documents are also supported (see package
document).

# Acceptance

An input is accepted iff it can be split into consecutive non-empty pieces,
each consumed by a transition, such that the set of states reached after the
last piece contains an accepting state. Because symbols may have several
characters, every split point is explored.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/fsa"
	)

	func main() {
		interp, err := fsa.New([]string{"binary.fsa", "decimal.yaml"})
		if err != nil {
			log.Fatal(err)
		}

		ok, err := interp.Decide(context.Background(), "1011")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(ok)
	}
*/
package fsa
