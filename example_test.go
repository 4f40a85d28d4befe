package fsa_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/fsa"
	"github.com/aretw0/fsa/pkg/adapters/memory"
)

// ExampleNew_memory builds an interpreter from configuration text held in memory.
func ExampleNew_memory() {
	// Lines without 3 or 4 tokens are skipped.
	loader, err := memory.NewLoader("greeting", `
q0 he q1
skipped line
q1 llo q2 *
`)
	if err != nil {
		log.Fatal(err)
	}

	interp, err := fsa.New(nil, fsa.WithLoaders(loader))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	for _, input := range []string{"hello", "hell", "he"} {
		ok, err := interp.Decide(ctx, input)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: %v\n", input, ok)
	}

	// Output:
	// hello: true
	// hell: false
	// he: false
}

// ExampleInterpreter_DecideAll decides a batch of inputs against two automata.
func ExampleInterpreter_DecideAll() {
	binary, _ := memory.NewLoader("binary", "b 0 b *\nb 1 b *\n")
	words, _ := memory.NewLoader("words", "w yes w2 *\nw no w2 *\n")

	interp, err := fsa.New(nil, fsa.WithLoaders(binary, words), fsa.WithMemoization(true))
	if err != nil {
		log.Fatal(err)
	}

	decisions, err := interp.DecideAll(context.Background(), []string{"0110", "yes", "maybe"})
	if err != nil {
		log.Fatal(err)
	}
	for _, d := range decisions {
		fmt.Printf("%s: %s\n", d.Input, d.Verdict())
	}

	// Output:
	// 0110: Accepted
	// yes: Accepted
	// maybe: Not accepted
}
