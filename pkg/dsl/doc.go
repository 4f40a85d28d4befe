/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing automata.

It allows developers to define transitions and accepting states with a fluent builder
instead of writing configuration files. This is particularly useful for generated
automata, unit testing, and leveraging IDE autocompletion/type-checking.

Example usage:

	package main

	import (
		"github.com/aretw0/fsa"
		"github.com/aretw0/fsa/pkg/dsl"
	)

	func main() {
		b := dsl.New("keywords", "start")

		b.State("start").
			On("if", "kw").
			On("else", "kw")

		b.State("kw").Accepting()

		// The resulting loader is a ports.SourceLoader
		loader, _ := b.Build()
		interp, _ := fsa.New(nil, fsa.WithLoaders(loader))
		// ... interp.Decide(ctx, "else")
	}
*/
package dsl
